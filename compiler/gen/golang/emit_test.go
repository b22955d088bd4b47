package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ecialo/thriftgen/compiler/gen"
	"github.com/Ecialo/thriftgen/idl"
)

func TestGenEnum(t *testing.T) {
	_, d := newTestDialect()
	s := tutorialSchema(sharedSchema())

	u := d.GenEnum(s, s.Enums[0])
	assert.Equal(t, gen.KindEnum, u.Kind)
	assert.Equal(t, "tutorial", u.Package)

	src := render(t, u)
	assert.Contains(t, src, "type Status int32")
	assert.Contains(t, src, "Status_ACTIVE Status = 1")
	assert.Contains(t, src, "Status_SUSPENDED Status = 2")
	assert.Contains(t, src, "Status_DELETED Status = 3")
	assert.Contains(t, src, "func (v Status) String() string")
	assert.Contains(t, src, `return "ACTIVE"`)
	assert.Contains(t, src, "strconv.FormatInt(int64(v), 10)")
}

func TestGenEnumWithoutMembers(t *testing.T) {
	_, d := newTestDialect()
	s := &idl.Schema{Name: "shared", Resolver: titleResolver{}}
	u := d.GenEnum(s, &idl.Enum{Name: "Empty"})

	src := render(t, u)
	assert.Contains(t, src, "type Empty int32")
	assert.NotContains(t, src, "const")
}

func TestGenConstants(t *testing.T) {
	_, d := newTestDialect()
	s := sharedSchema()
	s.Constants = append(s.Constants,
		&idl.Constant{
			Name: "ORIGIN_TAGS",
			Type: &idl.TypeRef{Type: idl.TypeList, Elem: &idl.TypeRef{Type: idl.TypeString}},
			Value: &idl.Value{List: []*idl.Value{
				idl.StringValue("x"), idl.StringValue("y"),
			}},
		},
	)

	u := d.GenConstants(s, s.Constants)
	assert.Equal(t, gen.KindConstant, u.Kind)

	src := render(t, u)
	assert.Contains(t, src, "MAX_POINTS int32 = 128")
	assert.Contains(t, src, "const (")
	assert.Contains(t, src, "var (")
	assert.Contains(t, src, `ORIGIN_TAGS []string = []string{"x", "y"}`)
}

func TestGenStruct(t *testing.T) {
	_, d := newTestDialect()
	s := sharedSchema()

	u := d.GenStruct(s, s.Structs[0])
	assert.Equal(t, gen.KindStruct, u.Kind)
	assert.Equal(t, "shared", u.Package)

	src := render(t, u)
	assert.Contains(t, src, "type Point struct")
	assert.Contains(t, src, "X float64 `json:\"x\" thrift:\"x,1\"`")
	assert.Contains(t, src, "Label *string `json:\"label,omitempty\" thrift:\"label,3\"`")
	assert.Contains(t, src, "func NewPoint() *Point")
	assert.Contains(t, src, "func (v *Point) IsSetLabel() bool")
	assert.NotContains(t, src, "IsSetX", "required value fields have no presence predicate")
	assert.NotContains(t, src, "func (v *Point) Error()")
}

func TestGenStructCrossSchema(t *testing.T) {
	_, d := newTestDialect()
	s := tutorialSchema(sharedSchema())

	src := render(t, d.GenStruct(s, s.Structs[0]))
	assert.Contains(t, src, "Id int64 `json:\"id\" thrift:\"id,1\"`")
	assert.Contains(t, src, "Status Status `json:\"status\" thrift:\"status,3\"`")
	assert.Contains(t, src, "Tags []string `json:\"tags,omitempty\" thrift:\"tags,4\"`")
	assert.Contains(t, src, "Home *shared.Point `json:\"home,omitempty\" thrift:\"home,5\"`")
	assert.Contains(t, src, "IsSetTags")
	assert.Contains(t, src, "IsSetHome")
}

func TestGenStructUnion(t *testing.T) {
	_, d := newTestDialect()
	s := &idl.Schema{Name: "shared", Resolver: titleResolver{}}
	u := &idl.Struct{Name: "Either", Kind: idl.StructKindUnion, Fields: []*idl.Field{
		{ID: 1, Name: "left", Type: &idl.TypeRef{Type: idl.TypeString}},
		{ID: 2, Name: "right", Type: &idl.TypeRef{Type: idl.TypeI64}},
	}}

	unit := d.GenStruct(s, u)
	assert.Equal(t, gen.KindUnion, unit.Kind)

	src := render(t, unit)
	assert.Contains(t, src, "Left *string", "union fields are implicitly optional")
	assert.Contains(t, src, "Right *int64")
	assert.Contains(t, src, "IsSetLeft")
	assert.Contains(t, src, "IsSetRight")
}

func TestGenStructException(t *testing.T) {
	_, d := newTestDialect()
	s := tutorialSchema(sharedSchema())

	unit := d.GenStruct(s, s.Exceptions[0])
	assert.Equal(t, gen.KindException, unit.Kind)

	src := render(t, unit)
	assert.Contains(t, src, "func (v *UserNotFound) Error() string")
	assert.Contains(t, src, `fmt.Sprintf("UserNotFound(%+v)", *v)`)
}

func TestGenService(t *testing.T) {
	_, d := newTestDialect()
	s := tutorialSchema(sharedSchema())

	u := d.GenService(s, s.Services[0])
	assert.Equal(t, gen.KindService, u.Kind)

	src := render(t, u)
	assert.Contains(t, src, "type UserService interface")
	assert.Contains(t, src, "GetUser(ctx context.Context, id int64) (*User, error)")
	assert.Contains(t, src, "Ping(ctx context.Context) error")
}

func TestGenServiceExtends(t *testing.T) {
	_, d := newTestDialect()
	shared := sharedSchema()
	shared.Services = []*idl.Service{{Name: "BaseService"}}
	s := tutorialSchema(shared)
	s.Services[0].Extends = "shared.BaseService"

	src := render(t, d.GenService(s, s.Services[0]))
	assert.Contains(t, src, "shared.BaseService", "extends embeds the parent interface")
}

func TestGenBehaviour(t *testing.T) {
	_, d := newTestDialect()
	s := tutorialSchema(sharedSchema())

	u := d.GenBehaviour(s, s.Services[0])
	assert.Equal(t, gen.KindBehaviour, u.Kind)

	src := render(t, u)
	assert.Contains(t, src, "type UserServiceBehaviour interface")
	assert.Contains(t, src, "type UnimplementedUserService struct")
	assert.Contains(t, src, "func (UnimplementedUserService) GetUser(_ context.Context, _ int64) (*User, error)")
	assert.Contains(t, src, `errors.New("UserService: getUser not implemented")`)
	assert.Contains(t, src, "return nil, errors.New")
	require.Contains(t, src, "func (UnimplementedUserService) Ping(_ context.Context) error")
}
