package gen

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultHeader is the header comment added to every generated file.
const DefaultHeader = "Code generated by thriftgen. DO NOT EDIT."

// propgenPkg is the import path of the runtime package that generated
// test-data code links against.
const propgenPkg = "github.com/Ecialo/thriftgen/propgen"

// Config holds the settings of one generation pass.
type Config struct {
	// Package is the import path of the generated root package,
	// e.g. "github.com/org/project/gen".
	Package string
	// Target is the directory generated files are written under.
	Target string
	// Header is the comment placed at the top of each generated file.
	Header string
	// Workers bounds parallel per-schema generation and file writing.
	// Zero means GOMAXPROCS.
	Workers int
}

// NewConfig creates a configuration from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Header: DefaultHeader}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// FileConfig is the on-disk layout of a thriftgen.yaml project file.
type FileConfig struct {
	Package string   `yaml:"package"`
	Target  string   `yaml:"target"`
	Header  string   `yaml:"header,omitempty"`
	Workers int      `yaml:"workers,omitempty"`
	// Schemas lists the schema AST documents of the file group.
	Schemas []string `yaml:"schemas"`
}

// LoadFileConfig reads and decodes a project file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, NewConfigError("file", path, err.Error())
	}
	return &fc, nil
}

// Config converts the file configuration into a validated Config.
func (fc *FileConfig) Config() (*Config, error) {
	opts := []Option{WithPackage(fc.Package), WithTarget(fc.Target)}
	if fc.Header != "" {
		opts = append(opts, WithHeader(fc.Header))
	}
	if fc.Workers != 0 {
		opts = append(opts, WithWorkers(fc.Workers))
	}
	return NewConfig(opts...)
}
