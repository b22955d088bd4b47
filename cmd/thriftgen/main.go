// Command thriftgen generates Go sources and test-data companions from
// parsed IDL schema documents.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "thriftgen",
	Short:         "Generate Go code from parsed Thrift schemas",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger().Error("thriftgen failed", "error", err)
		os.Exit(1)
	}
}
