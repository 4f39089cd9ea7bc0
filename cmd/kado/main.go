// Command kado is the minimal CLI surface described in spec.md section 6: a version
// flag and a static, plug-in-style registry of subcommands. The object-store core
// itself is a library (see the pkg/ and internal/ packages); this binary is a thin,
// optional collaborator built on top of it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saworbit/kado/internal/metrics"
)

// version is overridable at link time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "kado",
		Short:   "kado is a content-defined chunking object-store core",
		Version: version,
	}
	root.SetVersionTemplate(fmt.Sprintf("kado %s\n", version))
	root.Flags().BoolP("version", "V", false, "print the version and exit")

	root.PersistentFlags().BoolVar(&debugEnabled, "debug", false, "enable verbose debug logging")

	metrics.SetBuildInfo(version)

	for _, cmd := range registeredCommands() {
		root.AddCommand(cmd)
	}
	return root
}
