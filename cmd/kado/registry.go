package main

import (
	"log"

	"github.com/spf13/cobra"
)

// Action is a plug-in-registered CLI subcommand. Register is called once at package
// init time by each file in this package that defines one; main assembles the final
// command tree from whatever survived registration.
type Action func() *cobra.Command

var registry = map[string]Action{}

// Register adds name to the registry. A name already claimed is left untouched and the
// conflict is logged at debug level — first registration wins, per spec.md section 6.
func Register(name string, action Action) {
	if _, exists := registry[name]; exists {
		logDebug("[Registry] subcommand %q already registered, skipping", name)
		return
	}
	registry[name] = action
}

func registeredCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(registry))
	for _, action := range registry {
		cmds = append(cmds, action())
	}
	return cmds
}

var debugEnabled bool

func logDebug(format string, args ...interface{}) {
	if !debugEnabled {
		return
	}
	log.Printf(format, args...)
}
