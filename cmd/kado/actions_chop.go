package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saworbit/kado/internal/digest"
	"github.com/saworbit/kado/internal/kadocfg"
	"github.com/saworbit/kado/pkg/chunk"
)

func init() {
	Register("chop", newChopCommand)
}

func newChopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chop <file>",
		Short: "Split a file into content-defined chunks and print their boundaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := kadocfg.LoadFromEnv()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("chop: %w", err)
			}

			r, err := chunk.ReadFile(args[0], cfg)
			if err != nil {
				return fmt.Errorf("chop: %w", err)
			}
			defer r.Close()

			for {
				t, err := r.Next()
				if err != nil {
					break
				}
				logDebug("[Chop] chunk [%d,%d) %d bytes", t.Start, t.End, len(t.Data))
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%s\n", t.Start, t.End, digest.StrongHex(t.Data))
			}
			return nil
		},
	}
}
