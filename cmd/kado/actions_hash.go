package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saworbit/kado/internal/kadocfg"
	"github.com/saworbit/kado/pkg/object"
)

func init() {
	Register("hash", newHashCommand)
}

func newHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <file>",
		Short: "Build an Item from a file and print its strong hash, weak hash, and CID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("hash: %w", err)
			}

			cfg := kadocfg.LoadFromEnv()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("hash: %w", err)
			}

			item, err := object.NewItem(data, nil, cfg)
			if err != nil {
				return fmt.Errorf("hash: %w", err)
			}

			cid, err := item.CID()
			if err != nil {
				return fmt.Errorf("hash: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id\t%s\n", item.ID())
			fmt.Fprintf(out, "shash\t%s\n", item.StrongHash())
			fmt.Fprintf(out, "whash\t%s\n", item.WeakHash())
			fmt.Fprintf(out, "cid\t%s\n", cid)
			fmt.Fprintf(out, "chunks\t%d\n", len(item.Chunks()))
			return nil
		},
	}
}
