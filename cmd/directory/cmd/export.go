package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the enriched dataset as a gob snapshot",
		Long: `Write the loaded and enriched dataset to a gob snapshot.
The snapshot can be served later with --data <file>.gob.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := opts.engine()
			if err != nil {
				return err
			}
			if err := eng.Export(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", eng.Source(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Snapshot file to write")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
