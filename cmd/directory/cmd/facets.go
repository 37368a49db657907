package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-directory/internal/search"
)

// anyOption labels the unconstrained choice of a facet selector.
const anyOption = "全部"

func newFacetsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "facets <view>",
		Short:     "List the facet options of a view",
		Long:      "List the selectable values of each facet of a view (" + strings.Join(search.Views(), ", ") + ").",
		Args:      cobra.ExactArgs(1),
		ValidArgs: search.Views(),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.engine()
			if err != nil {
				return err
			}

			options, err := eng.Facets(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, o := range options {
				fmt.Fprintf(out, "%s (%s)\n", o.Name, o.Kind)
				fmt.Fprintf(out, "  %s\n", anyOption)
				for _, v := range o.Values {
					fmt.Fprintf(out, "  %s\n", v)
				}
			}
			return nil
		},
	}
}
