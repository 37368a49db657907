package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-directory/internal/keyword"
	"github.com/gcbaptista/go-directory/model"
	"github.com/gcbaptista/go-directory/services"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search every collection for a keyword",
		Long: `Search experts, institutions, laws, cases and reports for a keyword.
Matching is a case-insensitive substring match; results keep the order of the dataset.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.engine()
			if err != nil {
				return err
			}

			result := eng.Search(keyword.Parse(strings.Join(args, " ")))
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printSearchResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func printSearchResult(w io.Writer, result services.GlobalSearchResult) {
	if result.Prompt {
		fmt.Fprintln(w, "请输入关键字进行搜索。")
		return
	}

	fmt.Fprintf(w, "关键字 “%s” 的搜索结果：\n", result.Query)
	printPartition(w, result.Experts, func(e model.Expert) string {
		return fmt.Sprintf("%s (%s) - %s", e.NameCN, e.NameEN, e.Institution)
	})
	printPartition(w, result.Institutions, func(i model.Institution) string {
		return fmt.Sprintf("%s - %s", i.Name, i.Country)
	})
	printPartition(w, result.Laws, publicationLine[model.Law])
	printPartition(w, result.Cases, publicationLine[model.Case])
	printPartition(w, result.Reports, publicationLine[model.Report])
}

func printPartition[T any](w io.Writer, p services.Partition[T], line func(T) string) {
	fmt.Fprintf(w, "\n%s (%d)\n", p.Title, p.Total)
	if p.Total == 0 {
		fmt.Fprintln(w, "  暂无匹配结果")
		return
	}
	for _, hit := range p.Hits {
		fmt.Fprintf(w, "  - %s [%s]\n", line(hit.Record), strings.Join(hit.FieldMatches, ", "))
	}
}

func publicationLine[T interface{ Entry() model.Publication }](record T) string {
	p := record.Entry()
	return fmt.Sprintf("%s (%s, %s)", p.Title, p.Category, p.Date)
}
