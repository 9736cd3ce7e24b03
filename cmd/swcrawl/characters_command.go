package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/five82/swcrawl/internal/app"
	"github.com/five82/swcrawl/internal/crawl"
)

func newCharactersCommand(opts *options) *cobra.Command {
	var ordered bool

	cmd := &cobra.Command{
		Use:   "characters <film>",
		Short: "Fetch a movie's characters and sum their heights",
		Long: "Fetch every character of a movie and print them with the total count and\n" +
			"combined height. <film> is the number shown by `swcrawl films` or the title.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Characters(cmd.Context(), opts.app(cmd), args[0])
			if report.Film.Title == "" {
				return err
			}

			// Partial results are printed before the error is reported.
			if printErr := printCharacterReport(cmd, report, ordered); printErr != nil {
				return printErr
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&ordered, "ordered", false, "List characters in movie order instead of arrival order")
	return cmd
}

func printCharacterReport(cmd *cobra.Command, report app.CharacterReport, ordered bool) error {
	rows := append([]crawl.Row(nil), report.Rows...)
	if ordered {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
	}

	body := make([][]string, 0, len(rows))
	for _, r := range rows {
		body = append(body, []string{r.Character.Name, r.Character.Gender, r.Character.Height})
	}

	footer := []string{
		fmt.Sprintf("Total: %d", len(report.Rows)),
		"",
		fmt.Sprintf("Sum: %scm (%s)", crawl.FormatCM(report.Total), crawl.FeetAndInches(report.Total)),
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s (%s)\n", report.Film.Title, report.Film.Year()); err != nil {
		return err
	}
	table := renderTable(
		[]string{"Name", "Gender", "Height"},
		body,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
		footer,
	)
	_, err := fmt.Fprintln(out, table)
	return err
}
