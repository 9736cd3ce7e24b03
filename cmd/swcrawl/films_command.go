package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/swcrawl/internal/app"
)

func newFilmsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "films",
		Short: "List the movies in release order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			films, err := app.Films(cmd.Context(), opts.app(cmd))
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(films))
			for i, f := range films {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					f.Title,
					strconv.Itoa(f.EpisodeID),
					f.ReleaseDate,
					f.Director,
					strconv.Itoa(len(f.Characters)),
				})
			}
			out := renderTable(
				[]string{"#", "Title", "Episode", "Released", "Director", "Characters"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignRight},
				nil,
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
