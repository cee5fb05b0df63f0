package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"emisora/internal/catalog"
)

func newStationsCommand(ctx *commandContext) *cobra.Command {
	var showAll bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "List catalog stations",
		Long:  "List catalog stations in catalog order. Stations without a stream are hidden unless --all is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.loadCatalog(cmd)
			if err != nil {
				return err
			}
			stations := cat.Playable()
			if showAll {
				stations = cat.Stations()
			}
			if jsonOutput {
				return writeJSON(cmd, stations)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Catalog: %s (%d of %d stations playable)\n", cat.Source(), len(cat.Playable()), cat.Len())
			return writeRows(out, []string{"#", "ID", "Name", "Playable"}, stationRows(stations), []columnAlignment{alignRight})
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "Include stations without a stream")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func stationRows(stations []catalog.Station) [][]string {
	rows := make([][]string, 0, len(stations))
	for i, st := range stations {
		rows = append(rows, []string{strconv.Itoa(i + 1), st.ID, st.Name, yesNo(st.Playable())})
	}
	return rows
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
