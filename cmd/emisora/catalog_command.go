package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"emisora/internal/catalog"
	"emisora/internal/config"
	"emisora/internal/logging"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog maintenance",
	}
	catalogCmd.AddCommand(newCatalogConvertCommand(ctx))
	return catalogCmd
}

func newCatalogConvertCommand(ctx *commandContext) *cobra.Command {
	var fromFormat string
	var toFormat string

	cmd := &cobra.Command{
		Use:   "convert <source> <destination>",
		Short: "Convert a catalog between JSON and SQLite",
		Long: "Convert a catalog between the keyed JSON layout and SQLite. Formats are\n" +
			"detected from file extensions unless --from or --to is given. Use \"-\" as the\n" +
			"source to export the embedded catalog.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := catalog.ParseFormat(fromFormat)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			to, err := catalog.ParseFormat(toFormat)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			logger, err := ctx.commandLogger(cmd)
			if err != nil {
				return err
			}

			source := ""
			if strings.TrimSpace(args[0]) != "-" {
				if source, err = config.ExpandPath(args[0]); err != nil {
					return fmt.Errorf("resolve source: %w", err)
				}
			}
			destination, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve destination: %w", err)
			}
			if source == destination {
				return fmt.Errorf("source and destination are the same file: %s", destination)
			}

			cat, err := catalog.Load(commandCtx(cmd), source, from, logger)
			if err != nil {
				return err
			}
			if err := catalog.WriteFile(commandCtx(cmd), destination, to, cat); err != nil {
				return fmt.Errorf("write catalog: %w", err)
			}
			logger.Debug("catalog converted",
				logging.String("source", cat.Source()),
				logging.String("destination", destination),
				logging.Int("station_count", cat.Len()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d stations from %s to %s\n", cat.Len(), cat.Source(), destination)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFormat, "from", "", "Source format (json or sqlite)")
	cmd.Flags().StringVar(&toFormat, "to", "", "Destination format (json or sqlite)")
	return cmd
}
