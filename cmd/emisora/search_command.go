package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"emisora/internal/logging"
	"emisora/internal/matcher"
	"emisora/internal/media"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var intentFlag string
	var jsonOutput bool
	var limit int

	cmd := &cobra.Command{
		Use:   "search <phrase...>",
		Short: "Rank stations against a phrase",
		Long: "Rank catalog stations against a free-text phrase. The featured playlist is\n" +
			"listed first when the phrase names the provider.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.New("--limit must be >= 0")
			}
			intent, err := parseIntent(intentFlag)
			if err != nil {
				return err
			}
			m, err := ctx.newMatcher(cmd)
			if err != nil {
				return err
			}
			phrase := strings.Join(args, " ")
			resp := m.Query(matcher.Query{Phrase: phrase, Intent: intent})
			if limit > 0 && len(resp.Entries) > limit {
				resp.Entries = resp.Entries[:limit]
			}

			logger, err := ctx.commandLogger(cmd)
			if err != nil {
				return err
			}
			logger.Debug("search completed",
				logging.String("phrase", phrase),
				logging.String("intent", intent.String()),
				logging.Int("results", len(resp.Entries)),
				logging.Int("playlists", len(resp.Playlists)),
			)

			if jsonOutput {
				return writeJSON(cmd, resp)
			}
			out := cmd.OutOrStdout()
			if len(resp.Entries) == 0 && len(resp.Playlists) == 0 {
				fmt.Fprintln(out, "No matching stations")
				return nil
			}
			for _, pl := range resp.Playlists {
				fmt.Fprintf(out, "Playlist: %s (%d stations, confidence %d)\n", pl.Title, pl.Len(), pl.Confidence)
			}
			if len(resp.Entries) == 0 {
				return nil
			}
			return writeRows(out, []string{"Confidence", "Station", "Stream"}, entryRows(resp.Entries), []columnAlignment{alignRight, alignLeft, alignLeft})
		},
	}

	cmd.Flags().StringVarP(&intentFlag, "intent", "i", "radio", "Media type hint from the host classifier (radio, music, other, ...)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of stations to show (0 for all)")
	return cmd
}

func newFeaturedCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Show the browse-all playlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ctx.newMatcher(cmd)
			if err != nil {
				return err
			}
			pl := m.Featured()
			if jsonOutput {
				return writeJSON(cmd, pl)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s by %s (%d stations)\n", pl.Title, pl.Artist, pl.Len())
			return writeRows(out, []string{"Confidence", "Station", "Stream"}, entryRows(pl.Entries), []columnAlignment{alignRight, alignLeft, alignLeft})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newKeywordsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the keywords to register with a host classifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ctx.newMatcher(cmd)
			if err != nil {
				return err
			}
			keywords := m.Keywords()
			if jsonOutput {
				return writeJSON(cmd, keywords)
			}
			rows := make([][]string, 0)
			for _, group := range []string{matcher.KeywordStation, matcher.KeywordProvider} {
				for _, keyword := range keywords[group] {
					rows = append(rows, []string{group, keyword})
				}
			}
			return writeRows(cmd.OutOrStdout(), []string{"Group", "Keyword"}, rows, nil)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// parseIntent maps the --intent flag to a media type. "other" stands for any
// non-radio classification.
func parseIntent(value string) (media.Type, error) {
	if strings.EqualFold(strings.TrimSpace(value), "other") {
		return media.TypeGeneric, nil
	}
	intent, err := media.ParseType(value)
	if err != nil {
		return media.TypeGeneric, fmt.Errorf("--intent: %w", err)
	}
	return intent, nil
}

func entryRows(entries []media.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{strconv.Itoa(e.Confidence), e.Title, e.URI})
	}
	return rows
}
