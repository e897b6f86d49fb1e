package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ripcheck/internal/dbar"
	"ripcheck/internal/discid"
	"ripcheck/internal/toc"
	"ripcheck/internal/verify"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var (
		tocArg     string
		dbarPath   string
		permissive bool
		excludes   []string
	)

	cmd := &cobra.Command{
		Use:   "verify --toc <toc> <file>...",
		Short: "Verify a rip against the AccurateRip database",
		Long: `Verify a set of ripped files against AccurateRip checksums. The files
are matched in order against the audio tracks of the TOC.

Checksums come from a dBAR response file given with --dbar, or from the
local cache when the disc was imported before. Files matching the
configured exclude patterns, such as hidden track pregap rips, are left
out of the track sequence.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			disc, err := resolveTOC(tocArg)
			if err != nil {
				return err
			}
			ids := discid.Compute(disc)

			responses, err := loadResponses(cmd, ctx, dbarPath, disc)
			if err != nil {
				return err
			}
			if err := dbar.Verify(responses, disc.TrackCount(),
				ids.AccurateRip1, ids.AccurateRip2, ids.FreeDB); err != nil {
				return err
			}

			patterns := cfg.Verification.ExcludePatterns
			if len(excludes) > 0 {
				patterns = excludes
			}
			rip, err := verify.NewRip(args, patterns, logger)
			if err != nil {
				return err
			}

			result, err := rip.Verify(cmd.Context(), disc, dbar.BuildIndex(responses), verify.Options{
				Permissive: permissive || cfg.Verification.Permissive,
			})
			if err != nil {
				return err
			}

			if ctx.JSONMode() {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else {
				printResult(cmd, result)
			}

			if !result.AllOK() {
				return errors.New("verification failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tocArg, "toc", "", "TOC file or string describing the disc (required)")
	cmd.Flags().StringVar(&dbarPath, "dbar", "", "dBAR response file; defaults to a cache lookup")
	cmd.Flags().BoolVar(&permissive, "permissive", false,
		"Downgrade TOC length mismatches to warnings")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil,
		"File name patterns to leave out, overriding the configured ones")
	_ = cmd.MarkFlagRequired("toc")
	return cmd
}

// loadResponses fetches AccurateRip responses from an explicit file or,
// failing that, from the local cache keyed by the disc's IDs.
func loadResponses(cmd *cobra.Command, ctx *commandContext, dbarPath string, disc *toc.Disc) ([]dbar.Response, error) {
	if dbarPath != "" {
		return dbar.ParseFile(dbarPath)
	}

	store, err := ctx.openCache()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("no dBAR file given and the cache is disabled")
	}
	defer store.Close()

	ids := discid.Compute(disc)
	responses, found, err := store.Lookup(cmd.Context(), ids.AccurateRip1, ids.AccurateRip2, ids.FreeDB)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("disc %s not in cache; import its dBAR file with `ripcheck cache import`",
			discid.DBARFileName(disc))
	}
	return responses, nil
}

func printResult(cmd *cobra.Command, result verify.DiscResult) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(result.Tracks))
	for _, track := range result.Tracks {
		confidence, response := "--", "--"
		if track.Confidence >= 0 {
			confidence = fmt.Sprintf("%d", track.Confidence)
		}
		if track.Response >= 0 {
			response = fmt.Sprintf("%d", track.Response)
		}
		rows = append(rows, []string{
			track.Path,
			string(track.Status),
			fmt.Sprintf("%08x", track.Checksum),
			track.Version,
			confidence,
			response,
		})
	}

	fmt.Fprintln(out, renderTable(out,
		[]string{"file", "result", "checksum", "type", "conf", "resp"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight}))
	fmt.Fprintln(out)
	fmt.Fprintln(out, result.Summary())
}
