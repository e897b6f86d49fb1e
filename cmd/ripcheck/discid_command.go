package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ripcheck/internal/cdda"
	"ripcheck/internal/discid"
	"ripcheck/internal/toc"
)

// resolveTOC reads a TOC from a file path, or parses the argument as an
// inline TOC string when no such file exists.
func resolveTOC(arg string) (*toc.Disc, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, fmt.Errorf("a TOC file or TOC string is required")
	}
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return toc.ParseFile(arg)
	}
	return toc.Parse(arg)
}

func newDiscIDCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "discid <toc>",
		Short: "Derive disc IDs from a table of contents",
		Long: `Derive the FreeDB, MusicBrainz and AccurateRip disc IDs from a TOC.

The argument is either a TOC file or an inline TOC string of the form
"first last leadout offset1 ... offsetN" with offsets in LBA sectors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			disc, err := resolveTOC(args[0])
			if err != nil {
				return err
			}
			ids := discid.Compute(disc)

			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{
					"tracks":         disc.TrackCount(),
					"freedb":         fmt.Sprintf("%08x", ids.FreeDB),
					"accuraterip_1":  fmt.Sprintf("%08x", ids.AccurateRip1),
					"accuraterip_2":  fmt.Sprintf("%08x", ids.AccurateRip2),
					"musicbrainz":    ids.MusicBrainz,
					"dbar_file_name": discid.DBARFileName(disc),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tracks: %d\n", disc.TrackCount())
			fmt.Fprintf(out, "FreeDB ID: %08x\n", ids.FreeDB)
			fmt.Fprintf(out, "AccurateRip ID: %08x %08x\n", ids.AccurateRip1, ids.AccurateRip2)
			fmt.Fprintf(out, "MusicBrainz ID: %s\n", ids.MusicBrainz)
			fmt.Fprintf(out, "dBAR file: %s\n", discid.DBARFileName(disc))
			if htoa := disc.HTOASectors(); htoa > 0 {
				fmt.Fprintf(out, "Hidden track: %s before track 1\n", cdda.FormatMSF(htoa))
			}

			rows := make([][]string, 0, disc.TrackCount())
			for _, track := range disc.Tracks {
				rows = append(rows, []string{
					fmt.Sprintf("%d", track.Num),
					fmt.Sprintf("%d", track.Offset),
					cdda.FormatMSF(disc.TrackSectors(track.Num)),
				})
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(out,
				[]string{"track", "offset", "length"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight}))
			return nil
		},
	}
}
