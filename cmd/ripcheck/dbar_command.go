package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ripcheck/internal/dbar"
	"ripcheck/internal/discid"
)

func newDBARCommand(ctx *commandContext) *cobra.Command {
	var tocArg string

	cmd := &cobra.Command{
		Use:   "dbar <file.bin>",
		Short: "Inspect an AccurateRip response file",
		Long: `Decode a dBAR response file and list the checksums it holds per track
and pressing. With --toc the response headers are additionally checked
against the disc the TOC describes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			responses, err := dbar.ParseFile(args[0])
			if err != nil {
				return err
			}

			if tocArg != "" {
				disc, err := resolveTOC(tocArg)
				if err != nil {
					return err
				}
				ids := discid.Compute(disc)
				if err := dbar.Verify(responses, disc.TrackCount(),
					ids.AccurateRip1, ids.AccurateRip2, ids.FreeDB); err != nil {
					return err
				}
			}

			if ctx.JSONMode() {
				return writeJSON(cmd, responses)
			}

			printResponses(cmd.OutOrStdout(), responses)
			return nil
		},
	}

	cmd.Flags().StringVar(&tocArg, "toc", "", "TOC file or string to check the responses against")
	return cmd
}

func printResponses(out io.Writer, responses []dbar.Response) {
	fmt.Fprintf(out, "Disc: %s (%d responses)\n", responses[0].Header, len(responses))
	for num, response := range responses {
		fmt.Fprintf(out, "\nResponse %d:\n", num+1)
		rows := make([][]string, 0, len(response.Tracks))
		for i, track := range response.Tracks {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%08x", track.V1),
				fmt.Sprintf("%08x", track.V2),
				fmt.Sprintf("%d", track.Confidence),
			})
		}
		fmt.Fprintln(out, renderTable(out,
			[]string{"track", "v1", "v2", "confidence"},
			rows,
			[]columnAlignment{alignRight, alignRight, alignRight, alignRight}))
	}
}
