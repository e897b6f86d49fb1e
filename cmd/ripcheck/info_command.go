package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ripcheck/internal/cdda"
	"ripcheck/internal/checksum"
	"ripcheck/internal/verify"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>...",
		Short: "Show an overview of a rip with all checksums",
		Long: `Compute and tabulate the properties of a set of ripped files: whether
each is a whole number of CD sectors, its length, and its copy CRC and
AccurateRip checksums. Files are treated as consecutive disc tracks in
the order given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			rip, err := verify.NewRip(args, []string{}, logger)
			if err != nil {
				return err
			}

			type trackInfo struct {
				Path   string `json:"path"`
				CDDA   bool   `json:"cdda"`
				Length string `json:"length"`
				Frames int64  `json:"frames"`
				CRC32  string `json:"crc32"`
				ARv1   string `json:"arv1"`
				ARv2   string `json:"arv2"`
			}

			infos := make([]trackInfo, 0, len(rip.Files))
			for i, file := range rip.Files {
				sums, err := checksum.ComputeFile(cmd.Context(), file.Path, i+1, len(rip.Files), checksum.Options{})
				if err != nil {
					return err
				}
				infos = append(infos, trackInfo{
					Path:   file.Path,
					CDDA:   file.IsCDRip(),
					Length: cdda.FormatMSF(file.Sectors),
					Frames: file.Frames,
					CRC32:  fmt.Sprintf("%08x", sums.CRC32),
					ARv1:   fmt.Sprintf("%08x", sums.ARv1),
					ARv2:   fmt.Sprintf("%08x", sums.ARv2),
				})
			}

			if ctx.JSONMode() {
				return writeJSON(cmd, infos)
			}

			printer := message.NewPrinter(language.English)
			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				cddaMark := "no"
				if info.CDDA {
					cddaMark = "yes"
				}
				rows = append(rows, []string{
					info.Path,
					cddaMark,
					info.Length,
					printer.Sprintf("%d", info.Frames),
					info.CRC32,
					info.ARv1,
					info.ARv2,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"file", "CDDA", "length", "frames", "CRC32", "ARv1", "ARv2"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}))
			return nil
		},
	}
}
