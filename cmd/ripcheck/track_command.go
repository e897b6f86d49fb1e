package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ripcheck/internal/audio"
	"ripcheck/internal/checksum"
)

func newTrackCommand(ctx *commandContext) *cobra.Command {
	var skipSilence bool

	cmd := &cobra.Command{
		Use:   "track <file> <track> <total-tracks>",
		Short: "Compute the checksums of one ripped track",
		Long: `Compute the AccurateRip v1/v2 checksums and the copy CRC of a single
ripped track. The track number and total track count determine the
AccurateRip guard windows: the first and last track of a disc skip the
lead-in and lead-out sectors.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			track, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("track number %q: %w", args[1], err)
			}
			total, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("total track count %q: %w", args[2], err)
			}

			result, err := checksum.ComputeFile(cmd.Context(), path, track, total,
				checksum.Options{SkipSilence: skipSilence})
			if err != nil {
				return err
			}

			if ctx.JSONMode() {
				payload := map[string]any{
					"path":  path,
					"track": track,
					"total": total,
					"arv1":  fmt.Sprintf("%08x", result.ARv1),
					"arv2":  fmt.Sprintf("%08x", result.ARv2),
					"crc32": fmt.Sprintf("%08x", result.CRC32),
				}
				if result.HasSkipSilence {
					payload["crc32_skip_silence"] = fmt.Sprintf("%08x", result.CRC32SkipSilence)
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File: %s (track %d of %d)\n", path, track, total)
			fmt.Fprintf(out, "  Copy CRC: %08x\n", result.CRC32)
			if result.HasSkipSilence {
				fmt.Fprintf(out, "  Copy CRC (silence stripped): %08x\n", result.CRC32SkipSilence)
			}
			fmt.Fprintf(out, "  ARv1: %08x\n", result.ARv1)
			fmt.Fprintf(out, "  ARv2: %08x\n", result.ARv2)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipSilence, "skip-silence", false,
		"Also compute a copy CRC with zero samples removed")
	return cmd
}

func newFramesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "frames <file>...",
		Short: "Show the audio frame count of ripped files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type fileFrames struct {
				Path   string `json:"path"`
				Frames int64  `json:"frames"`
			}

			results := make([]fileFrames, 0, len(args))
			for _, path := range args {
				frames, err := audio.FrameCount(path)
				if err != nil {
					return err
				}
				results = append(results, fileFrames{Path: path, Frames: frames})
			}

			if ctx.JSONMode() {
				return writeJSON(cmd, results)
			}

			printer := message.NewPrinter(language.English)
			out := cmd.OutOrStdout()
			for _, r := range results {
				printer.Fprintf(out, "%s: %d frames\n", r.Path, r.Frames)
			}
			return nil
		},
	}
}
