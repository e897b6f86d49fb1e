package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"ripcheck/internal/audio"
)

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version and decoder information",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			version := "devel"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				version = info.Main.Version
			}
			decoders := audio.DecoderVersion()

			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]string{
					"version":  version,
					"decoders": decoders,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ripcheck %s\n", version)
			fmt.Fprintf(out, "decoders: %s\n", decoders)
			return nil
		},
	}
}
