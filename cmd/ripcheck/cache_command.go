package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ripcheck/internal/dbarcache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local dBAR response cache",
		Long: `Manage the local cache of imported AccurateRip response files.

Commands:
  import   - Import a dBAR file into the cache
  list     - List all cached discs
  show     - Show the responses of a cached disc by number
  remove   - Remove a cached disc by number (see 'list' for numbers)
  clear    - Remove all cached discs`,
	}

	cacheCmd.AddCommand(newCacheImportCommand(ctx))
	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheShowCommand(ctx))
	cacheCmd.AddCommand(newCacheRemoveCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func requireCache(ctx *commandContext) (*dbarcache.Store, error) {
	store, err := ctx.openCache()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("the cache is disabled in the configuration")
	}
	return store, nil
}

func newCacheImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.bin>...",
		Short: "Import dBAR response files into the cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := requireCache(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			imported := make([]dbarcache.Entry, 0, len(args))
			for _, path := range args {
				entry, err := store.ImportFile(cmd.Context(), path)
				if err != nil {
					return fmt.Errorf("import %s: %w", path, err)
				}
				imported = append(imported, entry)
			}

			if ctx.JSONMode() {
				return writeJSON(cmd, imported)
			}
			out := cmd.OutOrStdout()
			for _, entry := range imported {
				fmt.Fprintf(out, "Imported %s (%d tracks, %d responses)\n",
					entry.Name(), entry.TrackCount, entry.ResponseCount)
			}
			return nil
		},
	}
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all cached discs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := requireCache(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			if ctx.JSONMode() {
				if entries == nil {
					entries = []dbarcache.Entry{}
				}
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "Cache is empty")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for i, entry := range entries {
				imported := "unknown"
				if !entry.ImportedAt.IsZero() {
					imported = entry.ImportedAt.Local().Format("2006-01-02")
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					entry.Name(),
					strconv.Itoa(entry.TrackCount),
					strconv.Itoa(entry.ResponseCount),
					imported,
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"#", "disc", "tracks", "responses", "imported"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft}))
			return nil
		},
	}
}

func newCacheShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Show the responses of a cached disc by number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := strconv.Atoi(args[0])
			if err != nil || num < 1 {
				return fmt.Errorf("invalid entry number: %s (must be a positive integer)", args[0])
			}

			store, err := requireCache(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if num > len(entries) {
				return fmt.Errorf("entry %d out of range (only %d entries exist)", num, len(entries))
			}
			entry := entries[num-1]

			responses, found, err := store.Lookup(cmd.Context(), entry.ID1, entry.ID2, entry.FreeDB)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("entry %s vanished before it could be read", entry.Name())
			}

			if ctx.JSONMode() {
				return writeJSON(cmd, responses)
			}

			printResponses(cmd.OutOrStdout(), responses)
			return nil
		},
	}
}

func newCacheRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <number>",
		Short: "Remove a cached disc by number",
		Long: `Remove a cached disc by its number from 'ripcheck cache list'.

Example:
  ripcheck cache list        # Shows numbered list of cached discs
  ripcheck cache remove 2    # Removes disc #2 from the list`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := strconv.Atoi(args[0])
			if err != nil || num < 1 {
				return fmt.Errorf("invalid entry number: %s (must be a positive integer)", args[0])
			}

			store, err := requireCache(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if num > len(entries) {
				return fmt.Errorf("entry %d out of range (only %d entries exist)", num, len(entries))
			}
			entry := entries[num-1]

			removed, err := store.Remove(cmd.Context(), entry.ID1, entry.ID2, entry.FreeDB)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("entry %s vanished before it could be removed", entry.Name())
			}

			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{"removed": true, "disc": entry.Name()})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from the cache\n", entry.Name())
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached discs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := requireCache(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}

			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{"removed": removed})
			}
			if removed == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Cache is already empty")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached discs\n", removed)
			return nil
		},
	}
}
