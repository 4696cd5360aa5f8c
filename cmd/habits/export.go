// ABOUTME: CLI commands for exporting and importing tracker data.
// ABOUTME: Supports JSON backup files and backend migration.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tracker data as JSON",
	Long: `Export all categories, trackers, and completion records as JSON.

The export preserves tracker IDs and category order, so it can be
imported into a fresh database or a different storage backend without
breaking ID prefixes.

EXAMPLES:

  habits export                    # Write JSON to stdout
  habits export -o backup.json     # Save to file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		export, err := storage.Export(repo)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tracker data from JSON",
	Long: `Import categories, trackers, and completion records from a JSON
backup file produced by 'habits export'.

Trackers keep their original IDs. Importing into a database that
already contains one of the IDs is an error.

EXAMPLES:

  habits import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var export storage.ExportData
		if err := json.Unmarshal(raw, &export); err != nil {
			return fmt.Errorf("invalid export file: %w", err)
		}

		if err := storage.Import(repo, &export); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
