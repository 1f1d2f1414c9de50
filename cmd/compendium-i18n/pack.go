package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vttbr/compendium-i18n/internal/packfile"
)

var packDir string

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Maintain the translation JSON files of the content pack",
}

var packReduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Write *.reduced.json sidecars holding only translatable content",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := packfile.ReduceDir(packDir)
		if err != nil {
			return err
		}
		fmt.Printf("reduced %d of %d files (%d skipped)\n",
			summary.Written, summary.Processed, summary.Skipped)
		return nil
	},
}

var packMergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Fold translated sidecars back into the pack files",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := packfile.MergeDir(packDir)
		if err != nil {
			return err
		}
		fmt.Printf("merged %d of %d files (%d skipped)\n",
			summary.Written, summary.Processed, summary.Skipped)
		return nil
	},
}

var packSortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Rewrite pack files in canonical key order",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := packfile.SortDir(packDir)
		if err != nil {
			return err
		}
		fmt.Printf("sorted %d of %d files\n", summary.Written, summary.Processed)
		return nil
	},
}

var packPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all *.reduced.json sidecars",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := packfile.PurgeDir(packDir)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %d sidecars\n", count)
		return nil
	},
}

var packReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the pack files without modifying them",
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, err := packfile.ReportDir(packDir)
		if err != nil {
			return err
		}
		for _, r := range reports {
			marker := " "
			if r.Reduced {
				marker = "*"
			}
			fmt.Printf("%s %-30s label=%q entries=%d folders=%d\n",
				marker, r.File, r.Label, r.Entries, r.Folders)
		}
		fmt.Printf("%d pack files (* has a reduced sidecar)\n", len(reports))
		return nil
	},
}

func init() {
	packCmd.PersistentFlags().StringVar(&packDir, "dir", "compendium/pt-BR", "content pack directory")

	packCmd.AddCommand(packReduceCmd)
	packCmd.AddCommand(packMergeCmd)
	packCmd.AddCommand(packSortCmd)
	packCmd.AddCommand(packPurgeCmd)
	packCmd.AddCommand(packReportCmd)
}
