package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vttbr/compendium-i18n/internal/config"
	"github.com/vttbr/compendium-i18n/internal/orchestrators/localization"
)

var renameLocale string

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Run the folder rename routine once",
	Long: `Apply the dictionary to every compendium folder once and exit.
Useful for applying a locale switch without waiting for the host to
start up.`,
	RunE: runRename,
}

func init() {
	renameCmd.Flags().StringVar(&renameLocale, "locale", "", "locale to apply (defaults to the host language setting)")
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if renameLocale == "" {
		renameLocale = cfg.Locale
	}

	svcs, err := buildServices(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svcs.client.Close() }()

	output, err := svcs.localizer.RenameFolders(cmd.Context(), &localization.RenameFoldersInput{
		Locale: renameLocale,
	})
	if err != nil {
		return err
	}

	fmt.Printf("processed %d folders: %d flagged, %d renamed\n",
		output.Processed, output.Flagged, output.Renamed)
	return nil
}
