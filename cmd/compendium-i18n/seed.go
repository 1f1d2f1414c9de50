package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/vttbr/compendium-i18n/internal/config"
	"github.com/vttbr/compendium-i18n/internal/entities/compendium"
	"github.com/vttbr/compendium-i18n/internal/errors"
	"github.com/vttbr/compendium-i18n/internal/packfile"
	"github.com/vttbr/compendium-i18n/internal/pkg/idgen"
	"github.com/vttbr/compendium-i18n/internal/repositories/folders"
)

var seedDir string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create folder records from the content pack",
	Long: `Read the "folders" mapping of every pack file and create a
compendium folder record for each original name. Folders that already
exist are left alone.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedDir, "dir", "compendium/pt-BR", "content pack directory")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	svcs, err := buildServices(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svcs.client.Close() }()

	names, err := collectFolderNames(seedDir)
	if err != nil {
		return err
	}

	gen := idgen.NewUUID("fld")
	created := 0
	for _, name := range names {
		_, err := svcs.folderRepo.Create(cmd.Context(), folders.CreateInput{
			Folder: &compendium.Folder{
				ID:   gen.Generate(),
				Name: name,
				Kind: compendium.KindCompendium,
			},
		})
		if err != nil {
			if errors.IsAlreadyExists(err) {
				continue
			}
			return err
		}
		created++
	}

	fmt.Printf("seeded %d of %d folders from %s\n", created, len(names), seedDir)
	return nil
}

// collectFolderNames gathers the original folder names from every pack
// file's "folders" mapping, deduplicated and sorted.
func collectFolderNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasSuffix(name, packfile.ReducedSuffix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}
		if !gjson.ValidBytes(data) {
			continue
		}

		for folderName := range gjson.GetBytes(data, "folders").Map() {
			if folderName != "" {
				seen[folderName] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
