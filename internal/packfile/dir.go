package packfile

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vttbr/compendium-i18n/internal/errors"
)

const jsonExt = ".json"

// Summary reports what a directory operation touched.
type Summary struct {
	Processed int
	Written   int
	Skipped   int
}

// listPackFiles returns the pack files in dir, sorted by name. Sidecar
// *.reduced.json files are excluded.
func listPackFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, jsonExt) || strings.HasSuffix(name, ReducedSuffix) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

// reducedPath returns the sidecar path for a pack file.
func reducedPath(packPath string) string {
	return strings.TrimSuffix(packPath, jsonExt) + ReducedSuffix
}

// loadDocument reads and decodes one pack file as a JSON object.
func loadDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "invalid JSON in %s", path)
	}
	return doc, nil
}

// writeDocument renders and writes one pack file in canonical form.
func writeDocument(path string, doc map[string]any) error {
	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// ReduceDir writes a *.reduced.json sidecar for every pack file whose
// entries carry translatable content beyond the reduced form.
func ReduceDir(dir string) (*Summary, error) {
	files, err := listPackFiles(dir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, path := range files {
		summary.Processed++

		doc, err := loadDocument(path)
		if err != nil {
			slog.Warn("Skipping unreadable pack file", "file", path, "error", err)
			summary.Skipped++
			continue
		}

		if !HasEntriesNonempty(doc) || !HasTranslatableList(doc) {
			slog.Debug("Nothing to reduce", "file", path)
			summary.Skipped++
			continue
		}

		reduced, ok := ReduceEntries(doc).(map[string]any)
		if !ok || reflect.DeepEqual(doc, reduced) {
			slog.Debug("Reduction changed nothing", "file", path)
			summary.Skipped++
			continue
		}

		if err := writeDocument(reducedPath(path), reduced); err != nil {
			return nil, err
		}
		summary.Written++
		slog.Info("Wrote reduced pack", "file", reducedPath(path))
	}
	return summary, nil
}

// MergeDir folds every *.reduced.json sidecar back into its pack file.
// Pack files without a sidecar are left alone.
func MergeDir(dir string) (*Summary, error) {
	files, err := listPackFiles(dir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, path := range files {
		sidecar := reducedPath(path)
		if _, err := os.Stat(sidecar); err != nil {
			continue
		}
		summary.Processed++

		original, err := loadDocument(path)
		if err != nil {
			slog.Warn("Skipping unreadable pack file", "file", path, "error", err)
			summary.Skipped++
			continue
		}
		translated, err := loadDocument(sidecar)
		if err != nil {
			slog.Warn("Skipping unreadable sidecar", "file", sidecar, "error", err)
			summary.Skipped++
			continue
		}

		if !MergeDocuments(original, translated) {
			slog.Debug("No entries to merge", "file", path)
			summary.Skipped++
			continue
		}

		if err := writeDocument(path, original); err != nil {
			return nil, err
		}
		summary.Written++
		slog.Info("Merged translations", "file", path)
	}
	return summary, nil
}

// SortDir rewrites every pack file in canonical key order. Sidecars are
// skipped.
func SortDir(dir string) (*Summary, error) {
	files, err := listPackFiles(dir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, path := range files {
		summary.Processed++

		doc, err := loadDocument(path)
		if err != nil {
			slog.Warn("Skipping unreadable pack file", "file", path, "error", err)
			summary.Skipped++
			continue
		}

		if err := writeDocument(path, doc); err != nil {
			return nil, err
		}
		summary.Written++
	}
	return summary, nil
}

// PurgeDir deletes every *.reduced.json sidecar in dir and returns how
// many were removed.
func PurgeDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ReducedSuffix) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return count, errors.Wrapf(err, "failed to delete %s", path)
		}
		count++
		slog.Info("Deleted reduced pack", "file", path)
	}
	return count, nil
}

// FileReport summarizes one pack file for the report listing.
type FileReport struct {
	File    string
	Label   string
	Entries int
	Folders int
	Reduced bool
}

// ReportDir summarizes every pack file in dir without modifying it.
func ReportDir(dir string) ([]FileReport, error) {
	files, err := listPackFiles(dir)
	if err != nil {
		return nil, err
	}

	reports := make([]FileReport, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		if !gjson.ValidBytes(data) {
			slog.Warn("Skipping invalid pack file", "file", path)
			continue
		}

		_, statErr := os.Stat(reducedPath(path))
		reports = append(reports, FileReport{
			File:    filepath.Base(path),
			Label:   gjson.GetBytes(data, "label").String(),
			Entries: len(gjson.GetBytes(data, "entries").Map()),
			Folders: len(gjson.GetBytes(data, "folders").Map()),
			Reduced: statErr == nil,
		})
	}
	return reports, nil
}
