// Package localization implements the orchestrator that applies the
// canonical dictionary to host state: compendium folder names at startup
// and panel labels on render.
package localization

//go:generate mockgen -destination=mock/mock_service.go -package=localizationmock github.com/vttbr/compendium-i18n/internal/orchestrators/localization Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"golang.org/x/sync/errgroup"

	"github.com/vttbr/compendium-i18n/internal/entities/compendium"
	"github.com/vttbr/compendium-i18n/internal/errors"
	"github.com/vttbr/compendium-i18n/internal/hostevents"
	"github.com/vttbr/compendium-i18n/internal/lexicon"
	"github.com/vttbr/compendium-i18n/internal/repositories/folders"
	"github.com/vttbr/compendium-i18n/internal/repositories/panels"
	"github.com/vttbr/compendium-i18n/internal/repositories/settings"
)

const (
	// FlagOriginalName is the per-folder flag key recording the
	// untranslated name. Written once, read on every later run.
	FlagOriginalName = "originalName"

	// Locale assumed when the host never set one
	defaultLocale = "en"
)

// Service defines the interface for localization operations
type Service interface {
	// RenameFolders applies the dictionary to every compendium folder
	RenameFolders(ctx context.Context, input *RenameFoldersInput) (*RenameFoldersOutput, error)

	// TranslateLabels rewrites the labels of the compendium directory panel
	TranslateLabels(ctx context.Context, input *TranslateLabelsInput) (*TranslateLabelsOutput, error)
}

// Config holds the dependencies for the localization orchestrator
type Config struct {
	FolderRepo folders.Repository
	PanelRepo  panels.Repository
	Settings   settings.Repository
	EventBus   events.EventBus

	// FlagScope namespaces the originalName flag; defaults to the module ID
	FlagScope string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.FolderRepo == nil {
		vb.RequiredField("FolderRepo")
	}
	if c.PanelRepo == nil {
		vb.RequiredField("PanelRepo")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	folderRepo folders.Repository
	panelRepo  panels.Repository
	settings   settings.Repository
	eventBus   events.EventBus
	flagScope  string
}

// NewOrchestrator creates a new localization orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	scope := cfg.FlagScope
	if scope == "" {
		scope = hostevents.ModuleID
	}

	return &orchestrator{
		folderRepo: cfg.FolderRepo,
		panelRepo:  cfg.PanelRepo,
		settings:   cfg.Settings,
		eventBus:   cfg.EventBus,
		flagScope:  scope,
	}, nil
}

// activeLocale resolves the locale to apply: the input override when
// present, the host setting otherwise, defaulting when the host never
// chose a language.
func (o *orchestrator) activeLocale(ctx context.Context, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	out, err := o.settings.Get(ctx, settings.GetInput{Key: settings.KeyActiveLocale})
	if err != nil {
		if errors.IsNotFound(err) {
			return defaultLocale, nil
		}
		return "", errors.Wrap(err, "failed to read active locale")
	}
	return out.Value, nil
}

// RenameFolders applies the dictionary to every compendium folder.
//
// For each folder it recovers the recorded original name (or records the
// current name the first time the folder is seen), computes the name the
// active locale calls for, and issues an update only when something
// changed. The updates target disjoint records and run concurrently; the
// UI refresh request is published only after all of them settle.
func (o *orchestrator) RenameFolders(ctx context.Context, input *RenameFoldersInput) (*RenameFoldersOutput, error) {
	if input == nil {
		input = &RenameFoldersInput{}
	}

	locale, err := o.activeLocale(ctx, input.Locale)
	if err != nil {
		return nil, err
	}

	listOutput, err := o.folderRepo.List(ctx, folders.ListInput{Kind: compendium.KindCompendium})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list compendium folders")
	}

	output := &RenameFoldersOutput{
		Processed: len(listOutput.Folders),
	}

	var dirty []*compendium.Folder
	for _, folder := range listOutput.Folders {
		changed := false

		original, ok := folder.Flag(o.flagScope, FlagOriginalName)
		if !ok {
			// First time this folder is observed; record its name so a
			// later run can recover the untranslated form.
			original = folder.Name
			folder.SetFlag(o.flagScope, FlagOriginalName, original)
			output.Flagged++
			changed = true
		}

		want := lexicon.Localize(original, locale)
		if want != folder.Name {
			folder.Name = want
			output.Renamed++
			changed = true
		}

		if changed {
			dirty = append(dirty, folder)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, folder := range dirty {
		g.Go(func() error {
			if err := o.folderRepo.Update(gctx, folder); err != nil {
				return errors.Wrapf(err, "failed to update folder %s", folder.ID)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if output.Renamed > 0 {
		event := events.NewGameEvent(hostevents.TopicRenderRequested, hostevents.Module, nil)
		if err := o.eventBus.Publish(ctx, event); err != nil {
			return nil, errors.Wrap(err, "failed to request UI refresh")
		}
		output.RefreshRequested = true
	}

	slog.Info("Compendium folders localized",
		"locale", locale,
		"processed", output.Processed,
		"flagged", output.Flagged,
		"renamed", output.Renamed,
	)

	return output, nil
}

// TranslateLabels rewrites the labels of the compendium directory panel.
// It only applies to the designated panel and only under the target
// locale; labels absent from the dictionary are never touched.
func (o *orchestrator) TranslateLabels(ctx context.Context, input *TranslateLabelsInput) (*TranslateLabelsOutput, error) {
	if input == nil || input.PanelID == "" {
		return nil, errors.InvalidArgument("panel ID is required")
	}

	if input.PanelID != compendium.PanelCompendiumDirectory {
		return &TranslateLabelsOutput{Skipped: true}, nil
	}

	locale, err := o.activeLocale(ctx, input.Locale)
	if err != nil {
		return nil, err
	}
	if !lexicon.IsTarget(locale) {
		return &TranslateLabelsOutput{Skipped: true}, nil
	}

	getOutput, err := o.panelRepo.Get(ctx, panels.GetInput{ID: input.PanelID})
	if err != nil {
		if errors.IsNotFound(err) {
			// Panel never rendered; nothing to rewrite.
			return &TranslateLabelsOutput{Skipped: true}, nil
		}
		return nil, errors.Wrap(err, "failed to load panel")
	}

	panel := getOutput.Panel
	output := &TranslateLabelsOutput{}
	for i, label := range panel.Labels {
		if translated, ok := lexicon.Lookup(label); ok {
			panel.Labels[i] = translated
			output.Replaced++
		}
	}
	output.Labels = panel.Labels

	if output.Replaced > 0 {
		if err := o.panelRepo.Save(ctx, panel); err != nil {
			return nil, errors.Wrap(err, "failed to save panel labels")
		}

		slog.Info("Panel labels translated",
			"panel_id", panel.ID,
			"locale", locale,
			"replaced", output.Replaced,
		)
	}

	return output, nil
}
