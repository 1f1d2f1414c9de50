package localization_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/vttbr/compendium-i18n/internal/entities/compendium"
	"github.com/vttbr/compendium-i18n/internal/errors"
	"github.com/vttbr/compendium-i18n/internal/hostevents"
	"github.com/vttbr/compendium-i18n/internal/orchestrators/localization"
	"github.com/vttbr/compendium-i18n/internal/repositories/folders"
	foldersmock "github.com/vttbr/compendium-i18n/internal/repositories/folders/mock"
	panelsmock "github.com/vttbr/compendium-i18n/internal/repositories/panels/mock"
	"github.com/vttbr/compendium-i18n/internal/repositories/settings"
	settingsmock "github.com/vttbr/compendium-i18n/internal/repositories/settings/mock"
)

const testScope = "compendium-i18n"

// capturingBus implements events.EventBus and records published event types.
type capturingBus struct {
	mu        sync.Mutex
	published []string
}

func (b *capturingBus) Publish(_ context.Context, e events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, e.Type())
	return nil
}
func (b *capturingBus) Subscribe(_ string, _ events.Handler) string             { return "sub-id" }
func (b *capturingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string { return "sub-id" }
func (b *capturingBus) Unsubscribe(_ string) error                              { return nil }
func (b *capturingBus) Clear(_ string)                                          {}
func (b *capturingBus) ClearAll()                                               {}

func (b *capturingBus) topics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.published...)
}

type RenameFoldersTestSuite struct {
	suite.Suite

	ctrl         *gomock.Controller
	mockFolders  *foldersmock.MockRepository
	mockPanels   *panelsmock.MockRepository
	mockSettings *settingsmock.MockRepository
	bus          *capturingBus

	svc localization.Service
	ctx context.Context
}

func TestRenameFoldersSuite(t *testing.T) {
	suite.Run(t, new(RenameFoldersTestSuite))
}

func (s *RenameFoldersTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockFolders = foldersmock.NewMockRepository(s.ctrl)
	s.mockPanels = panelsmock.NewMockRepository(s.ctrl)
	s.mockSettings = settingsmock.NewMockRepository(s.ctrl)
	s.bus = &capturingBus{}
	s.ctx = context.Background()

	svc, err := localization.NewOrchestrator(&localization.Config{
		FolderRepo: s.mockFolders,
		PanelRepo:  s.mockPanels,
		Settings:   s.mockSettings,
		EventBus:   s.bus,
		FlagScope:  testScope,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *RenameFoldersTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RenameFoldersTestSuite) expectLocale(locale string) {
	s.mockSettings.EXPECT().
		Get(s.ctx, settings.GetInput{Key: settings.KeyActiveLocale}).
		Return(&settings.GetOutput{Value: locale}, nil)
}

func (s *RenameFoldersTestSuite) expectList(fs ...*compendium.Folder) {
	s.mockFolders.EXPECT().
		List(s.ctx, folders.ListInput{Kind: compendium.KindCompendium}).
		Return(&folders.ListOutput{Folders: fs}, nil)
}

func folder(id, name string) *compendium.Folder {
	return &compendium.Folder{
		ID:   id,
		Name: name,
		Kind: compendium.KindCompendium,
	}
}

func flaggedFolder(id, name, original string) *compendium.Folder {
	f := folder(id, name)
	f.SetFlag(testScope, localization.FlagOriginalName, original)
	return f
}

func (s *RenameFoldersTestSuite) TestTranslatesUnderTargetLocale() {
	s.expectLocale("pt-BR")
	s.expectList(folder("fld_1", "Spells"), folder("fld_2", "Bestiary"))

	updated := make(map[string]*compendium.Folder)
	var mu sync.Mutex
	s.mockFolders.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, f *compendium.Folder) error {
			mu.Lock()
			defer mu.Unlock()
			updated[f.ID] = f
			return nil
		})

	output, err := s.svc.RenameFolders(s.ctx, &localization.RenameFoldersInput{})
	s.Require().NoError(err)

	s.Assert().Equal(2, output.Processed)
	s.Assert().Equal(2, output.Flagged)
	s.Assert().Equal(1, output.Renamed)
	s.Assert().True(output.RefreshRequested)

	// Dictionary folder renamed, unknown folder kept (identity fallback);
	// both carry the original-name flag after a first run.
	s.Assert().Equal("Magias", updated["fld_1"].Name)
	s.Assert().Equal("Bestiary", updated["fld_2"].Name)

	orig, ok := updated["fld_1"].Flag(testScope, localization.FlagOriginalName)
	s.Require().True(ok)
	s.Assert().Equal("Spells", orig)

	s.Assert().Equal([]string{hostevents.TopicRenderRequested}, s.bus.topics())
}

func (s *RenameFoldersTestSuite) TestIdentityUnderOtherLocale() {
	s.expectLocale("en")
	s.expectList(folder("fld_1", "Spells"))

	// First observation still records the flag, but no rename happens.
	s.mockFolders.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *compendium.Folder) error {
			s.Assert().Equal("Spells", f.Name)
			orig, ok := f.Flag(testScope, localization.FlagOriginalName)
			s.Require().True(ok)
			s.Assert().Equal("Spells", orig)
			return nil
		})

	output, err := s.svc.RenameFolders(s.ctx, &localization.RenameFoldersInput{})
	s.Require().NoError(err)

	s.Assert().Equal(1, output.Flagged)
	s.Assert().Equal(0, output.Renamed)
	s.Assert().False(output.RefreshRequested)
	s.Assert().Empty(s.bus.topics())
}

func (s *RenameFoldersTestSuite) TestSecondRunIsIdempotent() {
	s.expectLocale("pt-BR")
	s.expectList(
		flaggedFolder("fld_1", "Magias", "Spells"),
		flaggedFolder("fld_2", "Bestiary", "Bestiary"),
	)

	// No Update expectations: a second run with no locale change must
	// issue no further update calls.
	output, err := s.svc.RenameFolders(s.ctx, &localization.RenameFoldersInput{})
	s.Require().NoError(err)

	s.Assert().Equal(2, output.Processed)
	s.Assert().Equal(0, output.Flagged)
	s.Assert().Equal(0, output.Renamed)
	s.Assert().False(output.RefreshRequested)
	s.Assert().Empty(s.bus.topics())
}

func (s *RenameFoldersTestSuite) TestRenamesBackAfterLocaleSwitch() {
	s.expectLocale("en")
	s.expectList(flaggedFolder("fld_1", "Magias", "Spells"))

	s.mockFolders.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *compendium.Folder) error {
			s.Assert().Equal("Spells", f.Name)

			// The flag is never overwritten, even though the current
			// name differed from it.
			orig, ok := f.Flag(testScope, localization.FlagOriginalName)
			s.Require().True(ok)
			s.Assert().Equal("Spells", orig)
			return nil
		})

	output, err := s.svc.RenameFolders(s.ctx, &localization.RenameFoldersInput{})
	s.Require().NoError(err)

	s.Assert().Equal(1, output.Renamed)
	s.Assert().True(output.RefreshRequested)
}

func (s *RenameFoldersTestSuite) TestLocaleOverrideSkipsSettings() {
	s.expectList(flaggedFolder("fld_1", "Spells", "Spells"))

	s.mockFolders.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *compendium.Folder) error {
			s.Assert().Equal("Magias", f.Name)
			return nil
		})

	output, err := s.svc.RenameFolders(s.ctx, &localization.RenameFoldersInput{Locale: "pt-BR"})
	s.Require().NoError(err)
	s.Assert().Equal(1, output.Renamed)
}

func (s *RenameFoldersTestSuite) TestDefaultsLocaleWhenUnset() {
	s.mockSettings.EXPECT().
		Get(s.ctx, settings.GetInput{Key: settings.KeyActiveLocale}).
		Return(nil, errors.NotFound("setting not found"))
	s.expectList(flaggedFolder("fld_1", "Spells", "Spells"))

	output, err := s.svc.RenameFolders(s.ctx, &localization.RenameFoldersInput{})
	s.Require().NoError(err)
	s.Assert().Equal(0, output.Renamed)
}

func (s *RenameFoldersTestSuite) TestListErrorPropagates() {
	s.expectLocale("pt-BR")
	s.mockFolders.EXPECT().
		List(s.ctx, folders.ListInput{Kind: compendium.KindCompendium}).
		Return(nil, errors.Unavailable("store down"))

	_, err := s.svc.RenameFolders(s.ctx, &localization.RenameFoldersInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *RenameFoldersTestSuite) TestUpdateErrorPropagates() {
	s.expectLocale("pt-BR")
	s.expectList(folder("fld_1", "Spells"))

	s.mockFolders.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(errors.Unavailable("store down"))

	_, err := s.svc.RenameFolders(s.ctx, &localization.RenameFoldersInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
	s.Assert().Empty(s.bus.topics())
}

func (s *RenameFoldersTestSuite) TestNoFolders() {
	s.expectLocale("pt-BR")
	s.expectList()

	output, err := s.svc.RenameFolders(s.ctx, &localization.RenameFoldersInput{})
	s.Require().NoError(err)
	s.Assert().Equal(0, output.Processed)
	s.Assert().False(output.RefreshRequested)
}

func (s *RenameFoldersTestSuite) TestConfigValidation() {
	_, err := localization.NewOrchestrator(&localization.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
