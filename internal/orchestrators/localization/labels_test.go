package localization_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/vttbr/compendium-i18n/internal/entities/compendium"
	"github.com/vttbr/compendium-i18n/internal/errors"
	"github.com/vttbr/compendium-i18n/internal/orchestrators/localization"
	foldersmock "github.com/vttbr/compendium-i18n/internal/repositories/folders/mock"
	"github.com/vttbr/compendium-i18n/internal/repositories/panels"
	panelsmock "github.com/vttbr/compendium-i18n/internal/repositories/panels/mock"
	"github.com/vttbr/compendium-i18n/internal/repositories/settings"
	settingsmock "github.com/vttbr/compendium-i18n/internal/repositories/settings/mock"
)

type TranslateLabelsTestSuite struct {
	suite.Suite

	ctrl         *gomock.Controller
	mockFolders  *foldersmock.MockRepository
	mockPanels   *panelsmock.MockRepository
	mockSettings *settingsmock.MockRepository
	bus          *capturingBus

	svc localization.Service
	ctx context.Context
}

func TestTranslateLabelsSuite(t *testing.T) {
	suite.Run(t, new(TranslateLabelsTestSuite))
}

func (s *TranslateLabelsTestSuite) SetupTest() {
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

func (s *TranslateLabelsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TranslateLabelsTestSuite) expectLocale(locale string) {
	s.mockSettings.EXPECT().
		Get(s.ctx, settings.GetInput{Key: settings.KeyActiveLocale}).
		Return(&settings.GetOutput{Value: locale}, nil)
}

func (s *TranslateLabelsTestSuite) expectPanel(labels ...string) {
	s.mockPanels.EXPECT().
		Get(s.ctx, panels.GetInput{ID: compendium.PanelCompendiumDirectory}).
		Return(&panels.GetOutput{Panel: &compendium.Panel{
			ID:     compendium.PanelCompendiumDirectory,
			Labels: labels,
		}}, nil)
}

func (s *TranslateLabelsTestSuite) TestSubstitutesDictionaryLabels() {
	s.expectLocale("pt-BR")
	s.expectPanel("Rules", "Spells", "Bestiary")

	s.mockPanels.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *compendium.Panel) error {
			s.Assert().Equal([]string{"Regras", "Magias", "Bestiary"}, p.Labels)
			return nil
		})

	output, err := s.svc.TranslateLabels(s.ctx, &localization.TranslateLabelsInput{
		PanelID: compendium.PanelCompendiumDirectory,
	})
	s.Require().NoError(err)

	s.Assert().False(output.Skipped)
	s.Assert().Equal(2, output.Replaced)
	s.Assert().Equal([]string{"Regras", "Magias", "Bestiary"}, output.Labels)
}

func (s *TranslateLabelsTestSuite) TestIgnoresOtherPanels() {
	// No settings or panel expectations: the guard fires first.
	output, err := s.svc.TranslateLabels(s.ctx, &localization.TranslateLabelsInput{
		PanelID: "chat-log",
	})
	s.Require().NoError(err)
	s.Assert().True(output.Skipped)
}

func (s *TranslateLabelsTestSuite) TestIgnoresOtherLocales() {
	s.expectLocale("fr")

	output, err := s.svc.TranslateLabels(s.ctx, &localization.TranslateLabelsInput{
		PanelID: compendium.PanelCompendiumDirectory,
	})
	s.Require().NoError(err)
	s.Assert().True(output.Skipped)
}

func (s *TranslateLabelsTestSuite) TestNoDictionaryLabels() {
	s.expectLocale("pt-BR")
	s.expectPanel("Bestiary", "Maps")

	// No Save expectation: nothing matched, nothing written.
	output, err := s.svc.TranslateLabels(s.ctx, &localization.TranslateLabelsInput{
		PanelID: compendium.PanelCompendiumDirectory,
	})
	s.Require().NoError(err)

	s.Assert().False(output.Skipped)
	s.Assert().Equal(0, output.Replaced)
	s.Assert().Equal([]string{"Bestiary", "Maps"}, output.Labels)
}

func (s *TranslateLabelsTestSuite) TestAlreadyTranslatedIsStable() {
	s.expectLocale("pt-BR")
	s.expectPanel("Regras", "Magias")

	output, err := s.svc.TranslateLabels(s.ctx, &localization.TranslateLabelsInput{
		PanelID: compendium.PanelCompendiumDirectory,
	})
	s.Require().NoError(err)
	s.Assert().Equal(0, output.Replaced)
}

func (s *TranslateLabelsTestSuite) TestPanelNeverRendered() {
	s.expectLocale("pt-BR")
	s.mockPanels.EXPECT().
		Get(s.ctx, panels.GetInput{ID: compendium.PanelCompendiumDirectory}).
		Return(nil, errors.NotFound("panel not found"))

	output, err := s.svc.TranslateLabels(s.ctx, &localization.TranslateLabelsInput{
		PanelID: compendium.PanelCompendiumDirectory,
	})
	s.Require().NoError(err)
	s.Assert().True(output.Skipped)
}

func (s *TranslateLabelsTestSuite) TestPanelIDRequired() {
	_, err := s.svc.TranslateLabels(s.ctx, &localization.TranslateLabelsInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
