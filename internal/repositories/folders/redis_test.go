package folders_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vttbr/compendium-i18n/internal/entities/compendium"
	"github.com/vttbr/compendium-i18n/internal/errors"
	"github.com/vttbr/compendium-i18n/internal/pkg/clock"
	"github.com/vttbr/compendium-i18n/internal/repositories/folders"
	"github.com/vttbr/compendium-i18n/internal/testutils"
)

type FoldersRedisTestSuite struct {
	suite.Suite

	repo    folders.Repository
	cleanup func()
	now     time.Time
}

func TestFoldersRedisSuite(t *testing.T) {
	suite.Run(t, new(FoldersRedisTestSuite))
}

func (s *FoldersRedisTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	repo, err := folders.NewRedisRepository(&folders.Config{
		Client: client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FoldersRedisTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *FoldersRedisTestSuite) folder(id, name, kind string) *compendium.Folder {
	return &compendium.Folder{
		ID:   id,
		Name: name,
		Kind: kind,
	}
}

func (s *FoldersRedisTestSuite) TestCreateAndGet() {
	ctx := context.Background()

	created, err := s.repo.Create(ctx, folders.CreateInput{
		Folder: s.folder("fld_1", "Spells", compendium.KindCompendium),
	})
	s.Require().NoError(err)
	s.Assert().Equal(s.now, created.Folder.CreatedAt)
	s.Assert().Equal(s.now, created.Folder.UpdatedAt)

	got, err := s.repo.Get(ctx, folders.GetInput{ID: "fld_1"})
	s.Require().NoError(err)
	s.Assert().Equal("Spells", got.Folder.Name)
	s.Assert().Equal(compendium.KindCompendium, got.Folder.Kind)
}

func (s *FoldersRedisTestSuite) TestCreateValidation() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, folders.CreateInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(ctx, folders.CreateInput{
		Folder: s.folder("", "Spells", compendium.KindCompendium),
	})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(ctx, folders.CreateInput{
		Folder: s.folder("fld_1", "Spells", ""),
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *FoldersRedisTestSuite) TestCreateDuplicate() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, folders.CreateInput{
		Folder: s.folder("fld_1", "Spells", compendium.KindCompendium),
	})
	s.Require().NoError(err)

	_, err = s.repo.Create(ctx, folders.CreateInput{
		Folder: s.folder("fld_1", "Items", compendium.KindCompendium),
	})
	s.Assert().True(errors.IsAlreadyExists(err))
}

func (s *FoldersRedisTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(context.Background(), folders.GetInput{ID: "missing"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *FoldersRedisTestSuite) TestListFiltersByKind() {
	ctx := context.Background()

	for _, f := range []*compendium.Folder{
		s.folder("fld_1", "Spells", compendium.KindCompendium),
		s.folder("fld_2", "Items", compendium.KindCompendium),
		s.folder("fld_3", "Session Notes", "JournalEntry"),
	} {
		_, err := s.repo.Create(ctx, folders.CreateInput{Folder: f})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(ctx, folders.ListInput{Kind: compendium.KindCompendium})
	s.Require().NoError(err)
	s.Require().Len(out.Folders, 2)
	s.Assert().Equal("fld_1", out.Folders[0].ID)
	s.Assert().Equal("fld_2", out.Folders[1].ID)

	all, err := s.repo.List(ctx, folders.ListInput{})
	s.Require().NoError(err)
	s.Assert().Len(all.Folders, 3)
}

func (s *FoldersRedisTestSuite) TestListEmpty() {
	out, err := s.repo.List(context.Background(), folders.ListInput{Kind: compendium.KindCompendium})
	s.Require().NoError(err)
	s.Assert().Empty(out.Folders)
}

func (s *FoldersRedisTestSuite) TestUpdatePersistsRenameAndFlags() {
	ctx := context.Background()

	created, err := s.repo.Create(ctx, folders.CreateInput{
		Folder: s.folder("fld_1", "Spells", compendium.KindCompendium),
	})
	s.Require().NoError(err)

	folder := created.Folder
	folder.Name = "Magias"
	folder.SetFlag("compendium-i18n", "originalName", "Spells")
	s.Require().NoError(s.repo.Update(ctx, folder))

	got, err := s.repo.Get(ctx, folders.GetInput{ID: "fld_1"})
	s.Require().NoError(err)
	s.Assert().Equal("Magias", got.Folder.Name)

	orig, ok := got.Folder.Flag("compendium-i18n", "originalName")
	s.Require().True(ok)
	s.Assert().Equal("Spells", orig)
}

func (s *FoldersRedisTestSuite) TestUpdateMissingFolder() {
	err := s.repo.Update(context.Background(), s.folder("ghost", "Spells", compendium.KindCompendium))
	s.Assert().True(errors.IsNotFound(err))
}
