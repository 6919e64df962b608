package sqlite_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"github.com/Matraca130/axon-backend/internal/repository"
	"github.com/Matraca130/axon-backend/internal/repository/sqlite"
	"github.com/Matraca130/axon-backend/internal/testutil"
)

type HierarchyRepositorySuite struct {
	suite.Suite
	db   *sqlx.DB
	repo repository.HierarchyRepository
}

func (s *HierarchyRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewHierarchyRepository(s.db)
}

func (s *HierarchyRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

// seedHierarchy builds one course with filtering traps at every level:
// an inactive section, a soft-deleted lesson, and a soft-deleted deck,
// each of which must be invisible to scope resolution.
func (s *HierarchyRepositorySuite) seedHierarchy() {
	ctx := context.Background()

	exec := func(query string, args ...interface{}) {
		_, err := s.db.ExecContext(ctx, query, args...)
		s.Require().NoError(err)
	}

	exec(`INSERT INTO courses (id, title) VALUES ('c1', 'Anatomy')`)

	exec(`INSERT INTO sections (id, course_id, title) VALUES ('s1', 'c1', 'Thorax')`)
	exec(`INSERT INTO sections (id, course_id, title, active) VALUES ('s2', 'c1', 'Draft', 0)`)

	exec(`INSERT INTO lessons (id, section_id, title) VALUES ('l1', 's1', 'Heart')`)
	exec(`INSERT INTO lessons (id, section_id, title, deleted_at) VALUES ('l2', 's1', 'Removed', CURRENT_TIMESTAMP)`)
	exec(`INSERT INTO lessons (id, section_id, title) VALUES ('l3', 's2', 'Hidden')`)

	exec(`INSERT INTO decks (id, lesson_id, title) VALUES ('d1', 'l1', 'Valves')`)
	exec(`INSERT INTO decks (id, lesson_id, title) VALUES ('d2', 'l1', 'Chambers')`)
	exec(`INSERT INTO decks (id, lesson_id, title, deleted_at) VALUES ('d3', 'l1', 'Old', CURRENT_TIMESTAMP)`)
	exec(`INSERT INTO decks (id, lesson_id, title) VALUES ('d4', 'l2', 'Orphaned')`)
	exec(`INSERT INTO decks (id, lesson_id, title) VALUES ('d5', 'l3', 'Invisible')`)
}

func (s *HierarchyRepositorySuite) TestBatchedResolution() {
	s.seedHierarchy()

	ids, err := s.repo.DeckIDsForCourse(context.Background(), "c1")

	s.Require().NoError(err)
	s.ElementsMatch([]string{"d1", "d2"}, ids)
}

func (s *HierarchyRepositorySuite) TestFallbackMatchesBatched() {
	s.seedHierarchy()
	ctx := context.Background()

	batched, err := s.repo.DeckIDsForCourse(ctx, "c1")
	s.Require().NoError(err)

	sections, err := s.repo.SectionIDsForCourse(ctx, "c1")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"s1"}, sections)

	lessons, err := s.repo.LessonIDsForSections(ctx, sections)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"l1"}, lessons)

	decks, err := s.repo.DeckIDsForLessons(ctx, lessons)
	s.Require().NoError(err)
	s.ElementsMatch(batched, decks)
}

func (s *HierarchyRepositorySuite) TestUnknownCourseIsEmpty() {
	s.seedHierarchy()
	ctx := context.Background()

	ids, err := s.repo.DeckIDsForCourse(ctx, "no-such-course")
	s.Require().NoError(err)
	s.Empty(ids)

	sections, err := s.repo.SectionIDsForCourse(ctx, "no-such-course")
	s.Require().NoError(err)
	s.Empty(sections)
}

func (s *HierarchyRepositorySuite) TestSoftDeletedCourseHidesEverything() {
	s.seedHierarchy()
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `UPDATE courses SET deleted_at = CURRENT_TIMESTAMP WHERE id = 'c1'`)
	s.Require().NoError(err)

	ids, err := s.repo.DeckIDsForCourse(ctx, "c1")
	s.Require().NoError(err)
	s.Empty(ids)
}

func TestHierarchyRepositorySuite(t *testing.T) {
	suite.Run(t, new(HierarchyRepositorySuite))
}
