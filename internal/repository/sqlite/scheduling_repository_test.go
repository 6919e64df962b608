package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/repository"
	"github.com/Matraca130/axon-backend/internal/repository/sqlite"
	"github.com/Matraca130/axon-backend/internal/testutil"
)

const learnerID = "learner-1"

type SchedulingRepositorySuite struct {
	suite.Suite
	db   *sqlx.DB
	repo repository.SchedulingRepository
}

func (s *SchedulingRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSchedulingRepository(s.db)
}

func (s *SchedulingRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SchedulingRepositorySuite) seed(now time.Time) {
	ctx := context.Background()

	exec := func(query string, args ...interface{}) {
		_, err := s.db.ExecContext(ctx, query, args...)
		s.Require().NoError(err)
	}

	exec(`INSERT INTO courses (id, title) VALUES ('c1', 'Course')`)
	exec(`INSERT INTO sections (id, course_id, title) VALUES ('s1', 'c1', 'Section')`)
	exec(`INSERT INTO lessons (id, section_id, title) VALUES ('l1', 's1', 'Lesson')`)
	exec(`INSERT INTO decks (id, lesson_id, title) VALUES ('d1', 'l1', 'Deck')`)

	exec(`INSERT INTO items (id, deck_id, front, back) VALUES ('past-due', 'd1', 'q', 'a')`)
	exec(`INSERT INTO items (id, deck_id, front, back) VALUES ('future-due', 'd1', 'q', 'a')`)
	exec(`INSERT INTO items (id, deck_id, front, back) VALUES ('never-due', 'd1', 'q', 'a')`)
	exec(`INSERT INTO items (id, deck_id, front, back, deleted_at) VALUES ('gone', 'd1', 'q', 'a', CURRENT_TIMESTAMP)`)

	exec(`INSERT INTO item_scheduling (learner_id, item_id, stability, due_at, last_review_at, repetitions, lapses, state)
	      VALUES (?, 'past-due', 5, ?, ?, 3, 1, 'review')`, learnerID, now.Add(-24*time.Hour), now.Add(-48*time.Hour))
	exec(`INSERT INTO item_scheduling (learner_id, item_id, stability, due_at, state)
	      VALUES (?, 'future-due', 5, ?, 'review')`, learnerID, now.Add(72*time.Hour))
	exec(`INSERT INTO item_scheduling (learner_id, item_id, stability, state)
	      VALUES (?, 'never-due', 1, 'learning')`, learnerID)
	exec(`INSERT INTO item_scheduling (learner_id, item_id, stability, due_at, state)
	      VALUES (?, 'gone', 5, ?, 'review')`, learnerID, now.Add(-24*time.Hour))
	exec(`INSERT INTO item_scheduling (learner_id, item_id, stability, due_at, state)
	      VALUES ('other-learner', 'past-due', 5, ?, 'review')`, now.Add(-24*time.Hour))
}

func (s *SchedulingRepositorySuite) TestFetchAll() {
	now := time.Now().UTC()
	s.seed(now)

	rows, err := s.repo.SchedulingByLearner(context.Background(), learnerID, nil)

	s.Require().NoError(err)
	s.Len(rows, 3, "rows for deleted items and other learners are excluded")
	s.Contains(rows, "past-due")
	s.Contains(rows, "future-due")
	s.Contains(rows, "never-due")

	got := rows["past-due"]
	s.Equal(learnerID, got.LearnerID)
	s.Equal(5.0, got.Stability)
	s.Equal(3, got.Repetitions)
	s.Equal(1, got.Lapses)
	s.Equal(models.StateReview, got.State)
	s.Require().NotNil(got.DueAt)
	s.Require().NotNil(got.LastReviewAt)
}

func (s *SchedulingRepositorySuite) TestDueBeforeFilter() {
	now := time.Now().UTC()
	s.seed(now)

	rows, err := s.repo.SchedulingByLearner(context.Background(), learnerID, &now)

	s.Require().NoError(err)
	s.Len(rows, 2, "due rows and never-due rows qualify; only future-due rows are prefiltered")
	s.Contains(rows, "past-due")
	s.Contains(rows, "never-due", "a NULL due_at row carries real history and must survive the prefilter")
	s.NotContains(rows, "future-due")
}

func (s *SchedulingRepositorySuite) TestNoRows() {
	rows, err := s.repo.SchedulingByLearner(context.Background(), "unknown", nil)

	s.Require().NoError(err)
	s.Empty(rows)
}

func TestSchedulingRepositorySuite(t *testing.T) {
	suite.Run(t, new(SchedulingRepositorySuite))
}
