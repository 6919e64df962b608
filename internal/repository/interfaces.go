package repository

import (
	"context"
	"time"

	"github.com/Matraca130/axon-backend/internal/models"
)

// MasteryRepository reads Bayesian Knowledge Tracing state. Read-only:
// mastery updates belong to the grading subsystem.
type MasteryRepository interface {
	// MasteryByLearner returns the learner's mastery states keyed by concept id.
	// PKnow is clamped to [0,1] by the implementation.
	MasteryByLearner(ctx context.Context, learnerID string) (map[string]models.ConceptMastery, error)
}

// SchedulingRepository reads spaced-repetition state. Read-only.
type SchedulingRepository interface {
	// SchedulingByLearner returns the learner's scheduling states keyed by
	// item id. A non-nil dueBefore restricts results to rows that are due
	// (due_at <= dueBefore) or have no due time at all; this is an
	// optimization only, callers re-check due-ness themselves.
	SchedulingByLearner(ctx context.Context, learnerID string, dueBefore *time.Time) (map[string]models.ItemScheduling, error)
}

// ItemRepository reads the learning-item catalog.
type ItemRepository interface {
	// ActiveItems returns all active, non-deleted items.
	ActiveItems(ctx context.Context) ([]models.LearningItem, error)
}

// HierarchyRepository resolves the course containment hierarchy
// (course -> section -> lesson -> deck). Every query filters soft-deleted
// and inactive rows at every level.
type HierarchyRepository interface {
	// DeckIDsForCourse resolves all deck ids under a course in one batched
	// server-side join.
	DeckIDsForCourse(ctx context.Context, courseID string) ([]string, error)
	// The three level-by-level queries below back the sequential fallback.
	SectionIDsForCourse(ctx context.Context, courseID string) ([]string, error)
	LessonIDsForSections(ctx context.Context, sectionIDs []string) ([]string, error)
	DeckIDsForLessons(ctx context.Context, lessonIDs []string) ([]string, error)
}

// StatsRepository reads per-learner study aggregates.
type StatsRepository interface {
	LearnerSummary(ctx context.Context, learnerID string) (*models.LearnerSummary, error)
}
