package queue

import (
	"context"

	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/repository"
)

// Scope is the outcome of resolving an optional course filter. When Filtered
// is false every item qualifies. When Filtered is true only items whose deck
// id is in DeckIDs qualify; an empty set is a legitimate terminal state
// (a course with no content), not an error.
type Scope struct {
	Filtered bool
	DeckIDs  map[string]struct{}
}

// Empty reports whether a filter was requested and matched nothing.
func (s Scope) Empty() bool {
	return s.Filtered && len(s.DeckIDs) == 0
}

// Contains reports whether a deck qualifies under this scope.
func (s Scope) Contains(deckID string) bool {
	if !s.Filtered {
		return true
	}
	_, ok := s.DeckIDs[deckID]
	return ok
}

// ScopeResolver resolves a course id to the set of deck ids it contains,
// walking the course -> section -> lesson -> deck hierarchy.
type ScopeResolver struct {
	hier repository.HierarchyRepository
}

// NewScopeResolver creates a ScopeResolver over the given hierarchy reader.
func NewScopeResolver(hier repository.HierarchyRepository) *ScopeResolver {
	return &ScopeResolver{hier: hier}
}

// Resolve returns the scope for an optional course id. The batched
// server-side join is tried first; if it fails the hierarchy is walked level
// by level, short-circuiting to an empty scope as soon as any level has no
// rows. Both paths apply identical active/non-deleted filters, so they
// resolve the same deck set on the same snapshot.
func (r *ScopeResolver) Resolve(ctx context.Context, courseID *string) (Scope, error) {
	if courseID == nil {
		return Scope{}, nil
	}

	log := logger.FromContext(ctx).WithPrefix("scope")

	deckIDs, err := r.hier.DeckIDsForCourse(ctx, *courseID)
	if err == nil {
		log.Debug("batched scope resolution: course_id=%s decks=%d", *courseID, len(deckIDs))
		return scopeOf(deckIDs), nil
	}
	log.Warn("batched scope resolution failed, falling back to level walk: %v", err)

	sectionIDs, err := r.hier.SectionIDsForCourse(ctx, *courseID)
	if err != nil {
		return Scope{}, err
	}
	if len(sectionIDs) == 0 {
		return Scope{Filtered: true}, nil
	}

	lessonIDs, err := r.hier.LessonIDsForSections(ctx, sectionIDs)
	if err != nil {
		return Scope{}, err
	}
	if len(lessonIDs) == 0 {
		return Scope{Filtered: true}, nil
	}

	deckIDs, err = r.hier.DeckIDsForLessons(ctx, lessonIDs)
	if err != nil {
		return Scope{}, err
	}
	log.Debug("fallback scope resolution: course_id=%s decks=%d", *courseID, len(deckIDs))
	return scopeOf(deckIDs), nil
}

func scopeOf(deckIDs []string) Scope {
	set := make(map[string]struct{}, len(deckIDs))
	for _, id := range deckIDs {
		set[id] = struct{}{}
	}
	return Scope{Filtered: true, DeckIDs: set}
}
