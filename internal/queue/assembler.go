package queue

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Matraca130/axon-backend/internal/errors"
	"github.com/Matraca130/axon-backend/internal/logger"
	"github.com/Matraca130/axon-backend/internal/models"
	"github.com/Matraca130/axon-backend/internal/repository"
)

const (
	// DefaultLimit is used when the caller requests zero or a negative page size.
	DefaultLimit = 20
	// MaxLimit caps the page size; larger requests are clamped, not rejected.
	MaxLimit = 100
)

// Params are the caller-supplied knobs for one queue build.
type Params struct {
	ScopeID       *string
	Limit         int
	IncludeFuture bool
}

// Assembler builds ranked study queues. It holds only read-only collaborators
// and no per-request state, so a single value serves all requests.
type Assembler struct {
	mastery    repository.MasteryRepository
	scheduling repository.SchedulingRepository
	items      repository.ItemRepository
	scope      *ScopeResolver
	weights    models.ScoreWeights
	now        func() time.Time
}

// NewAssembler creates an Assembler. Weights failing validation are replaced
// by the defaults. nowFn may be nil, in which case time.Now is used; tests
// inject a frozen clock for reproducible output.
func NewAssembler(
	mastery repository.MasteryRepository,
	scheduling repository.SchedulingRepository,
	items repository.ItemRepository,
	scope *ScopeResolver,
	weights models.ScoreWeights,
	nowFn func() time.Time,
) *Assembler {
	if err := ValidateWeights(weights); err != nil {
		logger.Default().WithPrefix("queue").Warn("invalid score weights (%v), using defaults", err)
		weights = DefaultWeights()
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Assembler{
		mastery:    mastery,
		scheduling: scheduling,
		items:      items,
		scope:      scope,
		weights:    weights,
		now:        nowFn,
	}
}

// Weights returns the validated weight configuration in effect.
func (a *Assembler) Weights() models.ScoreWeights {
	return a.weights
}

// BuildQueue produces the ranked review queue for a learner. The three
// mandatory reads and the optional scope resolution run concurrently; any
// fetch error aborts the whole build. An empty resolved scope yields an
// empty result with zeroed counters, which is success.
func (a *Assembler) BuildQueue(ctx context.Context, learnerID string, p Params) (*models.QueueResult, error) {
	log := logger.FromContext(ctx).WithPrefix("queue")

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	now := a.now()

	// Pre-filter scheduling rows to due ones when future items are excluded.
	// Purely an optimization; due-ness is re-checked per item below.
	var dueBefore *time.Time
	if !p.IncludeFuture {
		dueBefore = &now
	}

	var (
		masteryByConcept map[string]models.ConceptMastery
		schedByItem      map[string]models.ItemScheduling
		items            []models.LearningItem
		scope            Scope
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := a.mastery.MasteryByLearner(gctx, learnerID)
		if err != nil {
			return errors.NewUpstreamError("mastery", err)
		}
		masteryByConcept = m
		return nil
	})
	g.Go(func() error {
		s, err := a.scheduling.SchedulingByLearner(gctx, learnerID, dueBefore)
		if err != nil {
			return errors.NewUpstreamError("scheduling", err)
		}
		schedByItem = s
		return nil
	})
	g.Go(func() error {
		its, err := a.items.ActiveItems(gctx)
		if err != nil {
			return errors.NewUpstreamError("items", err)
		}
		items = its
		return nil
	})
	if p.ScopeID != nil {
		g.Go(func() error {
			sc, err := a.scope.Resolve(gctx, p.ScopeID)
			if err != nil {
				return errors.NewUpstreamError("scope", err)
			}
			scope = sc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("queue fetch failed: %v", err)
		return nil, err
	}

	counters := models.QueueCounters{
		Limit:         limit,
		IncludeFuture: p.IncludeFuture,
		ScopeID:       p.ScopeID,
		GeneratedAt:   now,
		Weights:       a.weights,
	}

	if scope.Empty() {
		log.Debug("scope matched no decks: course_id=%v", *p.ScopeID)
		return &models.QueueResult{Entries: []models.QueueEntry{}, Counters: counters}, nil
	}

	entries := make([]models.QueueEntry, 0, len(items))
	for _, item := range items {
		if !scope.Contains(item.DeckID) {
			continue
		}

		sched, hasSched := schedByItem[item.ID]
		isNew := !hasSched
		if !hasSched {
			// Untouched item: new state, safe stability default, never due.
			sched = models.ItemScheduling{
				ItemID:    item.ID,
				LearnerID: learnerID,
				Stability: 1,
				State:     models.StateNew,
			}
		}

		// New items have no due time to compare, so include_future never
		// excludes them.
		if hasSched && !p.IncludeFuture && sched.DueAt != nil && sched.DueAt.After(now) {
			continue
		}

		pKnow := 0.0
		if item.ConceptID != nil {
			if m, ok := masteryByConcept[*item.ConceptID]; ok {
				pKnow = m.PKnow
			}
		}

		score, retention := Score(ScoreInput{
			DueAt:        sched.DueAt,
			LastReviewAt: sched.LastReviewAt,
			Stability:    sched.Stability,
			Lapses:       sched.Lapses,
			Repetitions:  sched.Repetitions,
			State:        sched.State,
			PKnow:        pKnow,
		}, now, a.weights)

		if isNew {
			counters.TotalNew++
		} else if sched.DueAt != nil && !sched.DueAt.After(now) {
			counters.TotalDue++
		}

		entries = append(entries, models.QueueEntry{
			ItemID:       item.ID,
			DeckID:       item.DeckID,
			ConceptID:    item.ConceptID,
			Front:        item.Front,
			Back:         item.Back,
			NeedScore:    score,
			Retention:    retention,
			MasteryColor: MasteryColor(pKnow),
			State:        sched.State,
			DueAt:        sched.DueAt,
			Stability:    sched.Stability,
			Difficulty:   sched.Difficulty,
			IsNew:        isNew,
		})
	}

	counters.TotalInQueue = len(entries)

	// Highest urgency first; among equals the most-forgotten item leads,
	// and reviewed items lead brand-new ones.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].NeedScore != entries[j].NeedScore {
			return entries[i].NeedScore > entries[j].NeedScore
		}
		if entries[i].Retention != entries[j].Retention {
			return entries[i].Retention < entries[j].Retention
		}
		return !entries[i].IsNew && entries[j].IsNew
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	counters.Returned = len(entries)

	log.Debug("queue built: considered=%d returned=%d due=%d new=%d",
		counters.TotalInQueue, counters.Returned, counters.TotalDue, counters.TotalNew)

	return &models.QueueResult{Entries: entries, Counters: counters}, nil
}
