package queue

import (
	"math"
	"time"

	"github.com/Matraca130/axon-backend/internal/models"
)

// Mastery color thresholds.
const (
	masteryGreen  = 0.80
	masteryYellow = 0.50
)

// ScoreInput is the per-item state fed to the scorer. DueAt and LastReviewAt
// are nil when the item has never been scheduled or reviewed.
type ScoreInput struct {
	DueAt        *time.Time
	LastReviewAt *time.Time
	Stability    float64
	Lapses       int
	Repetitions  int
	State        models.CardState
	PKnow        float64
}

// Score combines four normalized urgency factors into a single need score,
// and estimates current retention from the forgetting curve. Pure: same
// inputs and now always produce the same outputs. Both results are in [0,1],
// rounded to 3 decimals.
func Score(in ScoreInput, now time.Time, w models.ScoreWeights) (needScore, retention float64) {
	overdue := overdueFactor(in.DueAt, now, w.GraceDays)
	deficit := 1.0 - in.PKnow
	fragility := fragilityFactor(in.Lapses, in.Repetitions)
	novelty := 0.0
	if in.State == models.StateNew {
		novelty = 1.0
	}

	score := w.Overdue*overdue + w.Mastery*deficit + w.Fragility*fragility + w.Novelty*novelty
	return round3(clamp01(score)), round3(retentionEstimate(in.LastReviewAt, in.Stability, now))
}

// overdueFactor saturates smoothly toward 1.0 as an item grows overdue:
// ~0.63 at one grace period, never quite reaching 1. An item with no due
// time has never been scheduled and is maximally urgent.
func overdueFactor(dueAt *time.Time, now time.Time, graceDays float64) float64 {
	if dueAt == nil {
		return 1.0
	}
	daysOverdue := now.Sub(*dueAt).Hours() / 24.0
	if daysOverdue <= 0 {
		return 0.0
	}
	return 1.0 - math.Exp(-daysOverdue/graceDays)
}

// fragilityFactor is the relative frequency of past failures. The +1 in the
// denominator keeps it defined for untouched items.
func fragilityFactor(lapses, repetitions int) float64 {
	return math.Min(1.0, float64(lapses)/math.Max(1.0, float64(repetitions+lapses+1)))
}

// retentionEstimate models exponential forgetting with half-life
// proportional to stability. Display-only; does not feed the need score.
func retentionEstimate(lastReviewAt *time.Time, stability float64, now time.Time) float64 {
	if lastReviewAt == nil || stability <= 0 {
		return 0.0
	}
	daysSince := now.Sub(*lastReviewAt).Hours() / 24.0
	return clamp01(math.Exp(-daysSince / stability))
}

// MasteryColor buckets a mastery probability for display. A negative value
// is the caller's "no data" sentinel.
func MasteryColor(pKnow float64) string {
	switch {
	case pKnow < 0:
		return "gray"
	case pKnow >= masteryGreen:
		return "green"
	case pKnow >= masteryYellow:
		return "yellow"
	default:
		return "red"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
