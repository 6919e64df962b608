package queue

import (
	"fmt"
	"math"

	"github.com/Matraca130/axon-backend/internal/models"
)

const weightSumEpsilon = 1e-9

// DefaultWeights returns the stock scoring weights: overdue-ness dominates,
// followed by mastery deficit, fragility and novelty.
func DefaultWeights() models.ScoreWeights {
	return models.ScoreWeights{
		Overdue:   0.40,
		Mastery:   0.30,
		Fragility: 0.20,
		Novelty:   0.10,
		GraceDays: 1.0,
	}
}

// ValidateWeights checks that each factor weight is in [0,1], the four sum
// to 1.0, and the overdue grace period is positive.
func ValidateWeights(w models.ScoreWeights) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"overdue", w.Overdue},
		{"mastery", w.Mastery},
		{"fragility", w.Fragility},
		{"novelty", w.Novelty},
	} {
		if f.v < 0 || f.v > 1 || math.IsNaN(f.v) {
			return fmt.Errorf("weight %s out of range: %g", f.name, f.v)
		}
	}
	sum := w.Overdue + w.Mastery + w.Fragility + w.Novelty
	if math.Abs(sum-1.0) > weightSumEpsilon {
		return fmt.Errorf("weights must sum to 1.0, got %g", sum)
	}
	if w.GraceDays <= 0 || math.IsNaN(w.GraceDays) {
		return fmt.Errorf("grace days must be positive, got %g", w.GraceDays)
	}
	return nil
}
