package models

// LearnerSummary is a read-only aggregate of a learner's study state.
type LearnerSummary struct {
	TotalItems          int     `db:"total_items" json:"total_items"`
	ItemsScheduled      int     `db:"items_scheduled" json:"items_scheduled"`
	ItemsDue            int     `db:"items_due" json:"items_due"`
	ItemsNew            int     `db:"items_new" json:"items_new"`
	ConceptsTracked     int     `db:"concepts_tracked" json:"concepts_tracked"`
	ConceptsMastered    int     `db:"concepts_mastered" json:"concepts_mastered"`
	ConceptsStruggling  int     `db:"concepts_struggling" json:"concepts_struggling"`
	AvgPKnow            float64 `db:"avg_p_know" json:"avg_p_know"`
	AvgStability        float64 `db:"avg_stability" json:"avg_stability"`
	TotalLapses         int     `db:"total_lapses" json:"total_lapses"`
	TotalRepetitions    int     `db:"total_repetitions" json:"total_repetitions"`
}
