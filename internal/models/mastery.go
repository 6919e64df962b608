package models

// ConceptMastery is the Bayesian Knowledge Tracing state for one
// (learner, concept) pair. Maintained by the review-grading subsystem;
// the queue engine only reads it.
type ConceptMastery struct {
	LearnerID     string  `db:"learner_id" json:"learner_id"`
	ConceptID     string  `db:"concept_id" json:"concept_id"`
	PKnow         float64 `db:"p_know" json:"p_know"`
	TotalAttempts int     `db:"total_attempts" json:"total_attempts"`
}
