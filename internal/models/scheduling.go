package models

import "time"

// CardState is an item's spaced-repetition lifecycle phase.
type CardState string

const (
	StateNew        CardState = "new"
	StateLearning   CardState = "learning"
	StateReview     CardState = "review"
	StateRelearning CardState = "relearning"
)

// ItemScheduling is the FSRS-style spaced-repetition state for one
// (learner, item) pair. An absent row means the item has never been touched:
// the engine treats it as StateNew with stability 1 and no due time.
type ItemScheduling struct {
	LearnerID    string     `db:"learner_id" json:"learner_id"`
	ItemID       string     `db:"item_id" json:"item_id"`
	Stability    float64    `db:"stability" json:"stability"`
	Difficulty   float64    `db:"difficulty" json:"difficulty"`
	DueAt        *time.Time `db:"due_at" json:"due_at,omitempty"`
	LastReviewAt *time.Time `db:"last_review_at" json:"last_review_at,omitempty"`
	Repetitions  int        `db:"repetitions" json:"repetitions"`
	Lapses       int        `db:"lapses" json:"lapses"`
	State        CardState  `db:"state" json:"state"`
}
