package models

import "time"

// LearningItem is a single reviewable flashcard. Items belong to a deck and
// optionally map to one concept. Decks sit at the bottom of the containment
// hierarchy (course -> section -> lesson -> deck), which the engine only ever
// handles as id sets during scope resolution. Inactive or soft-deleted items
// never reach the queue engine.
type LearningItem struct {
	ID        string    `db:"id" json:"id"`
	DeckID    string    `db:"deck_id" json:"deck_id"`
	ConceptID *string   `db:"concept_id" json:"concept_id,omitempty"`
	Front     string    `db:"front" json:"front"`
	Back      string    `db:"back" json:"back"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
