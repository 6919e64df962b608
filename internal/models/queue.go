package models

import "time"

// ScoreWeights are the queue engine's tunable parameters. The four factor
// weights must sum to 1.0. Passed by value so the scorer stays pure.
type ScoreWeights struct {
	Overdue   float64 `json:"overdue"`
	Mastery   float64 `json:"mastery"`
	Fragility float64 `json:"fragility"`
	Novelty   float64 `json:"novelty"`
	GraceDays float64 `json:"grace_days"`
}

// QueueEntry is one ranked item in a study queue. Computed per request,
// never persisted.
type QueueEntry struct {
	ItemID       string     `json:"item_id"`
	DeckID       string     `json:"deck_id"`
	ConceptID    *string    `json:"concept_id,omitempty"`
	Front        string     `json:"front"`
	Back         string     `json:"back"`
	NeedScore    float64    `json:"need_score"`
	Retention    float64    `json:"retention"`
	MasteryColor string     `json:"mastery_color"`
	State        CardState  `json:"state"`
	DueAt        *time.Time `json:"due_at,omitempty"`
	Stability    float64    `json:"stability"`
	Difficulty   float64    `json:"difficulty"`
	IsNew        bool       `json:"is_new"`
}

// QueueCounters summarizes one queue build, echoing the effective parameters
// so callers can reproduce the result.
type QueueCounters struct {
	TotalDue      int          `json:"total_due"`
	TotalNew      int          `json:"total_new"`
	TotalInQueue  int          `json:"total_in_queue"`
	Returned      int          `json:"returned"`
	Limit         int          `json:"limit"`
	IncludeFuture bool         `json:"include_future"`
	ScopeID       *string      `json:"scope_id,omitempty"`
	GeneratedAt   time.Time    `json:"generated_at"`
	Weights       ScoreWeights `json:"weights"`
}

// QueueResult is the full response of one queue build.
type QueueResult struct {
	Entries  []QueueEntry  `json:"entries"`
	Counters QueueCounters `json:"counters"`
}
