package domain

// Redis keys for the vote counters fed by the stats worker.
const (
	CounterVotesTotal          = "stats:votes:total"
	CounterVotesEstablishments = "stats:votes:establishment"
	CounterVotesSpots          = "stats:votes:spot"
)

// PlatformCounts are the row totals shown on the stats endpoint.
type PlatformCounts struct {
	Profiles       int64 `json:"profiles"`
	Establishments int64 `json:"establishments"`
	Spots          int64 `json:"spots"`
}

// VoteCounters are the stream-fed counters maintained by the stats worker.
type VoteCounters struct {
	Total          int64 `json:"total"`
	Establishments int64 `json:"establishments"`
	Spots          int64 `json:"spots"`
}

// Statistics is the full stats payload: row totals from Postgres plus vote
// counters accumulated by the worker.
type Statistics struct {
	Counts PlatformCounts `json:"counts"`
	Votes  VoteCounters   `json:"votes"`
}
