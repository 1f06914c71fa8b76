package domain

import "time"

// Stream names (must match what the stats worker consumes)
const (
	StreamListingVotes = "stream:listing:votes"
)

// VoteEvent is published after a vote has been folded into a listing's
// accumulator. Best-effort: losing an event never loses the vote itself.
type VoteEvent struct {
	Kind      ListingKind `json:"kind"`
	ListingID string      `json:"listing_id"`
	Rating    int         `json:"rating"`
	VotedAt   time.Time   `json:"voted_at"`
}

// StreamMessage is a raw message read from a redis stream by a consumer
// group, carrying the stream entry id needed to ack it.
type StreamMessage struct {
	ID   string
	Data []byte
}
