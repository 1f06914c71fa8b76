package domain

// ListingKind discriminates the two votable, galleried entities.
type ListingKind string

const (
	ListingEstablishment ListingKind = "establishment"
	ListingSpot          ListingKind = "spot"
)

// Valid reports whether the kind is one of the two listings.
func (k ListingKind) Valid() bool {
	return k == ListingEstablishment || k == ListingSpot
}

const (
	RatingMin = 1
	RatingMax = 5
)

// RatingPair is a listing's vote accumulator after an update, as returned by
// the atomic increment.
type RatingPair struct {
	VotesSum   int64 `json:"votes_sum"`
	VotesCount int64 `json:"votes_count"`
}
