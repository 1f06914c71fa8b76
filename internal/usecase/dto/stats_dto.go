package dto

import "github.com/horecaseek-service/internal/domain"

// StatsResponse - platform counters merged from Postgres counts and the
// vote counters accumulated by the stream worker.
type StatsResponse struct {
	Profiles           int64 `json:"profiles"`
	Establishments     int64 `json:"establishments"`
	Spots              int64 `json:"spots"`
	VotesTotal         int64 `json:"votes_total"`
	VotesEstablishment int64 `json:"votes_establishments"`
	VotesSpot          int64 `json:"votes_spots"`
}

// ConvertStatistics - maps domain statistics to the response form.
func ConvertStatistics(s *domain.Statistics) *StatsResponse {
	return &StatsResponse{
		Profiles:           s.Counts.Profiles,
		Establishments:     s.Counts.Establishments,
		Spots:              s.Counts.Spots,
		VotesTotal:         s.Votes.Total,
		VotesEstablishment: s.Votes.Establishments,
		VotesSpot:          s.Votes.Spots,
	}
}
