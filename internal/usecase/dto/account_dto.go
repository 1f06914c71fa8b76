package dto

import "github.com/horecaseek-service/internal/domain"

// AccountView - the role-resolved account page model. A tagged variant:
// exactly one of Professional/Client is non-nil, decided once from the
// profile's role instead of re-comparing the role string per component.
type AccountView struct {
	Profile      ProfileResponse   `json:"profile"`
	Role         domain.Role       `json:"role"`
	Professional *ProfessionalView `json:"professional,omitempty"`
	Client       *ClientView       `json:"client,omitempty"`
}

// ProfessionalView - the establishments a professional manages, newest
// first, each with its display mean.
type ProfessionalView struct {
	Establishments []EstablishmentResponse `json:"establishments"`
}

// ClientView - the spots a client shared, newest first.
type ClientView struct {
	Spots []SpotResponse `json:"spots"`
}
