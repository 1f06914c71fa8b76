package dto

import "github.com/horecaseek-service/internal/domain"

// UpsertProfileRequest - create or update the caller's profile
type UpsertProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Role     string `json:"role" validate:"required,oneof=client professional"`

	// Avatar is optional; when present it is uploaded before the row write.
	Avatar *FileUpload `json:"-"`
}

// FileUpload - an in-memory file received from a multipart form
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProfileResponse - a profile as rendered to clients
type ProfileResponse struct {
	ID        string      `json:"id"`
	FullName  string      `json:"full_name"`
	Phone     string      `json:"phone"`
	AvatarURL string      `json:"avatar_url"`
	Role      domain.Role `json:"role"`
}

// ConvertProfile maps a domain profile to its response shape.
func ConvertProfile(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Phone:     p.Phone,
		AvatarURL: p.AvatarURL,
		Role:      p.Role,
	}
}
