package author

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
	)
}

// ToEntity converts CreateAuthorRequest to Author entity
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{Name: strings.TrimSpace(r.Name)}
}

// UpdateAuthorRequest - PUT /api/v1/authors/:id
type UpdateAuthorRequest struct {
	Name string `json:"name"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
	)
}

// ApplyToEntity applies UpdateAuthorRequest to existing Author entity
func (r *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	a.Name = strings.TrimSpace(r.Name)
}

// AuthorResponse - Basic author information
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse converts Author entity to AuthorResponse DTO
func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func ToResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		out[i] = a.ToResponse()
	}
	return out
}
