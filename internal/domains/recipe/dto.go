package recipe

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateRecipeRequest - POST /api/v1/recipes
type CreateRecipeRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Instructions string     `json:"instructions"`
	AuthorID     *uuid.UUID `json:"author_id,omitempty"`
}

func (r CreateRecipeRequest) Validate() error {
	return validateFields(&r.Title, &r.Description)
}

// ToEntity converts CreateRecipeRequest to Recipe entity
func (r *CreateRecipeRequest) ToEntity() *Recipe {
	return &Recipe{
		Title:        strings.TrimSpace(r.Title),
		Description:  r.Description,
		Instructions: r.Instructions,
		AuthorID:     r.AuthorID,
	}
}

// UpdateRecipeRequest - PUT /api/v1/recipes/:id
// Replaces every mutable field; a missing author_id clears the author.
type UpdateRecipeRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Instructions string     `json:"instructions"`
	AuthorID     *uuid.UUID `json:"author_id,omitempty"`
}

func (r UpdateRecipeRequest) Validate() error {
	return validateFields(&r.Title, &r.Description)
}

// ApplyToEntity applies UpdateRecipeRequest to existing Recipe entity
func (r *UpdateRecipeRequest) ApplyToEntity(rec *Recipe) {
	rec.Title = strings.TrimSpace(r.Title)
	rec.Description = r.Description
	rec.Instructions = r.Instructions
	rec.AuthorID = r.AuthorID
}

func validateFields(title, description *string) error {
	return validation.Errors{
		"title": validation.Validate(title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		"description": validation.Validate(description,
			validation.Length(0, MaxDescriptionLength),
		),
	}.Filter()
}

// RecipeResponse - Basic recipe information
type RecipeResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Instructions string     `json:"instructions"`
	AuthorID     *uuid.UUID `json:"author_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToResponse converts Recipe entity to RecipeResponse DTO
func (r Recipe) ToResponse() RecipeResponse {
	return RecipeResponse{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Instructions: r.Instructions,
		AuthorID:     r.AuthorID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func ToResponses(recipes []Recipe) []RecipeResponse {
	out := make([]RecipeResponse, len(recipes))
	for i, r := range recipes {
		out[i] = r.ToResponse()
	}
	return out
}
