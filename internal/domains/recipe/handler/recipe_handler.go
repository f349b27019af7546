package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"recipe-backend/internal/domains/author"
	"recipe-backend/internal/domains/recipe"
	"recipe-backend/internal/shared/response"
)

type RecipeHandler struct {
	service recipe.Service
}

func NewRecipeHandler(svc recipe.Service) *RecipeHandler {
	return &RecipeHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/v1/recipes
// ════════════════════════════════════════════════════════════════

func (h *RecipeHandler) Create(c *gin.Context) {
	var req recipe.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/v1/recipes, GET /api/v1/recipes/:id,
// GET /api/v1/authors/:id/recipes
// ════════════════════════════════════════════════════════════════

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, recipe.ToResponses(recipes), len(recipes))
}

func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "Invalid recipe ID format")
	if !ok {
		return
	}

	rec, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rec.ToResponse())
}

func (h *RecipeHandler) ListByAuthor(c *gin.Context) {
	authorID, ok := parseID(c, "Invalid author ID format")
	if !ok {
		return
	}

	recipes, err := h.service.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, recipe.ToResponses(recipes), len(recipes))
}

// ════════════════════════════════════════════════════════════════
// SEARCH: GET /api/v1/recipes/search?keywords=chicken&keywords=garlic
// Comma separated values are accepted too: ?keywords=chicken,garlic
// ════════════════════════════════════════════════════════════════

func (h *RecipeHandler) Search(c *gin.Context) {
	keywords := splitKeywords(c.QueryArray("keywords"))

	recipes, err := h.service.Search(c.Request.Context(), keywords)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, recipe.ToResponses(recipes), len(recipes))
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/v1/recipes/:id
// ════════════════════════════════════════════════════════════════

func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid recipe ID format")
	if !ok {
		return
	}

	var req recipe.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/v1/recipes/:id
// ════════════════════════════════════════════════════════════════

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid recipe ID format")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func parseID(c *gin.Context, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, message)
		return uuid.Nil, false
	}
	return id, true
}

// splitKeywords flattens repeated and comma separated keyword parameters.
// Blank entries are left for the search compiler to drop.
func splitKeywords(values []string) []string {
	var keywords []string
	for _, v := range values {
		keywords = append(keywords, strings.Split(v, ",")...)
	}
	return keywords
}

func (h *RecipeHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, author.ErrAuthorNotFound) {
		response.ErrorResponse(c, http.StatusNotFound, author.ToErrorCode(err), err.Error())
		return
	}

	status := recipe.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("[RECIPE] request failed")
		response.ErrorResponse(c, status, recipe.ToErrorCode(err), "The request could not be completed")
		return
	}
	response.ErrorResponse(c, status, recipe.ToErrorCode(err), err.Error())
}
