package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"recipe-backend/internal/domains/ingredient"
	"recipe-backend/internal/shared/response"
)

type IngredientHandler struct {
	service ingredient.Service
}

func NewIngredientHandler(svc ingredient.Service) *IngredientHandler {
	return &IngredientHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// GET /api/v1/recipes/:id/ingredients
// ════════════════════════════════════════════════════════════════

func (h *IngredientHandler) List(c *gin.Context) {
	recipeID, ok := parseUUID(c, "id", "Invalid recipe ID format")
	if !ok {
		return
	}

	ingredients, err := h.service.ListByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, ingredient.ToResponses(ingredients), len(ingredients))
}

// ════════════════════════════════════════════════════════════════
// POST /api/v1/recipes/:id/ingredients
// ════════════════════════════════════════════════════════════════

func (h *IngredientHandler) Create(c *gin.Context) {
	recipeID, ok := parseUUID(c, "id", "Invalid recipe ID format")
	if !ok {
		return
	}

	var req ingredient.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), recipeID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// GET /api/v1/recipes/:id/ingredients/:ingredientId
// ════════════════════════════════════════════════════════════════

func (h *IngredientHandler) Get(c *gin.Context) {
	recipeID, ingredientID, ok := parseIDs(c)
	if !ok {
		return
	}

	i, err := h.service.Get(c.Request.Context(), recipeID, ingredientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, i.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// PUT /api/v1/recipes/:id/ingredients/:ingredientId
// ════════════════════════════════════════════════════════════════

func (h *IngredientHandler) Update(c *gin.Context) {
	recipeID, ingredientID, ok := parseIDs(c)
	if !ok {
		return
	}

	var req ingredient.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), recipeID, ingredientID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE /api/v1/recipes/:id/ingredients/:ingredientId
// ════════════════════════════════════════════════════════════════

func (h *IngredientHandler) Delete(c *gin.Context) {
	recipeID, ingredientID, ok := parseIDs(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), recipeID, ingredientID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func parseUUID(c *gin.Context, param, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, message)
		return uuid.Nil, false
	}
	return id, true
}

func parseIDs(c *gin.Context) (recipeID, ingredientID uuid.UUID, ok bool) {
	if recipeID, ok = parseUUID(c, "id", "Invalid recipe ID format"); !ok {
		return
	}
	ingredientID, ok = parseUUID(c, "ingredientId", "Invalid ingredient ID format")
	return
}

func (h *IngredientHandler) handleError(c *gin.Context, err error) {
	status := ingredient.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("[INGREDIENT] request failed")
		response.ErrorResponse(c, status, ingredient.ToErrorCode(err), "The request could not be completed")
		return
	}
	response.ErrorResponse(c, status, ingredient.ToErrorCode(err), err.Error())
}
