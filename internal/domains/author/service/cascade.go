package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"recipe-backend/internal/domains/author"
)

// DeleteCascade removes an author, its recipes and their ingredients in one
// transaction. Children are deleted before parents.
//
//	requested -> validated -> cascade_resolved -> committed
//	requested -> validated -> rejected    (author absent, nothing changed)
//	any       -> rejected                 (store failure, rolled back)
func (s *authorService) DeleteCascade(ctx context.Context, id uuid.UUID) (*author.CascadeResult, error) {
	start := time.Now()
	result := &author.CascadeResult{AuthorID: id}
	s.transition(result, author.CascadeRequested)

	if id == uuid.Nil {
		s.transition(result, author.CascadeValidated)
		s.transition(result, author.CascadeRejected)
		cascadeTotal.WithLabelValues(outcomeNotFound).Inc()
		return result, author.ErrAuthorNotFound
	}

	var recipes, ingredients int64
	err := s.cascade.WithinCascade(ctx, func(ctx context.Context, tx author.CascadeTx) error {
		found, err := tx.LockAuthor(ctx, id)
		if err != nil {
			return err
		}
		s.transition(result, author.CascadeValidated)
		if !found {
			return author.ErrAuthorNotFound
		}

		recipeIDs, err := tx.LockRecipeIDs(ctx, id)
		if err != nil {
			return err
		}
		ingredientIDs, err := tx.IngredientIDs(ctx, recipeIDs)
		if err != nil {
			return err
		}
		s.transition(result, author.CascadeResolved)

		if ingredients, err = tx.DeleteIngredients(ctx, ingredientIDs); err != nil {
			return err
		}
		if recipes, err = tx.DeleteRecipes(ctx, recipeIDs); err != nil {
			return err
		}
		n, err := tx.DeleteAuthor(ctx, id)
		if err != nil {
			return err
		}
		if n != 1 {
			return fmt.Errorf("author row vanished during cascade: %d rows deleted", n)
		}
		return nil
	})

	switch {
	case err == nil:
		result.RecipesDeleted = int(recipes)
		result.IngredientsDeleted = int(ingredients)
		s.transition(result, author.CascadeCommitted)
		cascadeTotal.WithLabelValues(outcomeCommitted).Inc()
		cascadeDuration.Observe(time.Since(start).Seconds())

		log.Info().
			Str("author_id", id.String()).
			Int("recipes_deleted", result.RecipesDeleted).
			Int("ingredients_deleted", result.IngredientsDeleted).
			Msg("[AUTHOR] cascade committed")
		return result, nil

	case errors.Is(err, author.ErrAuthorNotFound):
		s.transition(result, author.CascadeRejected)
		cascadeTotal.WithLabelValues(outcomeNotFound).Inc()
		return result, author.ErrAuthorNotFound

	default:
		s.transition(result, author.CascadeRejected)
		cascadeTotal.WithLabelValues(outcomeFailed).Inc()
		log.Error().Err(err).Str("author_id", id.String()).Msg("[AUTHOR] cascade rolled back")
		return result, fmt.Errorf("%w: %v", author.ErrCascadeFailed, err)
	}
}

func (s *authorService) transition(result *author.CascadeResult, to author.CascadeState) {
	log.Debug().
		Str("author_id", result.AuthorID.String()).
		Str("from", string(result.State)).
		Str("to", string(to)).
		Msg("[AUTHOR] cascade transition")
	result.State = to
	result.Path = append(result.Path, to)
}
