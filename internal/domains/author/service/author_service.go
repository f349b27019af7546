package service

import (
	"context"

	"github.com/google/uuid"

	"recipe-backend/internal/domains/author"
)

// authorService implements author.Service
type authorService struct {
	repo    author.Repository
	cascade author.CascadeRepository
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo author.Repository, cascade author.CascadeRepository) author.Service {
	return &authorService{
		repo:    repo,
		cascade: cascade,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	a := req.ToEntity()
	if err := a.IsValid(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, a)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}

	// Repository handles cache + DB
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)
	if err := existing.IsValid(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, existing)
}
