package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/potionstore/potionstore-go/internal/model"
	"github.com/potionstore/potionstore-go/internal/repository"
)

var (
	ErrNameRequired   = errors.New("name is required")
	ErrPotionNotFound = errors.New("potion not found")
)

// PotionService handles potion CRUD business logic.
type PotionService struct {
	repo *repository.PotionRepository
}

// NewPotionService creates a new PotionService.
func NewPotionService(repo *repository.PotionRepository) *PotionService {
	return &PotionService{repo: repo}
}

// Create stores a new potion under a generated id.
func (s *PotionService) Create(ctx context.Context, req model.PotionRequest) (model.PotionResponse, error) {
	if req.Name == "" {
		return model.PotionResponse{}, ErrNameRequired
	}

	potion := model.Potion{
		ID:       uuid.NewString(),
		Name:     req.Name,
		VendorID: req.VendorID,
		Category: req.Category,
		Price:    req.Price,
		Score:    req.Score,
		Ratings:  req.Ratings,
	}

	if err := s.repo.Create(ctx, &potion); err != nil {
		return model.PotionResponse{}, err
	}

	// Timestamps are store-generated; read the record back so the response
	// matches what a subsequent GET returns.
	created, err := s.repo.GetByID(ctx, potion.ID)
	if err != nil {
		return model.PotionResponse{}, err
	}

	return potionToResponse(*created), nil
}

// Get retrieves a single potion by id.
func (s *PotionService) Get(ctx context.Context, id string) (model.PotionResponse, error) {
	potion, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPotionNotFound) {
			return model.PotionResponse{}, ErrPotionNotFound
		}
		return model.PotionResponse{}, err
	}

	return potionToResponse(*potion), nil
}

// Update performs a full overwrite of an existing potion. A missing id is an
// error; update never creates a record.
func (s *PotionService) Update(ctx context.Context, id string, req model.PotionRequest) (model.PotionResponse, error) {
	if req.Name == "" {
		return model.PotionResponse{}, ErrNameRequired
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPotionNotFound) {
			return model.PotionResponse{}, ErrPotionNotFound
		}
		return model.PotionResponse{}, err
	}

	potion := model.Potion{
		ID:       id,
		Name:     req.Name,
		VendorID: req.VendorID,
		Category: req.Category,
		Price:    req.Price,
		Score:    req.Score,
		Ratings:  req.Ratings,
	}

	if err := s.repo.Update(ctx, &potion); err != nil {
		return model.PotionResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.PotionResponse{}, err
	}

	return potionToResponse(*updated), nil
}

// Delete removes a potion by id.
func (s *PotionService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPotionNotFound) {
		return ErrPotionNotFound
	}
	return err
}

// List returns all potions.
func (s *PotionService) List(ctx context.Context) ([]model.PotionResponse, error) {
	potions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return potionsToResponse(potions), nil
}

// ListByVendor returns all potions sold by the given vendor.
func (s *PotionService) ListByVendor(ctx context.Context, vendorID string) ([]model.PotionResponse, error) {
	potions, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return potionsToResponse(potions), nil
}

// ListByPriceRange returns potions priced within [min, max] inclusive.
func (s *PotionService) ListByPriceRange(ctx context.Context, min, max float64) ([]model.PotionResponse, error) {
	potions, err := s.repo.ListByPriceRange(ctx, min, max)
	if err != nil {
		return nil, err
	}
	return potionsToResponse(potions), nil
}

// SearchByName returns potions whose name contains the given substring.
func (s *PotionService) SearchByName(ctx context.Context, name string) ([]model.PotionResponse, error) {
	potions, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return potionsToResponse(potions), nil
}

func potionToResponse(p model.Potion) model.PotionResponse {
	return model.PotionResponse{
		ID:        p.ID,
		Name:      p.Name,
		VendorID:  p.VendorID,
		Category:  p.Category,
		Price:     p.Price,
		Score:     p.Score,
		Ratings:   p.Ratings,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func potionsToResponse(potions []model.Potion) []model.PotionResponse {
	result := make([]model.PotionResponse, len(potions))
	for i, p := range potions {
		result[i] = potionToResponse(p)
	}
	return result
}
