package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/potionstore/potionstore-go/internal/model"
)

var ErrPotionNotFound = errors.New("potion not found")

const potionColumns = `id, name, vendor_id, category, price, score,
	rating_strength, rating_flavor, rating_duration, rating_side_effects,
	created_at, updated_at`

// PotionRepository handles potion persistence operations.
type PotionRepository struct {
	db *sql.DB
}

// NewPotionRepository creates a new PotionRepository.
func NewPotionRepository(db *sql.DB) *PotionRepository {
	return &PotionRepository{db: db}
}

// Create inserts a new potion record. The caller supplies the generated id.
func (r *PotionRepository) Create(ctx context.Context, p *model.Potion) error {
	query := `INSERT INTO potions
		(id, name, vendor_id, category, price, score,
		 rating_strength, rating_flavor, rating_duration, rating_side_effects)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.VendorID, p.Category, p.Price, p.Score,
		p.Ratings.Strength, p.Ratings.Flavor, p.Ratings.Duration, p.Ratings.SideEffects,
	)
	return err
}

// GetByID retrieves a potion by id.
func (r *PotionRepository) GetByID(ctx context.Context, id string) (*model.Potion, error) {
	query := `SELECT ` + potionColumns + ` FROM potions WHERE id = ?`

	p := &model.Potion{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.VendorID, &p.Category, &p.Price, &p.Score,
		&p.Ratings.Strength, &p.Ratings.Flavor, &p.Ratings.Duration, &p.Ratings.SideEffects,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPotionNotFound
		}
		return nil, err
	}

	return p, nil
}

// Update overwrites every mutable field of an existing potion. Callers check
// existence first; a no-op overwrite legitimately affects zero rows.
func (r *PotionRepository) Update(ctx context.Context, p *model.Potion) error {
	query := `UPDATE potions SET
		name = ?, vendor_id = ?, category = ?, price = ?, score = ?,
		rating_strength = ?, rating_flavor = ?, rating_duration = ?, rating_side_effects = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		p.Name, p.VendorID, p.Category, p.Price, p.Score,
		p.Ratings.Strength, p.Ratings.Flavor, p.Ratings.Duration, p.Ratings.SideEffects,
		p.ID,
	)
	return err
}

// Delete removes a potion by id.
func (r *PotionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM potions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPotionNotFound
	}

	return nil
}

// List retrieves all potions, newest first.
func (r *PotionRepository) List(ctx context.Context) ([]model.Potion, error) {
	query := `SELECT ` + potionColumns + ` FROM potions ORDER BY created_at DESC`
	return r.queryPotions(ctx, query)
}

// ListByVendor retrieves all potions sold by the given vendor.
func (r *PotionRepository) ListByVendor(ctx context.Context, vendorID string) ([]model.Potion, error) {
	query := `SELECT ` + potionColumns + ` FROM potions WHERE vendor_id = ? ORDER BY created_at DESC`
	return r.queryPotions(ctx, query, vendorID)
}

// ListByPriceRange retrieves potions with price in [min, max]. An inverted
// range simply matches nothing.
func (r *PotionRepository) ListByPriceRange(ctx context.Context, min, max float64) ([]model.Potion, error) {
	query := `SELECT ` + potionColumns + ` FROM potions WHERE price BETWEEN ? AND ? ORDER BY price ASC`
	return r.queryPotions(ctx, query, min, max)
}

// SearchByName retrieves potions whose name contains the given substring.
func (r *PotionRepository) SearchByName(ctx context.Context, name string) ([]model.Potion, error) {
	query := `SELECT ` + potionColumns + ` FROM potions WHERE name LIKE ? ORDER BY created_at DESC`
	return r.queryPotions(ctx, query, "%"+name+"%")
}

func (r *PotionRepository) queryPotions(ctx context.Context, query string, args ...any) ([]model.Potion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var potions []model.Potion
	for rows.Next() {
		var p model.Potion
		if err := rows.Scan(
			&p.ID, &p.Name, &p.VendorID, &p.Category, &p.Price, &p.Score,
			&p.Ratings.Strength, &p.Ratings.Flavor, &p.Ratings.Duration, &p.Ratings.SideEffects,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		potions = append(potions, p)
	}

	return potions, rows.Err()
}
