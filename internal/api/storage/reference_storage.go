package storage

import (
	"context"
	"fmt"

	"github.com/craftnet/craftnet-be/internal/api/model"
)

// CategoryExists reports whether a category id is known.
func (s *Storage) CategoryExists(ctx context.Context, categoryID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`

	if err := s.db.GetContext(ctx, &exists, query, categoryID); err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}

	return exists, nil
}

// CityExists reports whether a city id is known.
func (s *Storage) CityExists(ctx context.Context, cityID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM cities WHERE id = $1)`

	if err := s.db.GetContext(ctx, &exists, query, cityID); err != nil {
		return false, fmt.Errorf("failed to check city existence: %w", err)
	}

	return exists, nil
}

// MasterExists reports whether a master account exists.
func (s *Storage) MasterExists(ctx context.Context, masterID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM masters WHERE id = $1)`

	if err := s.db.GetContext(ctx, &exists, query, masterID); err != nil {
		return false, fmt.Errorf("failed to check master existence: %w", err)
	}

	return exists, nil
}

// ListCategories returns all categories ordered by name.
func (s *Storage) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT id, name FROM categories ORDER BY name`

	if err := s.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// ListCities returns all cities ordered by name.
func (s *Storage) ListCities(ctx context.Context) ([]model.City, error) {
	cities := []model.City{}
	query := `SELECT id, name FROM cities ORDER BY name`

	if err := s.db.SelectContext(ctx, &cities, query); err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	return cities, nil
}
