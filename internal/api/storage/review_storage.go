package storage

import (
	"context"
	"fmt"

	"github.com/craftnet/craftnet-be/internal/api/model"
)

// CreateReview inserts the review a customer leaves when completing a job.
func (s *Storage) CreateReview(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (job_id, customer_id, master_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		review.JobID,
		review.CustomerID,
		review.MasterID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}
