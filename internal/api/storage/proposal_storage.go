package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/craftnet/craftnet-be/internal/api/domain"
	"github.com/craftnet/craftnet-be/internal/api/model"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code raised by the
// UNIQUE (job_id, master_id) constraint on proposals.
const uniqueViolation = "23505"

const proposalDetailQuery = `
	SELECT p.id, p.job_id, p.master_id, p.price, p.message, p.created_at,
		m.name AS master_name, m.surname AS master_surname, m.email AS master_email,
		j.title AS job_title, j.status AS job_status
	FROM proposals p
	LEFT JOIN masters m ON p.master_id = m.id
	LEFT JOIN jobs j ON p.job_id = j.id
`

// CreateProposal inserts a proposal and fills in its generated id and
// creation timestamp. The storage-level unique constraint is the
// authoritative duplicate guard; a violation maps to ErrDuplicateProposal.
func (s *Storage) CreateProposal(ctx context.Context, proposal *model.Proposal) error {
	query := `
		INSERT INTO proposals (job_id, master_id, price, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		proposal.JobID,
		proposal.MasterID,
		proposal.Price,
		proposal.Message,
	).Scan(&proposal.ID, &proposal.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrDuplicateProposal
		}
		return fmt.Errorf("failed to create proposal: %w", err)
	}

	return nil
}

// GetProposalByID retrieves a proposal with its master and job display fields.
func (s *Storage) GetProposalByID(ctx context.Context, proposalID int64) (*model.ProposalDetail, error) {
	query := proposalDetailQuery + `WHERE p.id = $1`

	var proposal model.ProposalDetail
	err := s.db.GetContext(ctx, &proposal, query, proposalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	return &proposal, nil
}

// ListJobProposals returns a job's proposals, newest first.
func (s *Storage) ListJobProposals(ctx context.Context, jobID int64) ([]model.ProposalDetail, error) {
	query := proposalDetailQuery + `
		WHERE p.job_id = $1
		ORDER BY p.created_at DESC`

	proposals := []model.ProposalDetail{}
	if err := s.db.SelectContext(ctx, &proposals, query, jobID); err != nil {
		return nil, fmt.Errorf("failed to list job proposals: %w", err)
	}

	return proposals, nil
}

// ListMasterProposals returns a master's proposals joined with job, category,
// city and customer display fields, newest first.
func (s *Storage) ListMasterProposals(ctx context.Context, masterID int64) ([]model.MasterProposal, error) {
	query := `
		SELECT p.id, p.job_id, p.master_id, p.price, p.message, p.created_at,
			j.title AS job_title, j.description AS job_description, j.status AS job_status,
			c.name AS category_name, ct.name AS city_name,
			u.name AS customer_name, u.surname AS customer_surname
		FROM proposals p
		LEFT JOIN jobs j ON p.job_id = j.id
		LEFT JOIN categories c ON j.category_id = c.id
		LEFT JOIN cities ct ON j.city_id = ct.id
		LEFT JOIN customers u ON j.customer_id = u.id
		WHERE p.master_id = $1
		ORDER BY p.created_at DESC
	`

	proposals := []model.MasterProposal{}
	if err := s.db.SelectContext(ctx, &proposals, query, masterID); err != nil {
		return nil, fmt.Errorf("failed to list master proposals: %w", err)
	}

	return proposals, nil
}

// CountJobProposals counts the proposals attached to a job.
func (s *Storage) CountJobProposals(ctx context.Context, jobID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM proposals WHERE job_id = $1`

	if err := s.db.GetContext(ctx, &count, query, jobID); err != nil {
		return 0, fmt.Errorf("failed to count job proposals: %w", err)
	}

	return count, nil
}

// HasProposal reports whether the master already proposed on the job.
func (s *Storage) HasProposal(ctx context.Context, jobID, masterID int64) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM proposals WHERE job_id = $1 AND master_id = $2`

	if err := s.db.GetContext(ctx, &count, query, jobID, masterID); err != nil {
		return false, fmt.Errorf("failed to check proposal existence: %w", err)
	}

	return count > 0, nil
}
