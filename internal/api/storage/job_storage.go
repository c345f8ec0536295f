package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/craftnet/craftnet-be/internal/api/domain"
	"github.com/craftnet/craftnet-be/internal/api/model"
)

// jobDetailColumns is the denormalized field set every job read returns.
// The join aliases are part of the external contract.
const jobDetailColumns = `
	j.id, j.customer_id, j.title, j.description, j.category_id, j.city_id,
	j.status, j.selected_master_id, j.created_at,
	c.name AS category_name,
	ct.name AS city_name,
	u.name AS customer_name, u.surname AS customer_surname,
	u.email AS customer_email, u.phone AS customer_phone,
	m.name AS master_name, m.surname AS master_surname, m.phone AS master_phone,
	(SELECT COUNT(*) FROM proposals p WHERE p.job_id = j.id) AS proposal_count
`

const jobDetailFrom = `
	FROM jobs j
	LEFT JOIN categories c ON j.category_id = c.id
	LEFT JOIN cities ct ON j.city_id = ct.id
	LEFT JOIN customers u ON j.customer_id = u.id
	LEFT JOIN masters m ON j.selected_master_id = m.id
`

// CreateJob inserts a new pending job and fills in its generated id and
// creation timestamp.
func (s *Storage) CreateJob(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO jobs (customer_id, title, description, category_id, city_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		job.CustomerID,
		job.Title,
		job.Description,
		job.CategoryID,
		job.CityID,
		domain.JobStatusPending,
	).Scan(&job.ID, &job.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	job.Status = domain.JobStatusPending
	return nil
}

// GetJobByID retrieves a job with its denormalized display fields.
func (s *Storage) GetJobByID(ctx context.Context, jobID int64) (*model.JobDetail, error) {
	query := `SELECT` + jobDetailColumns + jobDetailFrom + `WHERE j.id = $1`

	var job model.JobDetail
	err := s.db.GetContext(ctx, &job, query, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// ListPendingJobs returns every pending job, newest first.
func (s *Storage) ListPendingJobs(ctx context.Context) ([]model.JobDetail, error) {
	query := `SELECT` + jobDetailColumns + jobDetailFrom + `
		WHERE j.status = $1
		ORDER BY j.created_at DESC`

	jobs := []model.JobDetail{}
	if err := s.db.SelectContext(ctx, &jobs, query, domain.JobStatusPending); err != nil {
		return nil, fmt.Errorf("failed to list pending jobs: %w", err)
	}

	return jobs, nil
}

// JobFilter narrows the pending-job listing. Zero values mean "no filter".
type JobFilter struct {
	CityID     int64
	CategoryID int64
	Title      string
}

// ListFilteredJobs returns pending jobs matching the filter, newest first.
func (s *Storage) ListFilteredJobs(ctx context.Context, filter JobFilter) ([]model.JobDetail, error) {
	query := `SELECT` + jobDetailColumns + jobDetailFrom + `WHERE j.status = $1`
	args := []interface{}{domain.JobStatusPending}
	argIdx := 2

	if filter.CityID > 0 {
		query += fmt.Sprintf(" AND j.city_id = $%d", argIdx)
		args = append(args, filter.CityID)
		argIdx++
	}

	if filter.CategoryID > 0 {
		query += fmt.Sprintf(" AND j.category_id = $%d", argIdx)
		args = append(args, filter.CategoryID)
		argIdx++
	}

	if filter.Title != "" {
		query += fmt.Sprintf(" AND j.title ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Title+"%")
		argIdx++
	}

	query += " ORDER BY j.created_at DESC"

	jobs := []model.JobDetail{}
	if err := s.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list filtered jobs: %w", err)
	}

	return jobs, nil
}

// ListCustomerJobs returns a customer's jobs, optionally narrowed to one
// status, newest first.
func (s *Storage) ListCustomerJobs(ctx context.Context, customerID int64, status string) ([]model.JobDetail, error) {
	query := `SELECT` + jobDetailColumns + jobDetailFrom + `WHERE j.customer_id = $1`
	args := []interface{}{customerID}

	if status != "" {
		query += " AND j.status = $2"
		args = append(args, status)
	}

	query += " ORDER BY j.created_at DESC"

	jobs := []model.JobDetail{}
	if err := s.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list customer jobs: %w", err)
	}

	return jobs, nil
}

// ListMasterInProgressJobs returns the jobs a master is currently working on.
func (s *Storage) ListMasterInProgressJobs(ctx context.Context, masterID int64) ([]model.JobDetail, error) {
	query := `SELECT` + jobDetailColumns + jobDetailFrom + `
		WHERE j.selected_master_id = $1 AND j.status = $2
		ORDER BY j.created_at DESC`

	jobs := []model.JobDetail{}
	if err := s.db.SelectContext(ctx, &jobs, query, masterID, domain.JobStatusInProgress); err != nil {
		return nil, fmt.Errorf("failed to list master in-progress jobs: %w", err)
	}

	return jobs, nil
}

// ListMasterCompletedJobs returns a master's completed jobs joined with the
// review, if any, left by the customer.
func (s *Storage) ListMasterCompletedJobs(ctx context.Context, masterID int64) ([]model.MasterCompletedJob, error) {
	query := `SELECT` + jobDetailColumns + `,
		r.rating, r.comment, r.created_at AS review_date
	` + jobDetailFrom + `
		LEFT JOIN reviews r ON r.job_id = j.id
		WHERE j.selected_master_id = $1 AND j.status = $2
		ORDER BY j.created_at DESC`

	jobs := []model.MasterCompletedJob{}
	if err := s.db.SelectContext(ctx, &jobs, query, masterID, domain.JobStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to list master completed jobs: %w", err)
	}

	return jobs, nil
}

// CountCustomerInProgressJobs counts a customer's in-progress jobs.
func (s *Storage) CountCustomerInProgressJobs(ctx context.Context, customerID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM jobs WHERE customer_id = $1 AND status = $2`

	if err := s.db.GetContext(ctx, &count, query, customerID, domain.JobStatusInProgress); err != nil {
		return 0, fmt.Errorf("failed to count customer in-progress jobs: %w", err)
	}

	return count, nil
}

// CountMasterInProgressJobs counts the jobs a master is currently working on.
func (s *Storage) CountMasterInProgressJobs(ctx context.Context, masterID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM jobs WHERE selected_master_id = $1 AND status = $2`

	if err := s.db.GetContext(ctx, &count, query, masterID, domain.JobStatusInProgress); err != nil {
		return 0, fmt.Errorf("failed to count master in-progress jobs: %w", err)
	}

	return count, nil
}

// AcceptProposal atomically moves a pending job to in_progress for the given
// master and purges every other proposal for the job. Both effects run in one
// transaction; if the guarded update matches no row (wrong owner, wrong
// status, or a lost race) the transaction rolls back and ErrJobConflict is
// returned.
func (s *Storage) AcceptProposal(ctx context.Context, jobID, masterID, customerID int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin accept-proposal transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE jobs
		SET status = $1, selected_master_id = $2
		WHERE id = $3 AND customer_id = $4 AND status = $5
	`, domain.JobStatusInProgress, masterID, jobID, customerID, domain.JobStatusPending)
	if err != nil {
		return fmt.Errorf("failed to accept proposal: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrJobConflict
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM proposals WHERE job_id = $1 AND master_id <> $2
	`, jobID, masterID)
	if err != nil {
		return fmt.Errorf("failed to purge losing proposals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit accept-proposal transaction: %w", err)
	}

	return nil
}

// CompleteJob moves an in-progress job to completed. The update is guarded on
// owner and status; zero affected rows means ErrJobConflict.
func (s *Storage) CompleteJob(ctx context.Context, jobID, customerID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE jobs
		SET status = $1
		WHERE id = $2 AND customer_id = $3 AND status = $4
	`, domain.JobStatusCompleted, jobID, customerID, domain.JobStatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrJobConflict
	}

	return nil
}
