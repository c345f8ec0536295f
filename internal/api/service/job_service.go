package service

import (
	"context"
	"log/slog"

	"github.com/craftnet/craftnet-be/internal/api/domain"
	"github.com/craftnet/craftnet-be/internal/api/model"
	"github.com/craftnet/craftnet-be/internal/api/storage"
)

// JobService owns the job state machine: pending → in_progress → completed.
// Both transitions are customer-driven and guarded by conditional updates in
// the store; the service adds the friendly pre-checks and wires dispatch.
type JobService struct {
	jobs       JobStore
	refs       ReferenceStore
	reviews    ReviewStore
	dispatcher Dispatcher
	events     EventSink
	logger     *slog.Logger
}

// JobServiceConfig holds the collaborators of a JobService.
type JobServiceConfig struct {
	Jobs       JobStore
	Refs       ReferenceStore
	Reviews    ReviewStore
	Dispatcher Dispatcher
	Events     EventSink
	Logger     *slog.Logger
}

func NewJobService(cfg *JobServiceConfig) *JobService {
	return &JobService{
		jobs:       cfg.Jobs,
		refs:       cfg.Refs,
		reviews:    cfg.Reviews,
		dispatcher: cfg.Dispatcher,
		events:     cfg.Events,
		logger:     cfg.Logger,
	}
}

// CreateJob validates the referenced category and city, persists a pending
// job, and hands the new job to the dispatcher. Dispatch is fire-and-forget:
// its outcome never affects the create.
func (s *JobService) CreateJob(ctx context.Context, customerID int64, title, description string, categoryID, cityID int64) (*model.JobDetail, error) {
	ok, err := s.refs.CategoryExists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}

	ok, err = s.refs.CityExists(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCityNotFound
	}

	job := &model.Job{
		CustomerID:  customerID,
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
		CityID:      cityID,
	}

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	detail, err := s.jobs.GetJobByID(ctx, job.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Job created",
		slog.Int64("job_id", job.ID),
		slog.Int64("customer_id", customerID),
		slog.Int64("category_id", categoryID),
		slog.Int64("city_id", cityID),
	)

	s.dispatcher.JobCreated(job.ID)
	s.events.JobCreated(ctx, detail)

	return detail, nil
}

// AcceptProposal moves a pending job to in_progress for the given master and
// purges every other proposal, atomically. At most one of any number of
// concurrent calls succeeds; the rest receive ErrJobConflict from the
// guarded update.
func (s *JobService) AcceptProposal(ctx context.Context, jobID, masterID, customerID int64) (*model.JobDetail, error) {
	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CustomerID != customerID {
		return nil, domain.ErrNotJobOwner
	}
	if job.Status != domain.JobStatusPending {
		return nil, domain.ErrJobConflict
	}

	ok, err := s.refs.MasterExists(ctx, masterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrMasterNotFound
	}

	// The pre-checks above only produce friendly errors; the conditional
	// update inside AcceptProposal is what actually decides races.
	if err := s.jobs.AcceptProposal(ctx, jobID, masterID, customerID); err != nil {
		return nil, err
	}

	detail, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Proposal accepted",
		slog.Int64("job_id", jobID),
		slog.Int64("master_id", masterID),
		slog.Int64("customer_id", customerID),
	)

	s.events.JobAccepted(ctx, detail)

	return detail, nil
}

// CompleteJob moves an in-progress job to completed. Review creation is the
// caller's follow-up step, never part of the transition.
func (s *JobService) CompleteJob(ctx context.Context, jobID, customerID int64) (*model.JobDetail, error) {
	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CustomerID != customerID {
		return nil, domain.ErrNotJobOwner
	}
	if job.Status != domain.JobStatusInProgress {
		return nil, domain.ErrJobConflict
	}

	if err := s.jobs.CompleteJob(ctx, jobID, customerID); err != nil {
		return nil, err
	}

	detail, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Job completed",
		slog.Int64("job_id", jobID),
		slog.Int64("customer_id", customerID),
	)

	s.events.JobCompleted(ctx, detail)

	return detail, nil
}

// LeaveReview records the customer's rating for a completed job.
func (s *JobService) LeaveReview(ctx context.Context, jobID, customerID, masterID int64, rating int, comment string) error {
	review := &model.Review{
		JobID:      jobID,
		CustomerID: customerID,
		MasterID:   masterID,
		Rating:     rating,
		Comment:    comment,
	}

	return s.reviews.CreateReview(ctx, review)
}

// GetJobByID returns a job with its denormalized display fields.
func (s *JobService) GetJobByID(ctx context.Context, jobID int64) (*model.JobDetail, error) {
	return s.jobs.GetJobByID(ctx, jobID)
}

// ListPending returns every pending job, newest first.
func (s *JobService) ListPending(ctx context.Context) ([]model.JobDetail, error) {
	return s.jobs.ListPendingJobs(ctx)
}

// ListFiltered returns pending jobs narrowed by city, category and title
// substring.
func (s *JobService) ListFiltered(ctx context.Context, filter storage.JobFilter) ([]model.JobDetail, error) {
	return s.jobs.ListFilteredJobs(ctx, filter)
}

// ListForCustomer returns a customer's jobs, optionally narrowed to one
// status.
func (s *JobService) ListForCustomer(ctx context.Context, customerID int64, status string) ([]model.JobDetail, error) {
	if status != "" && !domain.ValidJobStatus(status) {
		status = ""
	}
	return s.jobs.ListCustomerJobs(ctx, customerID, status)
}

// ListInProgressForCustomer returns the customer's running jobs with the
// selected master's contact fields.
func (s *JobService) ListInProgressForCustomer(ctx context.Context, customerID int64) ([]model.JobDetail, error) {
	return s.jobs.ListCustomerJobs(ctx, customerID, domain.JobStatusInProgress)
}

// ListInProgressForMaster returns the jobs a master is currently working on.
func (s *JobService) ListInProgressForMaster(ctx context.Context, masterID int64) ([]model.JobDetail, error) {
	return s.jobs.ListMasterInProgressJobs(ctx, masterID)
}

// ListCompletedForMaster returns a master's completed jobs with reviews.
func (s *JobService) ListCompletedForMaster(ctx context.Context, masterID int64) ([]model.MasterCompletedJob, error) {
	return s.jobs.ListMasterCompletedJobs(ctx, masterID)
}

// CountInProgressForCustomer counts the customer's running jobs.
func (s *JobService) CountInProgressForCustomer(ctx context.Context, customerID int64) (int, error) {
	return s.jobs.CountCustomerInProgressJobs(ctx, customerID)
}

// CountInProgressForMaster counts the master's running jobs.
func (s *JobService) CountInProgressForMaster(ctx context.Context, masterID int64) (int, error) {
	return s.jobs.CountMasterInProgressJobs(ctx, masterID)
}
