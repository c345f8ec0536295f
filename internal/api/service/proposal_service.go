package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/craftnet/craftnet-be/internal/api/domain"
	"github.com/craftnet/craftnet-be/internal/api/model"
)

// ProposalService is the proposal ledger: one proposal per (job, master),
// proposals only against pending jobs.
type ProposalService struct {
	proposals  ProposalStore
	jobs       JobStore
	dispatcher Dispatcher
	events     EventSink
	logger     *slog.Logger
}

// ProposalServiceConfig holds the collaborators of a ProposalService.
type ProposalServiceConfig struct {
	Proposals  ProposalStore
	Jobs       JobStore
	Dispatcher Dispatcher
	Events     EventSink
	Logger     *slog.Logger
}

func NewProposalService(cfg *ProposalServiceConfig) *ProposalService {
	return &ProposalService{
		proposals:  cfg.Proposals,
		jobs:       cfg.Jobs,
		dispatcher: cfg.Dispatcher,
		events:     cfg.Events,
		logger:     cfg.Logger,
	}
}

// Create records a master's bid against a pending job. The HasProposal check
// yields a friendly duplicate error; the unique constraint in the store is
// the authoritative guard and maps to the same error when two submissions
// race.
func (s *ProposalService) Create(ctx context.Context, masterID, jobID int64, price float64, message string) (*model.ProposalDetail, error) {
	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusPending {
		return nil, domain.ErrJobNotPending
	}

	exists, err := s.proposals.HasProposal(ctx, jobID, masterID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateProposal
	}

	proposal := &model.Proposal{
		JobID:    jobID,
		MasterID: masterID,
		Price:    price,
		Message:  sql.NullString{String: message, Valid: message != ""},
	}

	if err := s.proposals.CreateProposal(ctx, proposal); err != nil {
		return nil, err
	}

	detail, err := s.proposals.GetProposalByID(ctx, proposal.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Proposal created",
		slog.Int64("proposal_id", proposal.ID),
		slog.Int64("job_id", jobID),
		slog.Int64("master_id", masterID),
	)

	s.dispatcher.ProposalCreated(proposal.ID)
	s.events.ProposalCreated(ctx, detail)

	return detail, nil
}

// ListByJob returns a job's proposals, newest first. Only the job's owning
// customer may read them.
func (s *ProposalService) ListByJob(ctx context.Context, jobID, customerID int64) ([]model.ProposalDetail, error) {
	job, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CustomerID != customerID {
		return nil, domain.ErrNotJobOwner
	}

	return s.proposals.ListJobProposals(ctx, jobID)
}

// ListByMaster returns a master's proposals, newest first.
func (s *ProposalService) ListByMaster(ctx context.Context, masterID int64) ([]model.MasterProposal, error) {
	return s.proposals.ListMasterProposals(ctx, masterID)
}

// CountByJob counts a job's proposals.
func (s *ProposalService) CountByJob(ctx context.Context, jobID int64) (int, error) {
	if _, err := s.jobs.GetJobByID(ctx, jobID); err != nil {
		return 0, err
	}

	return s.proposals.CountJobProposals(ctx, jobID)
}

// HasProposal reports whether the master already proposed on the job.
func (s *ProposalService) HasProposal(ctx context.Context, jobID, masterID int64) (bool, error) {
	return s.proposals.HasProposal(ctx, jobID, masterID)
}
