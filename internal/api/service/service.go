package service

import (
	"context"

	"github.com/craftnet/craftnet-be/internal/api/model"
	"github.com/craftnet/craftnet-be/internal/api/storage"
)

// JobStore is the persistence surface the job lifecycle engine depends on.
// Implemented by storage.Storage; tests substitute fakes.
type JobStore interface {
	CreateJob(ctx context.Context, job *model.Job) error
	GetJobByID(ctx context.Context, jobID int64) (*model.JobDetail, error)
	ListPendingJobs(ctx context.Context) ([]model.JobDetail, error)
	ListFilteredJobs(ctx context.Context, filter storage.JobFilter) ([]model.JobDetail, error)
	ListCustomerJobs(ctx context.Context, customerID int64, status string) ([]model.JobDetail, error)
	ListMasterInProgressJobs(ctx context.Context, masterID int64) ([]model.JobDetail, error)
	ListMasterCompletedJobs(ctx context.Context, masterID int64) ([]model.MasterCompletedJob, error)
	CountCustomerInProgressJobs(ctx context.Context, customerID int64) (int, error)
	CountMasterInProgressJobs(ctx context.Context, masterID int64) (int, error)
	AcceptProposal(ctx context.Context, jobID, masterID, customerID int64) error
	CompleteJob(ctx context.Context, jobID, customerID int64) error
}

// ProposalStore is the persistence surface the proposal ledger depends on.
type ProposalStore interface {
	CreateProposal(ctx context.Context, proposal *model.Proposal) error
	GetProposalByID(ctx context.Context, proposalID int64) (*model.ProposalDetail, error)
	ListJobProposals(ctx context.Context, jobID int64) ([]model.ProposalDetail, error)
	ListMasterProposals(ctx context.Context, masterID int64) ([]model.MasterProposal, error)
	CountJobProposals(ctx context.Context, jobID int64) (int, error)
	HasProposal(ctx context.Context, jobID, masterID int64) (bool, error)
}

// ReferenceStore resolves reference-data existence checks used during
// validation.
type ReferenceStore interface {
	CategoryExists(ctx context.Context, categoryID int64) (bool, error)
	CityExists(ctx context.Context, cityID int64) (bool, error)
	MasterExists(ctx context.Context, masterID int64) (bool, error)
}

// ReviewStore persists the optional review written at job completion.
type ReviewStore interface {
	CreateReview(ctx context.Context, review *model.Review) error
}

// Dispatcher receives lifecycle events for real-time fan-out. Calls must
// never block the triggering operation and their failures are invisible to
// it.
type Dispatcher interface {
	JobCreated(jobID int64)
	ProposalCreated(proposalID int64)
}

// NopDispatcher discards all events.
type NopDispatcher struct{}

func (NopDispatcher) JobCreated(int64)      {}
func (NopDispatcher) ProposalCreated(int64) {}

// EventSink receives lifecycle integration events for downstream systems.
// Implementations log and swallow their own failures.
type EventSink interface {
	JobCreated(ctx context.Context, job *model.JobDetail)
	JobAccepted(ctx context.Context, job *model.JobDetail)
	JobCompleted(ctx context.Context, job *model.JobDetail)
	ProposalCreated(ctx context.Context, proposal *model.ProposalDetail)
}

// NopEventSink discards all events.
type NopEventSink struct{}

func (NopEventSink) JobCreated(context.Context, *model.JobDetail)           {}
func (NopEventSink) JobAccepted(context.Context, *model.JobDetail)          {}
func (NopEventSink) JobCompleted(context.Context, *model.JobDetail)         {}
func (NopEventSink) ProposalCreated(context.Context, *model.ProposalDetail) {}
