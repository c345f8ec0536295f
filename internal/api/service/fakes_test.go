package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"

	"github.com/craftnet/craftnet-be/internal/api/domain"
	"github.com/craftnet/craftnet-be/internal/api/model"
	"github.com/craftnet/craftnet-be/internal/api/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeJobStore is an in-memory JobStore mirroring the store's guarded
// transitions: AcceptProposal and CompleteJob only fire when the row still
// satisfies the transition's preconditions. When proposals is set, a
// successful acceptance purges the job's losing proposals, like the real
// store's transaction.
type fakeJobStore struct {
	mu     sync.Mutex
	nextID int64
	jobs   map[int64]*model.JobDetail

	proposals   *fakeProposalStore
	acceptErr   error
	completeErr error
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[int64]*model.JobDetail)}
}

func (f *fakeJobStore) put(job *model.JobDetail) *model.JobDetail {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job.ID == 0 {
		f.nextID++
		job.ID = f.nextID
	} else if job.ID > f.nextID {
		f.nextID = job.ID
	}
	f.jobs[job.ID] = job
	return job
}

func (f *fakeJobStore) CreateJob(ctx context.Context, job *model.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	job.ID = f.nextID
	job.Status = domain.JobStatusPending
	f.jobs[job.ID] = &model.JobDetail{Job: *job}
	return nil
}

func (f *fakeJobStore) GetJobByID(ctx context.Context, jobID int64) (*model.JobDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobStore) ListPendingJobs(ctx context.Context) ([]model.JobDetail, error) {
	return f.listByStatus(domain.JobStatusPending), nil
}

func (f *fakeJobStore) ListFilteredJobs(ctx context.Context, filter storage.JobFilter) ([]model.JobDetail, error) {
	return f.listByStatus(domain.JobStatusPending), nil
}

func (f *fakeJobStore) ListCustomerJobs(ctx context.Context, customerID int64, status string) ([]model.JobDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.JobDetail
	for _, job := range f.jobs {
		if job.CustomerID != customerID {
			continue
		}
		if status != "" && job.Status != status {
			continue
		}
		out = append(out, *job)
	}
	return out, nil
}

func (f *fakeJobStore) ListMasterInProgressJobs(ctx context.Context, masterID int64) ([]model.JobDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.JobDetail
	for _, job := range f.jobs {
		if job.Status == domain.JobStatusInProgress && job.SelectedMasterID.Int64 == masterID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (f *fakeJobStore) ListMasterCompletedJobs(ctx context.Context, masterID int64) ([]model.MasterCompletedJob, error) {
	return nil, nil
}

func (f *fakeJobStore) CountCustomerInProgressJobs(ctx context.Context, customerID int64) (int, error) {
	jobs, _ := f.ListCustomerJobs(ctx, customerID, domain.JobStatusInProgress)
	return len(jobs), nil
}

func (f *fakeJobStore) CountMasterInProgressJobs(ctx context.Context, masterID int64) (int, error) {
	jobs, _ := f.ListMasterInProgressJobs(ctx, masterID)
	return len(jobs), nil
}

func (f *fakeJobStore) AcceptProposal(ctx context.Context, jobID, masterID, customerID int64) error {
	if f.acceptErr != nil {
		return f.acceptErr
	}
	f.mu.Lock()
	job, ok := f.jobs[jobID]
	if !ok || job.CustomerID != customerID || job.Status != domain.JobStatusPending {
		f.mu.Unlock()
		return domain.ErrJobConflict
	}
	job.Status = domain.JobStatusInProgress
	job.SelectedMasterID = sql.NullInt64{Int64: masterID, Valid: true}
	f.mu.Unlock()

	if f.proposals != nil {
		f.proposals.purgeOthers(jobID, masterID)
	}
	return nil
}

func (f *fakeJobStore) CompleteJob(ctx context.Context, jobID, customerID int64) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[jobID]
	if !ok || job.CustomerID != customerID || job.Status != domain.JobStatusInProgress {
		return domain.ErrJobConflict
	}
	job.Status = domain.JobStatusCompleted
	return nil
}

func (f *fakeJobStore) listByStatus(status string) []model.JobDetail {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.JobDetail
	for _, job := range f.jobs {
		if job.Status == status {
			out = append(out, *job)
		}
	}
	return out
}

// fakeProposalStore is an in-memory ProposalStore enforcing the
// one-proposal-per-(job, master) constraint.
type fakeProposalStore struct {
	mu        sync.Mutex
	nextID    int64
	proposals map[int64]*model.ProposalDetail
}

func newFakeProposalStore() *fakeProposalStore {
	return &fakeProposalStore{proposals: make(map[int64]*model.ProposalDetail)}
}

func (f *fakeProposalStore) CreateProposal(ctx context.Context, proposal *model.Proposal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.proposals {
		if p.JobID == proposal.JobID && p.MasterID == proposal.MasterID {
			return domain.ErrDuplicateProposal
		}
	}
	f.nextID++
	proposal.ID = f.nextID
	f.proposals[proposal.ID] = &model.ProposalDetail{Proposal: *proposal}
	return nil
}

func (f *fakeProposalStore) GetProposalByID(ctx context.Context, proposalID int64) (*model.ProposalDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.proposals[proposalID]
	if !ok {
		return nil, domain.ErrProposalNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProposalStore) ListJobProposals(ctx context.Context, jobID int64) ([]model.ProposalDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.ProposalDetail
	for _, p := range f.proposals {
		if p.JobID == jobID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProposalStore) ListMasterProposals(ctx context.Context, masterID int64) ([]model.MasterProposal, error) {
	return nil, nil
}

func (f *fakeProposalStore) CountJobProposals(ctx context.Context, jobID int64) (int, error) {
	proposals, _ := f.ListJobProposals(ctx, jobID)
	return len(proposals), nil
}

// purgeOthers drops every proposal on the job except the accepted master's,
// mirroring the DELETE inside the acceptance transaction.
func (f *fakeProposalStore) purgeOthers(jobID, masterID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.proposals {
		if p.JobID == jobID && p.MasterID != masterID {
			delete(f.proposals, id)
		}
	}
}

func (f *fakeProposalStore) HasProposal(ctx context.Context, jobID, masterID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.proposals {
		if p.JobID == jobID && p.MasterID == masterID {
			return true, nil
		}
	}
	return false, nil
}

// fakeRefStore answers existence checks from fixed id sets.
type fakeRefStore struct {
	categories map[int64]bool
	cities     map[int64]bool
	masters    map[int64]bool
}

func newFakeRefStore() *fakeRefStore {
	return &fakeRefStore{
		categories: map[int64]bool{2: true, 3: true},
		cities:     map[int64]bool{5: true},
		masters:    map[int64]bool{100: true, 101: true},
	}
}

func (f *fakeRefStore) CategoryExists(ctx context.Context, categoryID int64) (bool, error) {
	return f.categories[categoryID], nil
}

func (f *fakeRefStore) CityExists(ctx context.Context, cityID int64) (bool, error) {
	return f.cities[cityID], nil
}

func (f *fakeRefStore) MasterExists(ctx context.Context, masterID int64) (bool, error) {
	return f.masters[masterID], nil
}

type fakeReviewStore struct {
	reviews []model.Review
}

func (f *fakeReviewStore) CreateReview(ctx context.Context, review *model.Review) error {
	review.ID = int64(len(f.reviews) + 1)
	f.reviews = append(f.reviews, *review)
	return nil
}

// recordingDispatcher captures fire-and-forget dispatch calls.
type recordingDispatcher struct {
	jobIDs      []int64
	proposalIDs []int64
}

func (d *recordingDispatcher) JobCreated(jobID int64)           { d.jobIDs = append(d.jobIDs, jobID) }
func (d *recordingDispatcher) ProposalCreated(proposalID int64) { d.proposalIDs = append(d.proposalIDs, proposalID) }

// recordingSink captures integration events by name.
type recordingSink struct {
	events []string
}

func (s *recordingSink) JobCreated(context.Context, *model.JobDetail) {
	s.events = append(s.events, "job.created")
}

func (s *recordingSink) JobAccepted(context.Context, *model.JobDetail) {
	s.events = append(s.events, "job.accepted")
}

func (s *recordingSink) JobCompleted(context.Context, *model.JobDetail) {
	s.events = append(s.events, "job.completed")
}

func (s *recordingSink) ProposalCreated(context.Context, *model.ProposalDetail) {
	s.events = append(s.events, "proposal.created")
}
