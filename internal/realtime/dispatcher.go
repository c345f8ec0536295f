package realtime

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/craftnet/craftnet-be/internal/api/model"
)

// JobReader fetches the joined job record for a new-job push.
type JobReader interface {
	GetJobByID(ctx context.Context, jobID int64) (*model.JobDetail, error)
}

// ProposalReader fetches the joined proposal record for a new-proposal push.
type ProposalReader interface {
	GetProposalByID(ctx context.Context, proposalID int64) (*model.ProposalDetail, error)
}

type taskKind int

const (
	taskJobCreated taskKind = iota
	taskProposalCreated
)

type task struct {
	kind taskKind
	id   int64
}

// NotifyDispatcher turns lifecycle events into targeted pushes. Events are
// queued and drained by a pool of worker goroutines so the triggering
// operation never waits on a socket; a full queue drops the event. Every
// failure on this path is logged and swallowed.
type NotifyDispatcher struct {
	registry  *Registry
	jobs      JobReader
	proposals ProposalReader
	logger    *slog.Logger

	taskTimeout time.Duration
	workers     int
	tasks       chan task
	stopChan    chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
}

// DispatcherConfig holds the collaborators and tuning of a NotifyDispatcher.
type DispatcherConfig struct {
	Registry    *Registry
	Jobs        JobReader
	Proposals   ProposalReader
	Logger      *slog.Logger
	Workers     int
	QueueSize   int
	TaskTimeout time.Duration
}

func NewNotifyDispatcher(cfg *DispatcherConfig) *NotifyDispatcher {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 2
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 256
	}

	taskTimeout := cfg.TaskTimeout
	if taskTimeout <= 0 {
		taskTimeout = 5 * time.Second
	}

	return &NotifyDispatcher{
		registry:    cfg.Registry,
		jobs:        cfg.Jobs,
		proposals:   cfg.Proposals,
		logger:      cfg.Logger,
		taskTimeout: taskTimeout,
		workers:     workers,
		tasks:       make(chan task, queueSize),
		stopChan:    make(chan struct{}),
	}
}

// Start spawns the worker pool.
func (d *NotifyDispatcher) Start() {
	d.logger.Info("Starting notify dispatcher",
		slog.Int("workers", d.workers),
		slog.Int("queue_size", cap(d.tasks)),
	)

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.workerLoop()
	}
}

// Stop drains nothing: pending tasks are abandoned, matching the
// fire-and-forget contract.
func (d *NotifyDispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
	})
	d.wg.Wait()
	d.logger.Info("Notify dispatcher stopped")
}

// JobCreated queues a new-job push. Never blocks.
func (d *NotifyDispatcher) JobCreated(jobID int64) {
	d.enqueue(task{kind: taskJobCreated, id: jobID})
}

// ProposalCreated queues a new-proposal push. Never blocks.
func (d *NotifyDispatcher) ProposalCreated(proposalID int64) {
	d.enqueue(task{kind: taskProposalCreated, id: proposalID})
}

func (d *NotifyDispatcher) enqueue(t task) {
	select {
	case d.tasks <- t:
	default:
		d.logger.Warn("Dispatch queue full, dropping event",
			slog.Int("kind", int(t.kind)),
			slog.Int64("id", t.id),
		)
	}
}

func (d *NotifyDispatcher) workerLoop() {
	defer d.wg.Done()

	for {
		select {
		case <-d.stopChan:
			return
		case t := <-d.tasks:
			ctx, cancel := context.WithTimeout(context.Background(), d.taskTimeout)
			switch t.kind {
			case taskJobCreated:
				d.notifyMatchingMasters(ctx, t.id)
			case taskProposalCreated:
				d.notifyCustomer(ctx, t.id)
			}
			cancel()
		}
	}
}

// notifyMatchingMasters pushes a newJob event to every connected master whose
// tags match the job. A vanished job or a failed push is logged and ignored.
func (d *NotifyDispatcher) notifyMatchingMasters(ctx context.Context, jobID int64) {
	job, err := d.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		d.logger.Error("Failed to load job for master notification",
			slog.Int64("job_id", jobID),
			slog.Any("error", err),
		)
		return
	}

	event := NewJobEvent{
		JobID:       job.ID,
		Title:       job.Title,
		Description: job.Description,
		City:        job.CityName.String,
		Category:    job.CategoryName.String,
	}

	for _, sessionID := range d.registry.MatchingMasterSessions(job.CityID, job.CategoryID) {
		sender, ok := d.registry.Sender(sessionID)
		if !ok {
			continue
		}

		if err := sender.Send(EventNewJob, event); err != nil {
			d.logger.Warn("Failed to push newJob event",
				slog.String("session_id", sessionID),
				slog.Int64("job_id", job.ID),
				slog.Any("error", err),
			)
			continue
		}

		d.logger.Debug("Pushed newJob event",
			slog.String("session_id", sessionID),
			slog.Int64("job_id", job.ID),
		)
	}
}

// notifyCustomer pushes a newProposal event to the owning customer's session,
// if one is live.
func (d *NotifyDispatcher) notifyCustomer(ctx context.Context, proposalID int64) {
	proposal, err := d.proposals.GetProposalByID(ctx, proposalID)
	if err != nil {
		d.logger.Error("Failed to load proposal for customer notification",
			slog.Int64("proposal_id", proposalID),
			slog.Any("error", err),
		)
		return
	}

	job, err := d.jobs.GetJobByID(ctx, proposal.JobID)
	if err != nil {
		d.logger.Error("Failed to load job for customer notification",
			slog.Int64("job_id", proposal.JobID),
			slog.Any("error", err),
		)
		return
	}

	sessionID, ok := d.registry.CustomerSession(job.CustomerID)
	if !ok {
		return
	}

	sender, ok := d.registry.Sender(sessionID)
	if !ok {
		return
	}

	event := NewProposalEvent{
		ProposalID: proposal.ID,
		JobID:      job.ID,
		JobTitle:   job.Title,
		MasterName: masterDisplayName(proposal),
		Price:      proposal.Price,
		Message:    proposal.Message.String,
	}

	if err := sender.Send(EventNewProposal, event); err != nil {
		d.logger.Warn("Failed to push newProposal event",
			slog.String("session_id", sessionID),
			slog.Int64("proposal_id", proposal.ID),
			slog.Any("error", err),
		)
		return
	}

	d.logger.Debug("Pushed newProposal event",
		slog.String("session_id", sessionID),
		slog.Int64("proposal_id", proposal.ID),
		slog.Int64("customer_id", job.CustomerID),
	)
}

func masterDisplayName(p *model.ProposalDetail) string {
	return strings.TrimSpace(p.MasterName.String + " " + p.MasterSurname.String)
}
