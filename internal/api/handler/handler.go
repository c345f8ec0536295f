package handler

import (
	"context"
	"log/slog"

	"github.com/craftnet/craftnet-be/internal/api/model"
	"github.com/craftnet/craftnet-be/internal/api/service"
)

// ReferenceLister serves the category/city reference lists.
type ReferenceLister interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListCities(ctx context.Context) ([]model.City, error)
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger    *slog.Logger
	Jobs      *service.JobService
	Proposals *service.ProposalService
	Refs      ReferenceLister
}

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	logger *slog.Logger
	jobs   *service.JobService
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger: deps.Logger,
		jobs:   deps.Jobs,
	}
}

// ProposalHandler handles proposal-related HTTP requests
type ProposalHandler struct {
	logger    *slog.Logger
	proposals *service.ProposalService
}

// NewProposalHandler creates a new ProposalHandler instance
func NewProposalHandler(deps *Dependencies) *ProposalHandler {
	return &ProposalHandler{
		logger:    deps.Logger,
		proposals: deps.Proposals,
	}
}

// ReferenceHandler serves category and city reference data
type ReferenceHandler struct {
	logger *slog.Logger
	refs   ReferenceLister
}

// NewReferenceHandler creates a new ReferenceHandler instance
func NewReferenceHandler(deps *Dependencies) *ReferenceHandler {
	return &ReferenceHandler{
		logger: deps.Logger,
		refs:   deps.Refs,
	}
}
