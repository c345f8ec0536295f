package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/craftnet/craftnet-be/internal/api/domain"
	"github.com/craftnet/craftnet-be/internal/api/dto"
	"github.com/craftnet/craftnet-be/internal/api/storage"
	"github.com/gin-gonic/gin"
)

// callerID returns the authenticated user id placed in the context by the
// identity middleware.
func callerID(c *gin.Context) int64 {
	return c.GetInt64(domain.ContextKeyUserID)
}

// CreateJob handles POST /api/v1/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid create-job request", slog.String("error", err.Error()))
		respondBadRequest(c, "title, description, category_id and city_id are required")
		return
	}

	job, err := h.jobs.CreateJob(c.Request.Context(), callerID(c), req.Title, req.Description, req.CategoryID, req.CityID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusCreated, "Job created", dto.NewJobDTO(job))
}

// GetJob handles GET /api/v1/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "id must be a number")
		return
	}

	job, err := h.jobs.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Job retrieved", dto.NewJobDTO(job))
}

// ListPendingJobs handles GET /api/v1/jobs/pending
func (h *JobHandler) ListPendingJobs(c *gin.Context) {
	jobs, err := h.jobs.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Pending jobs retrieved", dto.NewJobDTOs(jobs))
}

// FilterJobs handles GET /api/v1/jobs/filter
func (h *JobHandler) FilterJobs(c *gin.Context) {
	var req dto.FilterJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "Invalid query parameters")
		return
	}

	jobs, err := h.jobs.ListFiltered(c.Request.Context(), storage.JobFilter{
		CityID:     req.CityID,
		CategoryID: req.CategoryID,
		Title:      req.Title,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Filtered jobs retrieved", dto.NewJobDTOs(jobs))
}

// MyJobs handles GET /api/v1/jobs/user/my-jobs
func (h *JobHandler) MyJobs(c *gin.Context) {
	var req dto.MyJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "Invalid query parameters")
		return
	}

	jobs, err := h.jobs.ListForCustomer(c.Request.Context(), callerID(c), req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Jobs retrieved", dto.NewJobDTOs(jobs))
}

// CustomerInProgressJobs handles GET /api/v1/jobs/user/in-progress
func (h *JobHandler) CustomerInProgressJobs(c *gin.Context) {
	jobs, err := h.jobs.ListInProgressForCustomer(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "In-progress jobs retrieved", dto.NewJobDTOs(jobs))
}

// AcceptProposal handles POST /api/v1/jobs/accept-proposal
func (h *JobHandler) AcceptProposal(c *gin.Context) {
	var req dto.AcceptProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "job_id and master_id are required")
		return
	}

	job, err := h.jobs.AcceptProposal(c.Request.Context(), req.JobID, req.MasterID, callerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Proposal accepted, job started", dto.NewJobDTO(job))
}

// CompleteJob handles POST /api/v1/jobs/complete
func (h *JobHandler) CompleteJob(c *gin.Context) {
	var req dto.CompleteJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "job_id is required")
		return
	}

	customerID := callerID(c)

	job, err := h.jobs.CompleteJob(c.Request.Context(), req.JobID, customerID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// The review is a separate follow-up step: if it fails the completion
	// stands, so the error is only logged.
	if req.Rating >= 1 && req.Rating <= 5 && job.SelectedMasterID.Valid {
		err := h.jobs.LeaveReview(c.Request.Context(), req.JobID, customerID, job.SelectedMasterID.Int64, req.Rating, req.Comment)
		if err != nil {
			h.logger.Error("Failed to create review after completion",
				slog.Int64("job_id", req.JobID),
				slog.Any("error", err),
			)
		}
	}

	respondOK(c, http.StatusOK, "Job completed", dto.NewJobDTO(job))
}

// MasterInProgressJobs handles GET /api/v1/jobs/master/in-progress
func (h *JobHandler) MasterInProgressJobs(c *gin.Context) {
	jobs, err := h.jobs.ListInProgressForMaster(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "In-progress jobs retrieved", dto.NewJobDTOs(jobs))
}

// MasterCompletedJobs handles GET /api/v1/jobs/master/completed
func (h *JobHandler) MasterCompletedJobs(c *gin.Context) {
	jobs, err := h.jobs.ListCompletedForMaster(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Completed jobs retrieved", dto.NewCompletedJobDTOs(jobs))
}

// InProgressCount handles GET /api/v1/jobs/in-progress/count
func (h *JobHandler) InProgressCount(c *gin.Context) {
	userID := callerID(c)
	role := c.GetString(domain.ContextKeyUserRole)

	var count int
	var err error

	switch role {
	case domain.RoleCustomer:
		count, err = h.jobs.CountInProgressForCustomer(c.Request.Context(), userID)
	case domain.RoleMaster:
		count, err = h.jobs.CountInProgressForMaster(c.Request.Context(), userID)
	default:
		respondBadRequest(c, "unknown role")
		return
	}

	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "In-progress count retrieved", gin.H{"count": count})
}
