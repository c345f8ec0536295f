package handler

import (
	"net/http"
	"strconv"

	"github.com/craftnet/craftnet-be/internal/api/dto"
	"github.com/gin-gonic/gin"
)

// CreateProposal handles POST /api/v1/proposals
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "job_id and a positive price are required")
		return
	}

	proposal, err := h.proposals.Create(c.Request.Context(), callerID(c), req.JobID, req.Price, req.Message)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusCreated, "Proposal created", dto.NewProposalDTO(proposal))
}

// MyProposals handles GET /api/v1/proposals/master/my-proposals
func (h *ProposalHandler) MyProposals(c *gin.Context) {
	proposals, err := h.proposals.ListByMaster(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Proposals retrieved", dto.NewMasterProposalDTOs(proposals))
}

// ProposalsByJob handles GET /api/v1/proposals/job/:job_id
func (h *ProposalHandler) ProposalsByJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "job_id must be a number")
		return
	}

	proposals, err := h.proposals.ListByJob(c.Request.Context(), jobID, callerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Proposals retrieved", dto.NewProposalDTOs(proposals))
}

// ProposalCount handles GET /api/v1/proposals/count/:job_id
func (h *ProposalHandler) ProposalCount(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "job_id must be a number")
		return
	}

	count, err := h.proposals.CountByJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Proposal count retrieved", gin.H{
		"job_id": jobID,
		"count":  count,
	})
}

// HasProposal handles GET /api/v1/proposals/has/:job_id
func (h *ProposalHandler) HasProposal(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "job_id must be a number")
		return
	}

	has, err := h.proposals.HasProposal(c.Request.Context(), jobID, callerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Proposal existence retrieved", gin.H{
		"job_id":       jobID,
		"has_proposal": has,
	})
}
