package dto

import (
	"time"

	"github.com/craftnet/craftnet-be/internal/api/model"
)

type CreateProposalRequest struct {
	JobID   int64   `json:"job_id" binding:"required"`
	Price   float64 `json:"price" binding:"required,gt=0"`
	Message string  `json:"message"`
}

// ProposalDTO is the proposal shape shown to the job's owning customer.
type ProposalDTO struct {
	ID            int64   `json:"id"`
	JobID         int64   `json:"job_id"`
	MasterID      int64   `json:"master_id"`
	Price         float64 `json:"price"`
	Message       *string `json:"message"`
	CreatedAt     string  `json:"created_at"`
	MasterName    string  `json:"master_name,omitempty"`
	MasterSurname string  `json:"master_surname,omitempty"`
	MasterEmail   string  `json:"master_email,omitempty"`
	JobTitle      string  `json:"job_title,omitempty"`
	JobStatus     string  `json:"job_status,omitempty"`
}

// MasterProposalDTO is the proposal shape shown to the proposing master.
type MasterProposalDTO struct {
	ID              int64   `json:"id"`
	JobID           int64   `json:"job_id"`
	MasterID        int64   `json:"master_id"`
	Price           float64 `json:"price"`
	Message         *string `json:"message"`
	CreatedAt       string  `json:"created_at"`
	JobTitle        string  `json:"job_title,omitempty"`
	JobDescription  string  `json:"job_description,omitempty"`
	JobStatus       string  `json:"job_status,omitempty"`
	CategoryName    string  `json:"category_name,omitempty"`
	CityName        string  `json:"city_name,omitempty"`
	CustomerName    string  `json:"customer_name,omitempty"`
	CustomerSurname string  `json:"customer_surname,omitempty"`
}

func NewProposalDTO(p *model.ProposalDetail) ProposalDTO {
	dto := ProposalDTO{
		ID:            p.ID,
		JobID:         p.JobID,
		MasterID:      p.MasterID,
		Price:         p.Price,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		MasterName:    p.MasterName.String,
		MasterSurname: p.MasterSurname.String,
		MasterEmail:   p.MasterEmail.String,
		JobTitle:      p.JobTitle.String,
		JobStatus:     p.JobStatus.String,
	}

	if p.Message.Valid {
		dto.Message = &p.Message.String
	}

	return dto
}

func NewProposalDTOs(proposals []model.ProposalDetail) []ProposalDTO {
	dtos := make([]ProposalDTO, len(proposals))
	for i := range proposals {
		dtos[i] = NewProposalDTO(&proposals[i])
	}
	return dtos
}

func NewMasterProposalDTO(p *model.MasterProposal) MasterProposalDTO {
	dto := MasterProposalDTO{
		ID:              p.ID,
		JobID:           p.JobID,
		MasterID:        p.MasterID,
		Price:           p.Price,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		JobTitle:        p.JobTitle.String,
		JobDescription:  p.JobDescription.String,
		JobStatus:       p.JobStatus.String,
		CategoryName:    p.CategoryName.String,
		CityName:        p.CityName.String,
		CustomerName:    p.CustomerName.String,
		CustomerSurname: p.CustomerSurname.String,
	}

	if p.Message.Valid {
		dto.Message = &p.Message.String
	}

	return dto
}

func NewMasterProposalDTOs(proposals []model.MasterProposal) []MasterProposalDTO {
	dtos := make([]MasterProposalDTO, len(proposals))
	for i := range proposals {
		dtos[i] = NewMasterProposalDTO(&proposals[i])
	}
	return dtos
}
