package dto

import (
	"time"

	"github.com/craftnet/craftnet-be/internal/api/model"
)

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	CategoryID  int64  `json:"category_id" binding:"required"`
	CityID      int64  `json:"city_id" binding:"required"`
}

type AcceptProposalRequest struct {
	JobID    int64 `json:"job_id" binding:"required"`
	MasterID int64 `json:"master_id" binding:"required"`
}

type CompleteJobRequest struct {
	JobID   int64  `json:"job_id" binding:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type FilterJobsRequest struct {
	CityID     int64  `form:"city_id"`
	CategoryID int64  `form:"category_id"`
	Title      string `form:"title"`
}

type MyJobsRequest struct {
	Status string `form:"status"`
}

// JobDTO is the denormalized job shape every job read returns. The column
// names mirror the persisted field naming.
type JobDTO struct {
	ID               int64   `json:"id"`
	CustomerID       int64   `json:"customer_id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	CategoryID       int64   `json:"category_id"`
	CityID           int64   `json:"city_id"`
	Status           string  `json:"status"`
	SelectedMasterID *int64  `json:"selected_master_id"`
	CreatedAt        string  `json:"created_at"`
	CategoryName     string  `json:"category_name,omitempty"`
	CityName         string  `json:"city_name,omitempty"`
	CustomerName     string  `json:"customer_name,omitempty"`
	CustomerSurname  string  `json:"customer_surname,omitempty"`
	CustomerEmail    string  `json:"customer_email,omitempty"`
	CustomerPhone    string  `json:"customer_phone,omitempty"`
	MasterName       *string `json:"master_name,omitempty"`
	MasterSurname    *string `json:"master_surname,omitempty"`
	MasterPhone      *string `json:"master_phone,omitempty"`
	ProposalCount    int     `json:"proposal_count"`
}

// CompletedJobDTO adds the review fields to a master's completed job.
type CompletedJobDTO struct {
	JobDTO
	Rating     *int64  `json:"rating"`
	Comment    *string `json:"comment"`
	ReviewDate *string `json:"review_date,omitempty"`
}

func NewJobDTO(job *model.JobDetail) JobDTO {
	dto := JobDTO{
		ID:              job.ID,
		CustomerID:      job.CustomerID,
		Title:           job.Title,
		Description:     job.Description,
		CategoryID:      job.CategoryID,
		CityID:          job.CityID,
		Status:          job.Status,
		CreatedAt:       job.CreatedAt.Format(time.RFC3339),
		CategoryName:    job.CategoryName.String,
		CityName:        job.CityName.String,
		CustomerName:    job.CustomerName.String,
		CustomerSurname: job.CustomerSurname.String,
		CustomerEmail:   job.CustomerEmail.String,
		CustomerPhone:   job.CustomerPhone.String,
		ProposalCount:   job.ProposalCount,
	}

	if job.SelectedMasterID.Valid {
		dto.SelectedMasterID = &job.SelectedMasterID.Int64
	}
	if job.MasterName.Valid {
		dto.MasterName = &job.MasterName.String
	}
	if job.MasterSurname.Valid {
		dto.MasterSurname = &job.MasterSurname.String
	}
	if job.MasterPhone.Valid {
		dto.MasterPhone = &job.MasterPhone.String
	}

	return dto
}

func NewJobDTOs(jobs []model.JobDetail) []JobDTO {
	dtos := make([]JobDTO, len(jobs))
	for i := range jobs {
		dtos[i] = NewJobDTO(&jobs[i])
	}
	return dtos
}

func NewCompletedJobDTO(job *model.MasterCompletedJob) CompletedJobDTO {
	dto := CompletedJobDTO{
		JobDTO: NewJobDTO(&job.JobDetail),
	}

	if job.Rating.Valid {
		dto.Rating = &job.Rating.Int64
	}
	if job.Comment.Valid {
		dto.Comment = &job.Comment.String
	}
	if job.ReviewDate.Valid {
		formatted := job.ReviewDate.Time.Format(time.RFC3339)
		dto.ReviewDate = &formatted
	}

	return dto
}

func NewCompletedJobDTOs(jobs []model.MasterCompletedJob) []CompletedJobDTO {
	dtos := make([]CompletedJobDTO, len(jobs))
	for i := range jobs {
		dtos[i] = NewCompletedJobDTO(&jobs[i])
	}
	return dtos
}
