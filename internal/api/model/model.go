package model

import (
	"database/sql"
	"time"
)

// Job mirrors a row of the jobs table.
type Job struct {
	ID               int64         `db:"id"`
	CustomerID       int64         `db:"customer_id"`
	Title            string        `db:"title"`
	Description      string        `db:"description"`
	CategoryID       int64         `db:"category_id"`
	CityID           int64         `db:"city_id"`
	Status           string        `db:"status"`
	SelectedMasterID sql.NullInt64 `db:"selected_master_id"`
	CreatedAt        time.Time     `db:"created_at"`
}

// JobDetail is a job row joined with its display fields. Fields coming from
// LEFT JOINs are nullable: the master columns are NULL while the job is
// pending.
type JobDetail struct {
	Job
	CategoryName    sql.NullString `db:"category_name"`
	CityName        sql.NullString `db:"city_name"`
	CustomerName    sql.NullString `db:"customer_name"`
	CustomerSurname sql.NullString `db:"customer_surname"`
	CustomerEmail   sql.NullString `db:"customer_email"`
	CustomerPhone   sql.NullString `db:"customer_phone"`
	MasterName      sql.NullString `db:"master_name"`
	MasterSurname   sql.NullString `db:"master_surname"`
	MasterPhone     sql.NullString `db:"master_phone"`
	ProposalCount   int            `db:"proposal_count"`
}

// MasterCompletedJob is a completed job joined with its review, for the
// master's work-history listing.
type MasterCompletedJob struct {
	JobDetail
	Rating     sql.NullInt64  `db:"rating"`
	Comment    sql.NullString `db:"comment"`
	ReviewDate sql.NullTime   `db:"review_date"`
}

// Proposal mirrors a row of the proposals table.
type Proposal struct {
	ID        int64          `db:"id"`
	JobID     int64          `db:"job_id"`
	MasterID  int64          `db:"master_id"`
	Price     float64        `db:"price"`
	Message   sql.NullString `db:"message"`
	CreatedAt time.Time      `db:"created_at"`
}

// ProposalDetail is a proposal joined with master and job display fields,
// the shape shown to the job's owning customer.
type ProposalDetail struct {
	Proposal
	MasterName    sql.NullString `db:"master_name"`
	MasterSurname sql.NullString `db:"master_surname"`
	MasterEmail   sql.NullString `db:"master_email"`
	JobTitle      sql.NullString `db:"job_title"`
	JobStatus     sql.NullString `db:"job_status"`
}

// MasterProposal is a proposal joined with job/category/city/customer display
// fields, the shape shown to the proposing master.
type MasterProposal struct {
	Proposal
	JobTitle        sql.NullString `db:"job_title"`
	JobDescription  sql.NullString `db:"job_description"`
	JobStatus       sql.NullString `db:"job_status"`
	CategoryName    sql.NullString `db:"category_name"`
	CityName        sql.NullString `db:"city_name"`
	CustomerName    sql.NullString `db:"customer_name"`
	CustomerSurname sql.NullString `db:"customer_surname"`
}

// Category is a reference-data row.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// City is a reference-data row.
type City struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Review is written once, optionally, when a customer completes a job.
type Review struct {
	ID         int64     `db:"id"`
	JobID      int64     `db:"job_id"`
	CustomerID int64     `db:"customer_id"`
	MasterID   int64     `db:"master_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}
