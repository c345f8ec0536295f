package domain

import "errors"

var (
	// ErrJobNotFound is returned when a job cannot be found in the database
	ErrJobNotFound = errors.New("job not found")

	// ErrProposalNotFound is returned when a proposal cannot be found
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrMasterNotFound is returned when the referenced master does not exist
	ErrMasterNotFound = errors.New("master not found")

	// ErrCategoryNotFound is returned when job creation references an unknown category
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCityNotFound is returned when job creation references an unknown city
	ErrCityNotFound = errors.New("city not found")

	// ErrNotJobOwner is returned when the caller is not the job's owning customer
	ErrNotJobOwner = errors.New("caller is not the job owner")

	// ErrJobConflict is returned when a guarded conditional update affected
	// zero rows: the job was already taken, already completed, or the caller
	// lost a race to a concurrent acceptance
	ErrJobConflict = errors.New("job is not in the required status")

	// ErrJobNotPending is returned when a proposal targets a non-pending job
	ErrJobNotPending = errors.New("job is no longer accepting proposals")

	// ErrDuplicateProposal is returned when a master already has a proposal
	// for the job
	ErrDuplicateProposal = errors.New("proposal already exists for this job and master")
)
