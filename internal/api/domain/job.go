package domain

// Job status values. The literal strings are part of the storage contract
// and of every API response, so they stay lowercase.
const (
	JobStatusPending    = "pending"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
)

// ValidJobStatus reports whether s is one of the three job statuses.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted:
		return true
	}
	return false
}

// Caller roles as asserted by the upstream auth layer.
const (
	RoleCustomer = "customer"
	RoleMaster   = "master"
)
