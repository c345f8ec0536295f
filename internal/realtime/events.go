package realtime

// Inbound event names, sent by clients after connecting.
const (
	EventRegisterMaster   = "registerMaster"
	EventRegisterCustomer = "registerCustomer"
	EventDisconnect       = "disconnect"
)

// Outbound event names, pushed by the dispatcher.
const (
	EventNewJob      = "newJob"
	EventNewProposal = "newProposal"
)

// NewJobEvent is pushed to every connected master whose city and category
// tags match a freshly created job.
type NewJobEvent struct {
	JobID       int64  `json:"jobId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	City        string `json:"city"`
	Category    string `json:"category"`
}

// NewProposalEvent is pushed to the owning customer when a master bids on
// one of their jobs.
type NewProposalEvent struct {
	ProposalID int64   `json:"proposalId"`
	JobID      int64   `json:"jobId"`
	JobTitle   string  `json:"jobTitle"`
	MasterName string  `json:"masterName"`
	Price      float64 `json:"price"`
	Message    string  `json:"message"`
}

// RegisterMasterPayload carries a master's matching tags.
type RegisterMasterPayload struct {
	CategoryIDs []int64 `json:"categoryIds"`
	CityID      int64   `json:"cityId"`
}

// RegisterCustomerPayload identifies a customer session.
type RegisterCustomerPayload struct {
	CustomerID int64 `json:"customerId"`
}
