package realtime

import "sync"

// Sender pushes a named event to one live connection.
type Sender interface {
	Send(event string, data any) error
}

// Role tags a session as belonging to a master or a customer.
type Role string

const (
	RoleMaster   Role = "master"
	RoleCustomer Role = "customer"
)

// session is the registry's record of one live connection. A master session
// carries its matching tags, a customer session its customer id.
type session struct {
	id          string
	role        Role
	sender      Sender
	categoryIDs map[int64]struct{}
	cityID      int64
	customerID  int64
}

// Registry is the in-memory directory of live real-time sessions. It is the
// sole owner of the session map: the gateway registers and removes entries,
// the dispatcher reads them. All methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*session),
	}
}

// RegisterMaster tags a session with a master's category set and city.
// Re-registering a session id replaces its previous tags.
func (r *Registry) RegisterMaster(sessionID string, sender Sender, categoryIDs []int64, cityID int64) {
	categories := make(map[int64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		categories[id] = struct{}{}
	}

	r.mu.Lock()
	r.sessions[sessionID] = &session{
		id:          sessionID,
		role:        RoleMaster,
		sender:      sender,
		categoryIDs: categories,
		cityID:      cityID,
	}
	r.mu.Unlock()
}

// RegisterCustomer tags a session with a customer identity.
func (r *Registry) RegisterCustomer(sessionID string, sender Sender, customerID int64) {
	r.mu.Lock()
	r.sessions[sessionID] = &session{
		id:         sessionID,
		role:       RoleCustomer,
		sender:     sender,
		customerID: customerID,
	}
	r.mu.Unlock()
}

// Remove drops a session. Removing an unknown id is a no-op.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	r.mu.Unlock()
}

// MatchingMasterSessions returns every master session whose city equals
// cityID and whose category set contains categoryID.
func (r *Registry) MatchingMasterSessions(cityID, categoryID int64) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []string
	for id, sess := range r.sessions {
		if sess.role != RoleMaster || sess.cityID != cityID {
			continue
		}
		if _, ok := sess.categoryIDs[categoryID]; ok {
			matches = append(matches, id)
		}
	}
	return matches
}

// CustomerSession returns a session tagged with the customer id, if one is
// live. Customers are expected to hold at most one session; the registry
// does not enforce it and returns an arbitrary one if several exist.
func (r *Registry) CustomerSession(customerID int64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, sess := range r.sessions {
		if sess.role == RoleCustomer && sess.customerID == customerID {
			return id, true
		}
	}
	return "", false
}

// Sender returns the push side of a session.
func (r *Registry) Sender(sessionID string) (Sender, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}
	return sess.sender, true
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
