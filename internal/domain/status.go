package domain

// Event statuses. Registration is only accepted while an event is scheduled;
// the rollover job moves ended events to completed.
const (
	EventStatusScheduled = "scheduled"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCanceled  = "canceled"
)

// ValidEventStatus reports whether s is one of the known event statuses.
func ValidEventStatus(s string) bool {
	switch s {
	case EventStatusScheduled, EventStatusOngoing, EventStatusCompleted, EventStatusCanceled:
		return true
	}
	return false
}

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
