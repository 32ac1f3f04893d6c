package models

// UserRole defines the closed set of roles a user can hold
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleVolunteer   UserRole = "volunteer"
	RoleOutreach    UserRole = "outreach"
	RoleParticipant UserRole = "participant"
	RoleGuest       UserRole = "guest"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleVolunteer, RoleOutreach, RoleParticipant, RoleGuest:
		return true
	}
	return false
}

// Rank returns the position of the role in the edit-permission hierarchy.
// Higher outranks lower; outreach and participant share a rank.
func (r UserRole) Rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleVolunteer:
		return 2
	case RoleOutreach, RoleParticipant:
		return 1
	case RoleGuest:
		return 0
	}
	return -1
}

// Outranks reports whether r sits strictly above other in the hierarchy.
func (r UserRole) Outranks(other UserRole) bool {
	return r.Rank() > other.Rank()
}

// CallStatus defines the outcome states of a follow-up call
type CallStatus string

const (
	StatusNotCalled         CallStatus = "not_called"
	StatusCalledComing      CallStatus = "called_coming"
	StatusCalledNotComing   CallStatus = "called_not_coming"
	StatusCalledMayCome     CallStatus = "called_may_come"
	StatusCalledNotAnswered CallStatus = "called_not_answered"
	StatusCalledNotSure     CallStatus = "called_not_sure"
)

// IsValid checks if the CallStatus is valid
func (s CallStatus) IsValid() bool {
	switch s {
	case StatusNotCalled, StatusCalledComing, StatusCalledNotComing,
		StatusCalledMayCome, StatusCalledNotAnswered, StatusCalledNotSure:
		return true
	}
	return false
}
