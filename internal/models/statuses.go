package models

type UserStatus string
type UserRole string
type UploadStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleUser      UserRole = "user"
	UserRoleOwner     UserRole = "owner"
	UserRoleCaretaker UserRole = "caretaker"
	UserRoleAdmin     UserRole = "admin"

	UploadStatusPending  UploadStatus = "pending"
	UploadStatusUploaded UploadStatus = "uploaded"
)

// BookingStatus is stored as a small integer, matching the wire format
// the clients already use.
type BookingStatus int

const (
	BookingStatusScheduled BookingStatus = 0
	BookingStatusActive    BookingStatus = 1
	BookingStatusCompleted BookingStatus = 2
	BookingStatusCancelled BookingStatus = 3
)

func (s BookingStatus) Valid() bool {
	return s >= BookingStatusScheduled && s <= BookingStatusCancelled
}

// IsTerminal reports whether no further transition may leave this state.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo implements the booking state machine:
// scheduled -> active | cancelled, active -> completed | cancelled.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusScheduled:
		return next == BookingStatusActive || next == BookingStatusCancelled
	case BookingStatusActive:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	default:
		return false
	}
}

func (s BookingStatus) String() string {
	switch s {
	case BookingStatusScheduled:
		return "scheduled"
	case BookingStatusActive:
		return "active"
	case BookingStatusCompleted:
		return "completed"
	case BookingStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
