package service

import "errors"

var (
	// ErrValidation wraps every input problem; the wrapped message is safe to show.
	ErrValidation = errors.New("validation failed")

	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidRole      = errors.New("role must be musician or booker")
	ErrRoleNotHeld      = errors.New("role not held")
	ErrProfileExists    = errors.New("profile already exists")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrMusicianNotFound = errors.New("musician not found")
	ErrBookerNotFound   = errors.New("booker not found")

	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookerRoleRequired  = errors.New("only bookers can request bookings")
	ErrSelfBooking         = errors.New("you cannot book yourself")
	ErrNotBookingParty     = errors.New("not a party to this booking")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrTransitionForbidden = errors.New("you are not allowed to make this status change")
	ErrStatusConflict      = errors.New("booking status changed, reload and try again")

	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a participant in this conversation")
	ErrSelfConversation     = errors.New("you cannot start a conversation with yourself")

	ErrSelfReview           = errors.New("you cannot review your own profile")
	ErrAlreadyReviewed      = errors.New("you have already reviewed this musician")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrTokenRevoked         = errors.New("session has been signed out")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrAlreadySubscribed    = errors.New("email is already subscribed")
)

func validationError(msg string) error {
	return &validationErr{msg: msg}
}

type validationErr struct {
	msg string
}

func (e *validationErr) Error() string { return e.msg }
func (e *validationErr) Unwrap() error { return ErrValidation }
