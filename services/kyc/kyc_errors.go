package kyc

import "errors"

var (
	ErrKYCNotFound      = errors.New("no verification record for this user")
	ErrAlreadySubmitted = errors.New("a verification record already exists for this user")
	ErrAlreadyReviewed  = errors.New("this verification record has already been reviewed")
	ErrInvalidDecision  = errors.New("review decision must be APPROVED or REJECTED")
)
