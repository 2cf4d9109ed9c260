package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user account is inactive")
)

// OTP errors
var (
	ErrOTPInvalid     = errors.New("invalid or expired otp code")
	ErrOTPNotFound    = errors.New("otp not found")
	ErrOTPMaxAttempts = errors.New("maximum otp attempts exceeded")
	ErrOTPResendWait  = errors.New("otp resend window not elapsed")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Resource errors
var (
	ErrCardNotFound         = errors.New("runner card not found")
	ErrRunNotFound          = errors.New("joint run not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrAlreadyJoined        = errors.New("already joined this run")
	ErrRunFull              = errors.New("joint run is full")
	ErrInvalidStatus        = errors.New("invalid participation status")
	ErrNotOwner             = errors.New("caller does not own this resource")
	ErrSelfInterest         = errors.New("cannot express interest in own card")
)
