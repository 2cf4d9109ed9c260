package domain

import "time"

// User represents a runner account. A row is created with only a phone
// number on the first OTP request; name and password arrive at verification.
type User struct {
	ID            uint
	Phone         string
	Name          string
	Email         string
	AvatarURL     string
	Bio           string
	PasswordHash  string
	Role          string
	IsActive      bool
	PhoneVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasPassword reports whether registration has completed for this account.
func (u *User) HasPassword() bool { return u.PasswordHash != "" }

// RunnerCard is a posted running-schedule advertisement owned by one user.
type RunnerCard struct {
	ID             uint
	UserID         uint
	Location       string
	Days           string
	TimeOfDay      string
	Pace           string
	Note           string
	ContactVisible bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// JointRun is an organized run event owned by its creator.
type JointRun struct {
	ID              uint
	CreatorID       uint
	Title           string
	Location        string
	Description     string
	ScheduledAt     time.Time
	MaxParticipants int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Participation statuses for a joint run.
const (
	ParticipantInterested = "interested"
	ParticipantGoing      = "going"
	ParticipantCompleted  = "completed"
)

// ValidParticipantStatus reports whether s is a known participation status.
func ValidParticipantStatus(s string) bool {
	return s == ParticipantInterested || s == ParticipantGoing || s == ParticipantCompleted
}

// JointRunParticipant links a user to a run. One row per (user, run);
// the database unique index is the arbiter under concurrent joins.
type JointRunParticipant struct {
	ID         uint
	JointRunID uint
	UserID     uint
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Notification is addressed to one user. Only IsRead is mutable.
type Notification struct {
	ID        uint
	UserID    uint
	Message   string
	RefType   string
	RefID     uint
	IsRead    bool
	CreatedAt time.Time
}

// Notification reference types.
const (
	RefRunnerCard = "runner_card"
	RefJointRun   = "joint_run"
)

// Subscription tracks plan state, one-to-one with a user.
type Subscription struct {
	ID        uint
	UserID    uint
	Plan      string
	Status    string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OTPRequest describes a pending one-time code. It is never persisted to the
// relational store; the cache entry under otp:{phone} is the source of truth.
type OTPRequest struct {
	Phone     string
	Code      string
	ExpiresAt time.Time
	Attempts  int
}

// Session is a server-side login session backing the refresh token.
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AuthResult is the outcome of a successful login or refresh.
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// TokenClaims are the claims carried by issued JWTs.
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
