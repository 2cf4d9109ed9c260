package domain

import (
	"encoding/json"
	"fmt"
)

// Routing keys for published events.
const (
	RKInterestCreated = "interest.created"
	RKRunJoined       = "run.joined"
)

// InterestCreated is published when a user expresses interest in a card.
type InterestCreated struct {
	EventID      string `json:"event_id"`
	CardID       uint   `json:"card_id"`
	OwnerID      uint   `json:"owner_id"`
	InterestedID uint   `json:"interested_id"`
	Message      string `json:"message"`
}

// RunJoined is published when a user joins a joint run.
type RunJoined struct {
	EventID   string `json:"event_id"`
	RunID     uint   `json:"run_id"`
	CreatorID uint   `json:"creator_id"`
	JoinerID  uint   `json:"joiner_id"`
	Message   string `json:"message"`
}

// DecodeEvent unmarshals an event payload into T.
func DecodeEvent[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode event payload: %w", err)
	}
	return t, nil
}
