package worker

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/you/runmate/domain"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (r *recordingNotifier) Notify(subject, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return r.err
}

func TestWorker_Dispatch(t *testing.T) {
	notifier := &recordingNotifier{}
	w := New(nil, notifier)

	body, _ := json.Marshal(domain.InterestCreated{
		EventID:      "01J0TEST",
		CardID:       3,
		OwnerID:      1,
		InterestedID: 2,
		Message:      "Kim is interested in your running schedule in Riverside",
	})
	if err := w.dispatch(domain.RKInterestCreated, body); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if len(notifier.messages) != 1 || notifier.messages[0] == "" {
		t.Errorf("expected one delivery, got %v", notifier.messages)
	}
}

func TestWorker_Dispatch_MalformedPayloadIsDropped(t *testing.T) {
	notifier := &recordingNotifier{}
	w := New(nil, notifier)

	// Undecodable payloads are dropped, not retried forever.
	if err := w.dispatch(domain.RKRunJoined, []byte("{not json")); err != nil {
		t.Fatalf("malformed payload must not error: %v", err)
	}
	if len(notifier.messages) != 0 {
		t.Errorf("malformed payload must not be delivered, got %v", notifier.messages)
	}
}

func TestWorker_Dispatch_UnknownKeyIsDropped(t *testing.T) {
	notifier := &recordingNotifier{}
	w := New(nil, notifier)

	if err := w.dispatch("run.cancelled", []byte(`{}`)); err != nil {
		t.Fatalf("unknown key must not error: %v", err)
	}
	if len(notifier.messages) != 0 {
		t.Errorf("unknown key must not be delivered, got %v", notifier.messages)
	}
}

func TestWorker_Dispatch_DeliveryFailureSurfaces(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("channel down")}
	w := New(nil, notifier)

	body, _ := json.Marshal(domain.RunJoined{EventID: "01J0TEST", RunID: 5, CreatorID: 1, JoinerID: 2, Message: "Kim joined"})
	if err := w.dispatch(domain.RKRunJoined, body); err == nil {
		t.Fatal("expected the delivery failure to surface for requeue")
	}
}
