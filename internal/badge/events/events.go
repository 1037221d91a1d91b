// Package events defines the issuance notification surface of the registry.
//
// Events are emitted after a mutation commits; consumers (indexers,
// notification senders) react to them, but the registry never depends on
// anything being done with an event. Publish failures are logged by the
// service and never roll back a committed mint or correction.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	id "merit/pkg/domain"
)

// Event types carried on the wire.
const (
	TypeBadgeIssued    = "badge.issued"
	TypeScoreCorrected = "badge.score_corrected"
)

// Mint paths recorded on issuance events.
const (
	PathSelf  = "self"
	PathAdmin = "admin"
)

// Event is emitted on every successful mint and score correction. Keep it
// transport-agnostic so memory and kafka publishers share one shape.
type Event struct {
	EventID   string     `json:"event_id"`
	Type      string     `json:"type"`
	Timestamp time.Time  `json:"timestamp"`
	Recipient id.Account `json:"recipient"`
	BadgeID   id.BadgeID `json:"badge_id"`
	Score     uint       `json:"score"`

	// Path and BelowFloor make administrator attestation mints auditable.
	Path       string `json:"path,omitempty"`
	BelowFloor bool   `json:"below_floor,omitempty"`

	// PreviousScore is set on score corrections only.
	PreviousScore uint `json:"previous_score,omitempty"`
}

// NewBadgeIssued builds an issuance event for a fresh mint.
func NewBadgeIssued(recipient id.Account, badgeID id.BadgeID, score uint, path string, belowFloor bool, at time.Time) Event {
	return Event{
		EventID:    uuid.NewString(),
		Type:       TypeBadgeIssued,
		Timestamp:  at,
		Recipient:  recipient,
		BadgeID:    badgeID,
		Score:      score,
		Path:       path,
		BelowFloor: belowFloor,
	}
}

// NewScoreCorrected builds an audit event for an administrator correction.
func NewScoreCorrected(recipient id.Account, badgeID id.BadgeID, oldScore, newScore uint, at time.Time) Event {
	return Event{
		EventID:       uuid.NewString(),
		Type:          TypeScoreCorrected,
		Timestamp:     at,
		Recipient:     recipient,
		BadgeID:       badgeID,
		Score:         newScore,
		PreviousScore: oldScore,
	}
}

// Publisher delivers registry events to consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Memory collects events in order for tests and unconfigured deployments.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Publish(_ context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

// Events returns a snapshot of everything published so far.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}
