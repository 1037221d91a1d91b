package store

import (
	"context"
	"sync"
	"time"

	"merit/internal/badge/models"
	id "merit/pkg/domain"
	"merit/pkg/platform/sentinel"
)

// InMemory keeps registry state in maps guarded by a single mutex. It backs
// unit tests and unconfigured deployments; the mutex provides the same
// serialize-every-mutation guarantee the postgres store gets from
// transactions.
type InMemory struct {
	mu      sync.RWMutex
	badges  map[id.BadgeID]*models.Badge
	byOwner map[id.Account]id.BadgeID
	nextID  uint64
	baseURI string
}

func NewInMemory() *InMemory {
	return &InMemory{
		badges:  make(map[id.BadgeID]*models.Badge),
		byOwner: make(map[id.Account]id.BadgeID),
	}
}

func (s *InMemory) Mint(_ context.Context, owner id.Account, score uint, issuedAt time.Time) (*models.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byOwner[owner]; exists {
		return nil, sentinel.ErrAlreadyUsed
	}

	s.nextID++
	badge := &models.Badge{
		ID:       id.BadgeID(s.nextID),
		Owner:    owner,
		Score:    score,
		IssuedAt: issuedAt,
	}
	s.badges[badge.ID] = badge
	s.byOwner[owner] = badge.ID
	return s.clone(badge), nil
}

func (s *InMemory) FindByID(_ context.Context, badgeID id.BadgeID) (*models.Badge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	badge, ok := s.badges[badgeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.clone(badge), nil
}

func (s *InMemory) FindByOwner(_ context.Context, owner id.Account) (*models.Badge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	badgeID, ok := s.byOwner[owner]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.clone(s.badges[badgeID]), nil
}

func (s *InMemory) Has(_ context.Context, owner id.Account) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byOwner[owner]
	return ok, nil
}

func (s *InMemory) UpdateScore(_ context.Context, badgeID id.BadgeID, score uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	badge, ok := s.badges[badgeID]
	if !ok {
		return sentinel.ErrNotFound
	}
	badge.Score = score
	return nil
}

func (s *InMemory) Total(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID, nil
}

func (s *InMemory) BaseURI(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURI, nil
}

func (s *InMemory) SetBaseURI(_ context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURI = uri
	return nil
}

// clone copies a badge so callers can't mutate store state through the
// returned pointer.
func (s *InMemory) clone(b *models.Badge) *models.Badge {
	c := *b
	return &c
}
