package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/wizard"
)

// DraftStore keeps wizard drafts in memory. Drafts live only for the
// duration of the wizard; nothing survives a restart except submitted
// bookings.
type DraftStore struct {
	mu      sync.RWMutex
	byID    map[string]*wizard.Draft
	byOwner map[string]string // user|celebrity|package -> draft id
}

func NewDraftStore() *DraftStore {
	return &DraftStore{
		byID:    make(map[string]*wizard.Draft),
		byOwner: make(map[string]string),
	}
}

// Save stores the draft. A user holds at most one draft per celebrity and
// package; starting over replaces the old one.
func (s *DraftStore) Save(_ context.Context, d *wizard.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ownerKey(d)
	if prev, ok := s.byOwner[key]; ok && prev != d.ID {
		delete(s.byID, prev)
	}
	s.byOwner[key] = d.ID
	s.byID[d.ID] = d

	return nil
}

func (s *DraftStore) GetByID(_ context.Context, id string) (*wizard.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}

	return d, nil
}

func (s *DraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.byID[id]
	if !ok {
		return domain.ErrDraftNotFound
	}
	delete(s.byID, id)
	delete(s.byOwner, ownerKey(d))

	return nil
}

func ownerKey(d *wizard.Draft) string {
	return fmt.Sprintf("%s|%s|%s", d.UserID, d.CelebrityID, d.PackageID)
}
