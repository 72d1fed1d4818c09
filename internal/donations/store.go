// Package donations holds the authoritative in-memory donation collection and keeps
// it in sync with a flat JSON file.
package donations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"donationtracker/internal/domain"
	"donationtracker/internal/storage"
)

// Backend reads and replaces a single persisted object.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// Store owns the donation records and their running aggregates.
type Store struct {
	backend Backend
	key     string
	goal    int
	log     zerolog.Logger

	mu          sync.RWMutex
	records     []domain.Donation
	donors      map[string]struct{}
	totalAmount float64
}

// NewStore constructs an empty store persisting to key on backend.
func NewStore(backend Backend, key string, goal int, log zerolog.Logger) (*Store, error) {
	if goal <= 0 {
		return nil, domain.ErrInvalidGoal
	}
	return &Store{
		backend: backend,
		key:     key,
		goal:    goal,
		log:     log.With().Str("component", "donations").Logger(),
		donors:  make(map[string]struct{}),
	}, nil
}

// Load replaces in-memory state with the persisted collection. A missing file is
// an empty collection. Any other failure is logged and returned, leaving the store
// empty.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset(nil)

	data, err := s.backend.Read(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			s.log.Info().Str("key", s.key).Msg("donations file not found, starting with empty data")
			return nil
		}
		s.log.Error().Err(err).Str("key", s.key).Msg("failed to load donations")
		return fmt.Errorf("%w: load donations: %w", domain.ErrPersistence, err)
	}

	var records []domain.Donation
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("donations file is malformed")
		return fmt.Errorf("%w: decode donations: %w", domain.ErrPersistence, err)
	}

	s.reset(records)
	s.log.Info().Int("count", len(s.records)).Msg("donations loaded")
	return nil
}

func (s *Store) reset(records []domain.Donation) {
	s.records = records
	s.donors = make(map[string]struct{}, len(records))
	s.totalAmount = 0
	for _, d := range records {
		s.totalAmount += d.Amount
		s.donors[d.Email] = struct{}{}
	}
}

// Append adds a validated donation, updates the aggregates and rewrites the
// persisted collection. A persistence failure is returned wrapped in
// domain.ErrPersistence; the in-memory append is kept regardless.
func (s *Store) Append(ctx context.Context, d domain.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, known := s.donors[d.Email]
	s.records = append(s.records, d)
	s.totalAmount += d.Amount
	if !known {
		s.donors[d.Email] = struct{}{}
	}

	if err := s.persist(ctx); err != nil {
		s.log.Error().Err(err).Str("donation_id", d.ID).Msg("failed to save donations")
		return err
	}
	s.log.Debug().Int("count", len(s.records)).Msg("donations saved")
	return nil
}

func (s *Store) persist(ctx context.Context) error {
	records := s.records
	if records == nil {
		records = []domain.Donation{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode donations: %w", domain.ErrPersistence, err)
	}
	if err := s.backend.Write(ctx, s.key, data); err != nil {
		return fmt.Errorf("%w: write donations: %w", domain.ErrPersistence, err)
	}
	return nil
}

// Stats computes the aggregate view from current state.
func (s *Store) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]domain.Donation, len(s.records))
	copy(sorted, s.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > domain.RecentDonationsLimit {
		sorted = sorted[:domain.RecentDonationsLimit]
	}
	recent := make([]domain.RecentDonation, 0, len(sorted))
	for _, d := range sorted {
		recent = append(recent, d.Project())
	}

	return domain.Stats{
		TotalDonors:     len(s.donors),
		TotalAmount:     s.totalAmount,
		DonationGoal:    s.goal,
		Progress:        domain.Progress(s.totalAmount, s.goal),
		RecentDonations: recent,
	}
}

// Records returns a copy of all donations in insertion order.
func (s *Store) Records() []domain.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Donation, len(s.records))
	copy(out, s.records)
	return out
}

// Goal returns the configured fundraising target.
func (s *Store) Goal() int {
	return s.goal
}
