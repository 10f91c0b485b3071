// Package screenlist answers whether a caller is on the spreadsheet-backed
// allow or block list.
package screenlist

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=screenlist

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mclovin84/callscreen/internal/observability"
)

const (
	blocklistRange = "Blocklist!A:A"
	allowlistRange = "Allowlist!A:A"
)

// ListSource provides the raw list columns.
type ListSource interface {
	ReadColumn(ctx context.Context, readRange string) ([]string, error)
}

// Status is a caller's list membership.
type Status string

const (
	StatusAllowed Status = "allowed"
	StatusBlocked Status = "blocked"
	StatusUnknown Status = "unknown"
)

// Service caches both lists and refreshes them when older than the
// configured interval. A zero interval refetches on every lookup.
type Service struct {
	source          ListSource
	refreshInterval time.Duration
	normalize       bool
	logger          *observability.Logger

	mu          sync.RWMutex
	blocked     map[string]struct{}
	allowed     map[string]struct{}
	lastRefresh time.Time
}

// New creates the lookup service. A nil source disables list screening and
// every caller checks as unknown.
func New(source ListSource, refreshInterval time.Duration, normalize bool, logger *observability.Logger) *Service {
	return &Service{
		source:          source,
		refreshInterval: refreshInterval,
		normalize:       normalize,
		logger:          logger,
		blocked:         map[string]struct{}{},
		allowed:         map[string]struct{}{},
	}
}

// Check returns the caller's membership. The allow list wins over the block
// list. Fetch failures keep serving the previously loaded lists.
func (s *Service) Check(ctx context.Context, number string) Status {
	if s.source == nil {
		return StatusUnknown
	}
	s.refreshIfStale(ctx)

	key := s.key(number)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.allowed[key]; ok {
		return StatusAllowed
	}
	if _, ok := s.blocked[key]; ok {
		return StatusBlocked
	}
	return StatusUnknown
}

// IsBlocked reports whether the number screens out.
func (s *Service) IsBlocked(ctx context.Context, number string) bool {
	return s.Check(ctx, number) == StatusBlocked
}

// IsAllowed reports whether the number is on the allow list.
func (s *Service) IsAllowed(ctx context.Context, number string) bool {
	return s.Check(ctx, number) == StatusAllowed
}

func (s *Service) refreshIfStale(ctx context.Context) {
	s.mu.RLock()
	fresh := !s.lastRefresh.IsZero() && time.Since(s.lastRefresh) < s.refreshInterval
	s.mu.RUnlock()
	if fresh {
		return
	}

	blocked, err := s.source.ReadColumn(ctx, blocklistRange)
	if err != nil {
		s.logger.Error(ctx, "failed to refresh blocklist", err)
		return
	}
	allowed, err := s.source.ReadColumn(ctx, allowlistRange)
	if err != nil {
		s.logger.Error(ctx, "failed to refresh allowlist", err)
		return
	}

	s.mu.Lock()
	s.blocked = s.toSet(blocked)
	s.allowed = s.toSet(allowed)
	s.lastRefresh = time.Now()
	s.mu.Unlock()

	s.logger.Debug(observability.WithFields(ctx,
		observability.Field{Key: "blocked_count", Value: len(blocked)},
		observability.Field{Key: "allowed_count", Value: len(allowed)},
	), "screen lists refreshed")
}

func (s *Service) toSet(numbers []string) map[string]struct{} {
	set := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		set[s.key(n)] = struct{}{}
	}
	return set
}

// key trims the number and, when normalization is enabled, strips the
// formatting characters so that "+1 (555) 010-0000" matches "+15550100000".
func (s *Service) key(number string) string {
	number = strings.TrimSpace(number)
	if !s.normalize {
		return number
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, number)
}
