// Package service runs carrier text passes in response to device events and pushes
// every result to the display sink.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"carriertext/internal/carrier"
	"carriertext/internal/carrier/metrics"
	"carriertext/internal/carrier/models"
	"carriertext/internal/carrier/ports"
	"carriertext/internal/carrier/slots"
	"carriertext/pkg/platform/sentinel"
)

// Service serializes passes: each event updates state and recomputes the text from
// scratch under one lock, so a tracker update always precedes the next pass.
type Service struct {
	mu       sync.Mutex
	composer *carrier.Composer
	tracker  *slots.Tracker
	catalog  ports.ResourceCatalog
	sink     ports.DisplaySink
	logger   *slog.Logger
	metrics  *metrics.Metrics
	locale   string

	last    *models.Input
	current *models.DisplayResult
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLocale sets the initial locale. The base catalog is used when unset.
func WithLocale(locale string) Option {
	return func(s *Service) {
		s.locale = locale
	}
}

func New(
	composer *carrier.Composer,
	tracker *slots.Tracker,
	catalog ports.ResourceCatalog,
	sink ports.DisplaySink,
	opts ...Option,
) (*Service, error) {
	if composer == nil {
		return nil, fmt.Errorf("composer is required")
	}
	if tracker == nil {
		return nil, fmt.Errorf("slot tracker is required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("resource catalog is required")
	}
	if sink == nil {
		return nil, fmt.Errorf("display sink is required")
	}

	svc := &Service{
		composer: composer,
		tracker:  tracker,
		catalog:  catalog,
		sink:     sink,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Update replaces the known subscription and device state and recomputes. When the
// input reports a different physical slot count than the tracker holds, the tracker
// is reinitialized first and every slot flag is dropped.
func (s *Service) Update(ctx context.Context, in models.Input) (*models.DisplayResult, error) {
	if in.Device.PhysicalSlotCount < 0 {
		return nil, fmt.Errorf("%w: physical slot count %d", sentinel.ErrInvalidInput, in.Device.PhysicalSlotCount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n := in.Device.PhysicalSlotCount; n != s.tracker.SlotCount() {
		s.logger.InfoContext(ctx, "physical slot count changed, resetting slot tracker",
			"from", s.tracker.SlotCount(),
			"to", n,
		)
		s.tracker.Reset(n)
	}
	s.last = &in
	return s.recompute(ctx)
}

// HandleSimStateChanged records a card state change for a slot. It recomputes from
// the last known input only when the slot's I/O error state flipped; otherwise the
// returned result is nil.
func (s *Service) HandleSimStateChanged(ctx context.Context, event models.SimStateEvent) (*models.DisplayResult, error) {
	if !event.State.IsValid() {
		return nil, fmt.Errorf("%w: unknown sim state %q", sentinel.ErrInvalidInput, event.State)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	provisioned := true
	if s.last != nil {
		provisioned = s.last.Device.DeviceProvisioned
	}

	recompute, err := s.tracker.Apply(event, provisioned)
	if err != nil {
		s.logger.WarnContext(ctx, "ignoring sim state event",
			"slot", event.SlotIndex,
			"subscription_id", event.SubscriptionID,
			"error", err,
		)
		return nil, err
	}
	s.metrics.IncrementSimStateEvents(carrier.Classify(event.State, provisioned))

	if !recompute || s.last == nil {
		return nil, nil
	}
	return s.recompute(ctx)
}

// SetLocale switches the locale and recomputes when an input is known.
func (s *Service) SetLocale(ctx context.Context, locale string) (*models.DisplayResult, error) {
	if !s.catalog.Supports(locale) {
		return nil, fmt.Errorf("%w: %q", sentinel.ErrUnknownLocale, locale)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.locale = locale
	s.logger.InfoContext(ctx, "locale changed", "locale", locale)
	if s.last == nil {
		return nil, nil
	}
	return s.recompute(ctx)
}

// Refresh recomputes from the last known input, e.g. after the catalog changed.
// It is a no-op before the first Update.
func (s *Service) Refresh(ctx context.Context) (*models.DisplayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return nil, nil
	}
	return s.recompute(ctx)
}

// Current returns the result of the most recent pass.
func (s *Service) Current() (models.DisplayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.DisplayResult{}, fmt.Errorf("%w: no carrier text computed yet", sentinel.ErrNotFound)
	}
	return *s.current, nil
}

// Resize reinitializes the slot tracker for a new physical slot count, dropping all
// slot flags. The next Update reinitializes it again if its input disagrees.
func (s *Service) Resize(slotCount int) error {
	if slotCount < 0 {
		return fmt.Errorf("%w: slot count %d", sentinel.ErrInvalidInput, slotCount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracker.Reset(slotCount)
	s.logger.Info("slot tracker resized", "slots", slotCount)
	return nil
}

// recompute must be called with s.mu held and s.last set. The result is recorded
// even when the sink rejects it.
func (s *Service) recompute(ctx context.Context) (*models.DisplayResult, error) {
	start := time.Now()

	res, err := s.catalog.Resources(s.locale)
	if err != nil {
		return nil, fmt.Errorf("resolve resources for locale %q: %w", s.locale, err)
	}

	result := s.composer.Compose(res, *s.last, s.tracker.Snapshot())
	s.current = &result
	s.metrics.ObservePass(result, time.Since(start))

	s.logger.DebugContext(ctx, "carrier text recomputed",
		"text", result.Text,
		"branch", metrics.Branch(result),
		"locale", res.Locale,
	)

	if err := s.sink.Display(ctx, result); err != nil {
		s.metrics.IncrementDisplayFailures()
		s.logger.ErrorContext(ctx, "failed to push carrier text", "error", err)
		return &result, fmt.Errorf("display carrier text: %w", err)
	}
	return &result, nil
}
