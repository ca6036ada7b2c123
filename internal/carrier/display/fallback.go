package display

import (
	"context"
	"log/slog"

	"carriertext/internal/carrier/models"
	"carriertext/internal/carrier/ports"
	"carriertext/pkg/platform/circuit"
)

// Fallback pushes to a primary sink and, once the breaker opens after repeated
// failures, absorbs results into a fallback sink until the primary recovers. Every
// result is still offered to the primary first.
type Fallback struct {
	primary  ports.DisplaySink
	fallback ports.DisplaySink
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewFallback(primary, fallback ports.DisplaySink, breaker *circuit.Breaker, logger *slog.Logger) *Fallback {
	return &Fallback{
		primary:  primary,
		fallback: fallback,
		breaker:  breaker,
		logger:   logger,
	}
}

func (s *Fallback) Display(ctx context.Context, result models.DisplayResult) error {
	err := s.primary.Display(ctx, result)
	if err == nil {
		usePrimary, change := s.breaker.RecordSuccess()
		if change.Closed {
			s.logger.InfoContext(ctx, "display sink recovered", "breaker", s.breaker.Name())
		}
		if !usePrimary {
			// Keep the fallback current until the circuit closes.
			return s.fallback.Display(ctx, result)
		}
		return nil
	}

	useFallback, change := s.breaker.RecordFailure()
	if change.Opened {
		s.logger.WarnContext(ctx, "display sink degraded, using fallback",
			"breaker", s.breaker.Name(),
			"error", err,
		)
	}
	if !useFallback {
		return err
	}
	return s.fallback.Display(ctx, result)
}

// Degraded reports whether results are currently routed to the fallback.
func (s *Fallback) Degraded() bool {
	return s.breaker.IsOpen()
}
