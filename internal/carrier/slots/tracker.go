// Package slots tracks per-slot SIM error and missing flags across recompute passes.
package slots

import (
	"fmt"
	"sync"

	"carriertext/internal/carrier"
	"carriertext/internal/carrier/models"
	"carriertext/pkg/platform/sentinel"
)

// Tracker owns the slot error state. Flags only clear when the tracker is
// reinitialized through Reset.
type Tracker struct {
	mu      sync.RWMutex
	ioError []bool
	missing []bool
}

// NewTracker creates a tracker for slotCount physical slots.
func NewTracker(slotCount int) *Tracker {
	if slotCount < 0 {
		slotCount = 0
	}
	return &Tracker{
		ioError: make([]bool, slotCount),
		missing: make([]bool, slotCount),
	}
}

// SlotCount returns the number of physical slots tracked.
func (t *Tracker) SlotCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ioError)
}

// Apply records a card state change. recompute is true when the I/O error flag of
// the slot was raised or cleared by this event; missing-flag changes alone do not
// request a pass.
func (t *Tracker) Apply(event models.SimStateEvent, provisioned bool) (recompute bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot := event.SlotIndex
	if slot < 0 || slot >= len(t.ioError) {
		return false, fmt.Errorf("%w: slot %d outside [0,%d)", sentinel.ErrInvalidSlot, slot, len(t.ioError))
	}

	status := carrier.Classify(event.State, provisioned)
	t.missing[slot] = status == models.StatusSimMissing

	switch {
	case status == models.StatusSimIoError:
		t.ioError[slot] = true
		return true, nil
	case t.ioError[slot]:
		t.ioError[slot] = false
		return true, nil
	}
	return false, nil
}

// Snapshot returns copies of the current flags.
func (t *Tracker) Snapshot() models.SlotState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	state := models.SlotState{
		IoError: make([]bool, len(t.ioError)),
		Missing: make([]bool, len(t.missing)),
	}
	copy(state.IoError, t.ioError)
	copy(state.Missing, t.missing)
	return state
}

// Reset reinitializes the tracker for slotCount slots with every flag cleared.
func (t *Tracker) Reset(slotCount int) {
	if slotCount < 0 {
		slotCount = 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.ioError = make([]bool, slotCount)
	t.missing = make([]bool, slotCount)
}
