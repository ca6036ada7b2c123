package handler

import (
	"fmt"
	"strings"

	"carriertext/internal/carrier/models"
	"carriertext/pkg/platform/sentinel"
)

// CarrierTextRequest is the HTTP request body for POST /v1/carrier-text.
type CarrierTextRequest struct {
	models.Input
}

// Validate normalizes card states and rejects values no pass can interpret.
func (r *CarrierTextRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: request body is required", sentinel.ErrInvalidInput)
	}
	if r.Device.PhysicalSlotCount < 0 {
		return fmt.Errorf("%w: physical_slot_count must not be negative", sentinel.ErrInvalidInput)
	}

	for i := range r.Subscriptions {
		sub := &r.Subscriptions[i]
		if sub.SlotIndex < 0 {
			return fmt.Errorf("%w: subscriptions[%d].slot_index must not be negative", sentinel.ErrInvalidInput, i)
		}
		state, err := models.ParseIccState(string(sub.SimState))
		if err != nil {
			return fmt.Errorf("subscriptions[%d]: %w", i, err)
		}
		sub.SimState = state
	}

	for i, raw := range r.Device.HardwareSimStates {
		state, err := models.ParseIccState(string(raw))
		if err != nil {
			return fmt.Errorf("device.hardware_sim_states[%d]: %w", i, err)
		}
		r.Device.HardwareSimStates[i] = state
	}
	return nil
}

// SimStateRequest is the HTTP request body for POST /v1/slots/{slot}/sim-state.
type SimStateRequest struct {
	SubscriptionID int    `json:"subscription_id"`
	State          string `json:"state"`

	parsedState models.IccState
}

func (r *SimStateRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: request body is required", sentinel.ErrInvalidInput)
	}
	state, err := models.ParseIccState(r.State)
	if err != nil {
		return err
	}
	r.parsedState = state
	return nil
}

// Event builds the domain event for slot.
func (r *SimStateRequest) Event(slot int) models.SimStateEvent {
	return models.SimStateEvent{
		SlotIndex:      slot,
		SubscriptionID: r.SubscriptionID,
		State:          r.parsedState,
	}
}

// LocaleRequest is the HTTP request body for PUT /v1/locale.
type LocaleRequest struct {
	Locale string `json:"locale"`
}

func (r *LocaleRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: request body is required", sentinel.ErrInvalidInput)
	}
	r.Locale = strings.TrimSpace(r.Locale)
	if r.Locale == "" {
		return fmt.Errorf("%w: locale is required", sentinel.ErrInvalidInput)
	}
	return nil
}

// SlotsRequest is the HTTP request body for PUT /v1/slots.
type SlotsRequest struct {
	SlotCount int `json:"slot_count"`
}

func (r *SlotsRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: request body is required", sentinel.ErrInvalidInput)
	}
	if r.SlotCount < 0 {
		return fmt.Errorf("%w: slot_count must not be negative", sentinel.ErrInvalidInput)
	}
	return nil
}
