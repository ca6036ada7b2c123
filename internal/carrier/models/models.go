package models

import (
	"fmt"
	"strings"

	"carriertext/pkg/platform/sentinel"
)

// IccState is the raw card state reported by the platform for a subscription.
// The zero value means the state has not been read yet.
type IccState string

const (
	IccStateReady         IccState = "READY"
	IccStateAbsent        IccState = "ABSENT"
	IccStateNetworkLocked IccState = "NETWORK_LOCKED"
	IccStateNotReady      IccState = "NOT_READY"
	IccStatePinRequired   IccState = "PIN_REQUIRED"
	IccStatePukRequired   IccState = "PUK_REQUIRED"
	IccStatePermDisabled  IccState = "PERM_DISABLED"
	IccStateUnknown       IccState = "UNKNOWN"
	IccStateCardIoError   IccState = "CARD_IO_ERROR"
)

// IsValid checks if the state is one of the supported enum values.
// The empty (unread) state is valid.
func (s IccState) IsValid() bool {
	switch s {
	case "", IccStateReady, IccStateAbsent, IccStateNetworkLocked, IccStateNotReady,
		IccStatePinRequired, IccStatePukRequired, IccStatePermDisabled, IccStateUnknown,
		IccStateCardIoError:
		return true
	}
	return false
}

// ParseIccState normalizes and validates a wire value.
func ParseIccState(s string) (IccState, error) {
	state := IccState(strings.ToUpper(strings.TrimSpace(s)))
	if !state.IsValid() {
		return "", fmt.Errorf("%w: unknown sim state %q", sentinel.ErrInvalidInput, s)
	}
	return state, nil
}

// Status is the abstract display status derived from an IccState.
type Status string

const (
	// StatusNormal: sim card present and not locked.
	StatusNormal Status = "normal"
	// StatusNetworkLocked: sim card is network locked.
	StatusNetworkLocked Status = "network_locked"
	// StatusSimMissing: sim card is missing.
	StatusSimMissing Status = "sim_missing"
	// StatusSimMissingLocked: sim card is missing and the device isn't provisioned.
	StatusSimMissingLocked Status = "sim_missing_locked"
	// StatusSimPukLocked: too many wrong PIN attempts.
	StatusSimPukLocked Status = "sim_puk_locked"
	// StatusSimLocked: PIN required.
	StatusSimLocked Status = "sim_locked"
	// StatusSimPermDisabled: permanently disabled after PUK unlock failure.
	StatusSimPermDisabled Status = "sim_perm_disabled"
	// StatusSimNotReady: not ready yet. May never leave this on devices without a sim.
	StatusSimNotReady Status = "sim_not_ready"
	// StatusSimIoError: the card is faulty.
	StatusSimIoError Status = "sim_io_error"
)

func (s Status) String() string {
	return string(s)
}

// ServiceState is the registration state of one subscription's modem.
type ServiceState struct {
	DataInService  bool      `json:"data_in_service"`
	VoiceInService bool      `json:"voice_in_service"`
	DataRadioTech  RadioTech `json:"data_radio_tech,omitempty"`
	VoiceRadioTech RadioTech `json:"voice_radio_tech,omitempty"`
}

// InService reports whether either data or voice is registered.
func (s *ServiceState) InService() bool {
	return s != nil && (s.DataInService || s.VoiceInService)
}

// NetworkClass prefers the data technology and falls back to voice. Out of service
// (or no record at all) yields NetworkClassUnknown.
func (s *ServiceState) NetworkClass() NetworkClass {
	if !s.InService() {
		return NetworkClassUnknown
	}
	if s.DataRadioTech.Known() {
		return s.DataRadioTech.NetworkClass()
	}
	if s.VoiceRadioTech.Known() {
		return s.VoiceRadioTech.NetworkClass()
	}
	return NetworkClassUnknown
}

// Subscription is the per-recompute snapshot of one active subscription.
type Subscription struct {
	SubscriptionID int           `json:"subscription_id"`
	SlotIndex      int           `json:"slot_index"`
	CarrierName    string        `json:"carrier_name"`
	SimState       IccState      `json:"sim_state"`
	ServiceState   *ServiceState `json:"service_state,omitempty"`
	// ShowRAT is the per-subscription "display radio technology" resource.
	ShowRAT bool `json:"show_rat"`
}

// EmergencyOnlySignal is present while the platform reports that only emergency
// calls are possible.
type EmergencyOnlySignal struct {
	PresentSubscriptionID int `json:"present_subscription_id"`
}

// DeviceSignals are the device-wide facts read once per pass.
type DeviceSignals struct {
	AirplaneMode         bool `json:"airplane_mode"`
	WifiAssociated       bool `json:"wifi_associated"`
	EmergencyCallCapable bool `json:"emergency_call_capable"`
	DeviceProvisioned    bool `json:"device_provisioned"`
	PhysicalSlotCount    int  `json:"physical_slot_count"`
	ShowLocaleNames      bool `json:"show_locale_names"`
	DisplayNoSim         bool `json:"display_no_sim"`
	// HardwareSimStates is the raw card state per physical slot, consulted when no
	// subscription is active.
	HardwareSimStates []IccState           `json:"hardware_sim_states,omitempty"`
	EmergencyOnly     *EmergencyOnlySignal `json:"emergency_only,omitempty"`
}

// AnyHardwareAbsent reports whether some physical slot has no card.
func (d DeviceSignals) AnyHardwareAbsent() bool {
	for _, state := range d.HardwareSimStates {
		if state == IccStateAbsent {
			return true
		}
	}
	return false
}

// SpnBroadcast is the last PLMN/SPN announcement from the platform.
type SpnBroadcast struct {
	ShowSpn        bool   `json:"show_spn"`
	Spn            string `json:"spn"`
	ShowPlmn       bool   `json:"show_plmn"`
	Plmn           string `json:"plmn"`
	SubscriptionID int    `json:"subscription_id"`
}

// Input is everything one recompute pass reads besides slot state and resources.
type Input struct {
	Subscriptions []Subscription `json:"subscriptions"`
	Device        DeviceSignals  `json:"device"`
	Broadcast     *SpnBroadcast  `json:"broadcast,omitempty"`
}

// SlotState is a copy of the per-slot error flags.
type SlotState struct {
	IoError []bool `json:"io_error"`
	Missing []bool `json:"missing"`
}

// SimStateEvent reports a card state change for one physical slot.
type SimStateEvent struct {
	SlotIndex      int      `json:"slot_index"`
	SubscriptionID int      `json:"subscription_id"`
	State          IccState `json:"state"`
}

// DisplayResult is the outcome of one pass.
type DisplayResult struct {
	Text                    string `json:"text"`
	AllSimsMissing          bool   `json:"all_sims_missing"`
	AnySimReadyAndInService bool   `json:"any_sim_ready_and_in_service"`
	AirplaneOverride        bool   `json:"airplane_override"`
}

// Separators configures how fragments are joined.
type Separators struct {
	Default string
	// Carrier replaces Default in joins when UseCarrier is set (device variant).
	Carrier    string
	UseCarrier bool
}
