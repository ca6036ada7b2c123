package carrier

import "carriertext/internal/carrier/models"

// Classify maps a raw card state to a display status.
// This is pure domain logic - total, no I/O, no side effects.
//
// Reading the card may take a while, so an unread state is assumed present (Normal).
// An absent or permanently disabled card on an unprovisioned device is treated as
// network locked, which classifies as SimMissingLocked.
func Classify(state models.IccState, provisioned bool) models.Status {
	if state == "" {
		return models.StatusNormal
	}

	missingAndNotProvisioned := !provisioned &&
		(state == models.IccStateAbsent || state == models.IccStatePermDisabled)
	if missingAndNotProvisioned {
		state = models.IccStateNetworkLocked
	}

	switch state {
	case models.IccStateAbsent:
		return models.StatusSimMissing
	case models.IccStateNetworkLocked:
		return models.StatusSimMissingLocked
	case models.IccStateNotReady:
		return models.StatusSimNotReady
	case models.IccStatePinRequired:
		return models.StatusSimLocked
	case models.IccStatePukRequired:
		return models.StatusSimPukLocked
	case models.IccStateReady:
		return models.StatusNormal
	case models.IccStatePermDisabled:
		return models.StatusSimPermDisabled
	case models.IccStateUnknown:
		return models.StatusSimMissing
	case models.IccStateCardIoError:
		return models.StatusSimIoError
	}
	return models.StatusSimMissing
}
