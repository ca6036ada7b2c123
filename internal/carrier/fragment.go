package carrier

import "carriertext/internal/carrier/models"

// TextBuilder produces the display fragment for a single subscription.
type TextBuilder struct {
	Messages         models.Messages
	EmergencyCapable bool
	Joiner           Joiner
}

// Fragment returns the text for one status. ok is false for the missing statuses,
// which contribute nothing; SimNotReady yields an empty but present fragment.
func (b TextBuilder) Fragment(status models.Status, text string) (fragment string, ok bool) {
	switch status {
	case models.StatusNormal:
		return text, true
	case models.StatusSimNotReady:
		return "", true
	case models.StatusSimMissing, models.StatusSimMissingLocked:
		return "", false
	case models.StatusNetworkLocked:
		return b.EmergencySuffix(b.Messages.NetworkLocked, text), true
	case models.StatusSimLocked:
		return b.EmergencySuffix(b.Messages.SimLocked, text), true
	case models.StatusSimPukLocked:
		return b.EmergencySuffix(b.Messages.SimPukLocked, text), true
	case models.StatusSimIoError:
		return b.EmergencySuffix(b.Messages.SimErrorShort, text), true
	case models.StatusSimPermDisabled:
		return b.Messages.PermDisabled, true
	}
	return "", false
}

// EmergencySuffix appends extra to message only on devices that can place
// emergency calls.
func (b TextBuilder) EmergencySuffix(message, extra string) string {
	if b.EmergencyCapable {
		return b.Joiner.Join(message, extra)
	}
	return message
}
