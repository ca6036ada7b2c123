// Package carrier composes the lock-screen carrier text from subscription and
// device state. Everything here is pure: a pass reads its inputs and returns a
// DisplayResult without I/O, so callers recompute from scratch on every change.
package carrier

import "carriertext/internal/carrier/models"

// Composer runs recompute passes. It is safe for concurrent use.
type Composer struct {
	separators models.Separators
}

// NewComposer creates a composer with fixed separators.
func NewComposer(separators models.Separators) *Composer {
	return &Composer{separators: separators}
}

// Compose runs one full pass.
// Rule order (later steps see and may replace earlier text):
//  1. Aggregate per-subscription fragments in list order
//  2. Emergency-only override when fewer subscriptions than slots
//  3. All-missing resolution
//  4. SIM I/O error overlay
//  5. SIM missing overlay (device option)
//  6. Airplane mode override (terminal)
func (c *Composer) Compose(res models.Resources, in models.Input, slots models.SlotState) models.DisplayResult {
	p := c.newPass(res, in, slots)

	p.aggregate()
	p.resolveEmergencyOnly()
	p.resolveAllMissing()
	p.applyIoErrorOverlay()
	p.applyMissingOverlay()
	p.applyAirplaneOverride()

	return models.DisplayResult{
		Text:                    p.text,
		AllSimsMissing:          p.allSimsMissing,
		AnySimReadyAndInService: p.anySimReadyAndInService,
		AirplaneOverride:        p.airplaneOverride,
	}
}

// pass holds the state of a single recompute.
type pass struct {
	res        models.Resources
	in         models.Input
	slots      models.SlotState
	joiner     Joiner
	builder    TextBuilder
	normalizer Normalizer

	text                    string
	allSimsMissing          bool
	anySimReadyAndInService bool
	airplaneOverride        bool
}

func (c *Composer) newPass(res models.Resources, in models.Input, slots models.SlotState) *pass {
	joiner := NewJoiner(c.separators)
	return &pass{
		res:    res,
		in:     in,
		slots:  slots,
		joiner: joiner,
		builder: TextBuilder{
			Messages:         res.Messages,
			EmergencyCapable: in.Device.EmergencyCallCapable,
			Joiner:           joiner,
		},
		normalizer:     NewNormalizer(c.separators.Default, res, in.Device.ShowLocaleNames),
		allSimsMissing: true,
	}
}

func (p *pass) aggregate() {
	subs := p.in.Subscriptions
	device := p.in.Device

	// No subscription info yet: unless a slot is known to be empty, show the
	// default "no service" text until subscriptions arrive.
	if len(subs) == 0 && !device.AnyHardwareAbsent() {
		p.allSimsMissing = false
		p.text = p.res.Messages.CarrierDefault
	}

	for _, sub := range subs {
		status := Classify(sub.SimState, device.DeviceProvisioned)

		name := sub.CarrierName
		if (device.ShowLocaleNames || sub.ShowRAT) && name != "" {
			name = p.normalizer.Normalize(name, p.ratLabel(sub))
		}

		if fragment, ok := p.builder.Fragment(status, name); ok {
			p.allSimsMissing = false
			p.text = p.joiner.Join(p.text, fragment)
		}

		if readyAndInService(sub, status, device.WifiAssociated) {
			p.anySimReadyAndInService = true
		}
	}
}

// ratLabel is the network class suffix for a subscription, empty when RAT display
// is off or the modem is not registered.
func (p *pass) ratLabel(sub models.Subscription) string {
	if !sub.ShowRAT || !sub.ServiceState.InService() {
		return ""
	}
	return p.res.Messages.RATLabel(sub.ServiceState.NetworkClass())
}

// readyAndInService treats Wi-Fi calling over IWLAN as in service only while Wi-Fi
// is still associated; IWLAN registration lingers briefly after Wi-Fi drops.
func readyAndInService(sub models.Subscription, status models.Status, wifiAssociated bool) bool {
	ss := sub.ServiceState
	if status != models.StatusNormal || ss == nil || !ss.DataInService {
		return false
	}
	return ss.DataRadioTech != models.RadioTechIWLAN || wifiAssociated
}

// applyAirplaneOverride replaces everything unless some subscription is in service;
// carrier services such as Wi-Fi calling can still operate in airplane mode.
func (p *pass) applyAirplaneOverride() {
	if p.anySimReadyAndInService || !p.in.Device.AirplaneMode {
		return
	}
	p.text = p.res.Messages.AirplaneMode
	p.airplaneOverride = true
}
