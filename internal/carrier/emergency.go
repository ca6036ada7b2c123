package carrier

import "carriertext/internal/carrier/models"

// resolveEmergencyOnly handles a multi-slot device with only some cards inserted
// while the modem reports emergency-only registration for the present one.
func (p *pass) resolveEmergencyOnly() {
	signal := p.in.Device.EmergencyOnly
	if signal == nil || len(p.in.Subscriptions) >= p.in.Device.PhysicalSlotCount {
		return
	}

	present, ok := p.subscription(signal.PresentSubscriptionID)
	if !ok {
		return
	}

	text := p.res.Messages.EmergencyCallsOnly
	if b := p.in.Broadcast; b != nil && b.ShowSpn && b.SubscriptionID == signal.PresentSubscriptionID {
		if b.Spn != text {
			text = p.joiner.Join(text, b.Spn)
		}
	}

	status := Classify(present.SimState, p.in.Device.DeviceProvisioned)
	p.text, _ = p.builder.Fragment(status, text)
}

// resolveAllMissing builds the "no SIM card" text, followed by whatever the network
// is broadcasting (usually "Emergency calls only") on emergency-capable devices.
func (p *pass) resolveAllMissing() {
	if !p.allSimsMissing {
		return
	}

	missingShort := p.res.Messages.MissingSimShort
	if subs := p.in.Subscriptions; len(subs) != 0 {
		// Every subscription carries the same emergency text; the first one will do.
		// Gated on emergency capability, not a plain Join.
		p.text = p.builder.EmergencySuffix(missingShort, subs[0].CarrierName)
		return
	}

	// No subscription to read from: fall back to the last PLMN/SPN broadcast.
	text := p.res.Messages.EmergencyCallsOnly
	if b := p.in.Broadcast; b != nil {
		var plmn, spn string
		if b.ShowSpn {
			spn = b.Spn
		}
		if b.ShowPlmn {
			plmn = b.Plmn
		}
		if plmn == spn {
			text = plmn
		} else {
			text = p.joiner.Join(plmn, spn)
		}
	}
	// Same capability gate as above.
	p.text = p.builder.EmergencySuffix(missingShort, text)
}

func (p *pass) subscription(subscriptionID int) (models.Subscription, bool) {
	for _, sub := range p.in.Subscriptions {
		if sub.SubscriptionID == subscriptionID {
			return sub, true
		}
	}
	return models.Subscription{}, false
}
