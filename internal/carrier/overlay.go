package carrier

import "carriertext/internal/carrier/models"

// applyIoErrorOverlay adds the invalid-card text for every faulty slot: prepended
// for slot 0, appended for the others. With no usable card at all the text becomes
// only "invalid card" plus the emergency-calls-only message.
func (p *pass) applyIoErrorOverlay() {
	invalidCard, _ := p.builder.Fragment(models.StatusSimIoError, "")

	for slot, faulty := range p.slots.IoError {
		if !faulty {
			continue
		}
		if p.allSimsMissing {
			p.text = p.joiner.Join(invalidCard, p.res.Messages.EmergencyCallsOnly)
			return
		}
		if slot == 0 {
			p.text = p.joiner.Join(invalidCard, p.text)
		} else {
			p.text = p.joiner.Join(p.text, invalidCard)
		}
	}
}

// applyMissingOverlay adds the "no SIM" text for every empty slot when the device
// opts in. When all cards are missing the all-missing text already covers it.
func (p *pass) applyMissingOverlay() {
	if !p.in.Device.DisplayNoSim || p.allSimsMissing {
		return
	}

	for slot, missing := range p.slots.Missing {
		if !missing {
			continue
		}
		if slot == 0 {
			p.text = p.joiner.Join(p.res.Messages.MissingSim, p.text)
		} else {
			p.text = p.joiner.Join(p.text, p.res.Messages.MissingSim)
		}
	}
}
