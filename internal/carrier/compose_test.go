package carrier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"carriertext/internal/carrier/models"
)

var testSeparators = models.Separators{Default: " | ", Carrier: " - "}

func testResources() models.Resources {
	return models.Resources{
		Locale: "en-US",
		Messages: models.Messages{
			NetworkLocked:      "Network locked",
			SimLocked:          "SIM is locked.",
			SimPukLocked:       "SIM is PUK-locked.",
			PermDisabled:       "SIM is permanently disabled.",
			SimErrorShort:      "Invalid card.",
			MissingSimShort:    "No SIM card.",
			MissingSim:         "No SIM",
			AirplaneMode:       "Airplane mode",
			EmergencyCallsOnly: "Emergency calls only",
			CarrierDefault:     "No service.",
			RAT: map[models.NetworkClass]string{
				models.NetworkClassUnknown: "",
				models.NetworkClass2G:      "2G",
				models.NetworkClass3G:      "3G",
				models.NetworkClass4G:      "4G",
			},
		},
		CarrierNames: map[string]string{
			"China Mobile": "中国移动",
		},
	}
}

func inService(rat models.RadioTech) *models.ServiceState {
	return &models.ServiceState{DataInService: true, VoiceInService: true, DataRadioTech: rat, VoiceRadioTech: rat}
}

func readySub(id, slot int, name string) models.Subscription {
	return models.Subscription{
		SubscriptionID: id,
		SlotIndex:      slot,
		CarrierName:    name,
		SimState:       models.IccStateReady,
		ServiceState:   inService(models.RadioTechLTE),
	}
}

func device() models.DeviceSignals {
	return models.DeviceSignals{
		EmergencyCallCapable: true,
		DeviceProvisioned:    true,
		PhysicalSlotCount:    2,
	}
}

func slotState(ioError, missing []bool) models.SlotState {
	return models.SlotState{IoError: ioError, Missing: missing}
}

// =============================================================================
// Composer Test Suite
// =============================================================================
// The composer is a layered decision chain whose steps can replace each other's
// output, so most cases assert the exact final string.

type ComposerSuite struct {
	suite.Suite
	composer  *Composer
	resources models.Resources
	noSlots   models.SlotState
}

func TestComposerSuite(t *testing.T) {
	suite.Run(t, new(ComposerSuite))
}

func (s *ComposerSuite) SetupTest() {
	s.composer = NewComposer(testSeparators)
	s.resources = testResources()
	s.noSlots = slotState([]bool{false, false}, []bool{false, false})
}

func (s *ComposerSuite) compose(in models.Input, slots models.SlotState) models.DisplayResult {
	return s.composer.Compose(s.resources, in, slots)
}

// =============================================================================
// Aggregation Tests
// =============================================================================

func (s *ComposerSuite) TestAggregate() {
	s.Run("fragments fold in list order", func() {
		locked := models.Subscription{SubscriptionID: 2, SlotIndex: 1, CarrierName: "B", SimState: models.IccStatePinRequired}
		in := models.Input{
			Subscriptions: []models.Subscription{readySub(1, 0, "A"), locked},
			Device:        device(),
		}

		result := s.compose(in, s.noSlots)
		s.Equal("A | SIM is locked. | B", result.Text)
		s.False(result.AllSimsMissing)
		s.True(result.AnySimReadyAndInService)
	})

	s.Run("list order is authoritative over slot order", func() {
		in := models.Input{
			Subscriptions: []models.Subscription{readySub(2, 1, "B"), readySub(1, 0, "A")},
			Device:        device(),
		}
		s.Equal("B | A", s.compose(in, s.noSlots).Text)
	})

	s.Run("locked card without emergency calls shows message only", func() {
		dev := device()
		dev.EmergencyCallCapable = false
		locked := models.Subscription{SubscriptionID: 2, SlotIndex: 1, CarrierName: "B", SimState: models.IccStatePukRequired}
		in := models.Input{Subscriptions: []models.Subscription{readySub(1, 0, "A"), locked}, Device: dev}

		s.Equal("A | SIM is PUK-locked.", s.compose(in, s.noSlots).Text)
	})

	s.Run("not ready card contributes nothing but is not missing", func() {
		notReady := models.Subscription{SubscriptionID: 1, CarrierName: "A", SimState: models.IccStateNotReady}
		result := s.compose(models.Input{Subscriptions: []models.Subscription{notReady}, Device: device()}, s.noSlots)

		s.Equal("", result.Text)
		s.False(result.AllSimsMissing)
	})

	s.Run("zero subscriptions without absent hardware shows default", func() {
		dev := device()
		dev.HardwareSimStates = []models.IccState{models.IccStateNotReady, models.IccStateUnknown}
		result := s.compose(models.Input{Device: dev}, s.noSlots)

		s.Equal("No service.", result.Text)
		s.False(result.AllSimsMissing)
	})

	s.Run("carrier separator override applies to joins only", func() {
		composer := NewComposer(models.Separators{Default: " | ", Carrier: " - ", UseCarrier: true})
		sub := readySub(1, 0, "Acme | Acme")
		sub.ShowRAT = true
		in := models.Input{Subscriptions: []models.Subscription{sub, readySub(2, 1, "Beta")}, Device: device()}

		result := composer.Compose(s.resources, in, s.noSlots)
		s.Equal("Acme 4G - Beta", result.Text)
	})
}

// =============================================================================
// Normalization Tests
// =============================================================================

func (s *ComposerSuite) TestNormalization() {
	s.Run("rat suffix only when registered", func() {
		sub := readySub(1, 0, "Acme")
		sub.ShowRAT = true
		sub.ServiceState = &models.ServiceState{DataRadioTech: models.RadioTechLTE}
		in := models.Input{Subscriptions: []models.Subscription{sub}, Device: device()}

		s.Equal("Acme", s.compose(in, s.noSlots).Text)
	})

	s.Run("voice technology used when data is unknown", func() {
		sub := readySub(1, 0, "Acme")
		sub.ShowRAT = true
		sub.ServiceState = &models.ServiceState{VoiceInService: true, VoiceRadioTech: models.RadioTechEDGE}
		in := models.Input{Subscriptions: []models.Subscription{sub}, Device: device()}

		s.Equal("Acme 2G", s.compose(in, s.noSlots).Text)
	})

	s.Run("no service record means no suffix", func() {
		sub := readySub(1, 0, "Acme")
		sub.ShowRAT = true
		sub.ServiceState = nil
		in := models.Input{Subscriptions: []models.Subscription{sub}, Device: device()}

		result := s.compose(in, s.noSlots)
		s.Equal("Acme", result.Text)
		s.False(result.AnySimReadyAndInService)
	})

	s.Run("locale names substituted", func() {
		dev := device()
		dev.ShowLocaleNames = true
		in := models.Input{Subscriptions: []models.Subscription{readySub(1, 0, "China Mobile | China Mobile")}, Device: dev}

		s.Equal("中国移动", s.compose(in, s.noSlots).Text)
	})

	s.Run("names untouched when neither locale nor rat display is on", func() {
		in := models.Input{Subscriptions: []models.Subscription{readySub(1, 0, "Acme | Acme")}, Device: device()}
		s.Equal("Acme | Acme", s.compose(in, s.noSlots).Text)
	})
}

// =============================================================================
// Overlay Tests
// =============================================================================

func (s *ComposerSuite) TestIoErrorOverlay() {
	in := models.Input{Subscriptions: []models.Subscription{readySub(1, 0, "Acme")}, Device: device()}

	s.Run("slot 0 prepends", func() {
		result := s.compose(in, slotState([]bool{true, false}, []bool{false, false}))
		s.Equal("Invalid card. | Acme", result.Text)
	})

	s.Run("slot 1 appends", func() {
		result := s.compose(in, slotState([]bool{false, true}, []bool{false, false}))
		s.Equal("Acme | Invalid card.", result.Text)
	})

	s.Run("multiple faulty slots accumulate", func() {
		result := s.compose(in, slotState([]bool{true, true}, []bool{false, false}))
		s.Equal("Invalid card. | Acme | Invalid card.", result.Text)
	})

	s.Run("all missing replaces text", func() {
		absent := models.Subscription{SubscriptionID: 1, CarrierName: "Emergency calls only", SimState: models.IccStateAbsent}
		dev := device()
		dev.DisplayNoSim = true
		missingIn := models.Input{Subscriptions: []models.Subscription{absent}, Device: dev}

		result := s.compose(missingIn, slotState([]bool{false, true}, []bool{true, false}))
		s.True(result.AllSimsMissing)
		s.Equal("Invalid card. | Emergency calls only", result.Text)
	})
}

func (s *ComposerSuite) TestMissingOverlay() {
	s.Run("slot 0 prepends when enabled", func() {
		dev := device()
		dev.DisplayNoSim = true
		in := models.Input{Subscriptions: []models.Subscription{readySub(2, 1, "Beta")}, Device: dev}

		result := s.compose(in, slotState([]bool{false, false}, []bool{true, false}))
		s.Equal("No SIM | Beta", result.Text)
	})

	s.Run("slot 1 appends when enabled", func() {
		dev := device()
		dev.DisplayNoSim = true
		in := models.Input{Subscriptions: []models.Subscription{readySub(1, 0, "Acme")}, Device: dev}

		result := s.compose(in, slotState([]bool{false, false}, []bool{false, true}))
		s.Equal("Acme | No SIM", result.Text)
	})

	s.Run("ignored when device option is off", func() {
		in := models.Input{Subscriptions: []models.Subscription{readySub(1, 0, "Acme")}, Device: device()}

		result := s.compose(in, slotState([]bool{false, false}, []bool{false, true}))
		s.Equal("Acme", result.Text)
	})

	s.Run("io error applied before missing", func() {
		dev := device()
		dev.DisplayNoSim = true
		in := models.Input{Subscriptions: []models.Subscription{readySub(1, 0, "Acme")}, Device: dev}

		result := s.compose(in, slotState([]bool{false, true}, []bool{true, false}))
		s.Equal("No SIM | Acme | Invalid card.", result.Text)
	})
}

// =============================================================================
// Emergency-Only and All-Missing Tests
// =============================================================================

func (s *ComposerSuite) TestAllMissing() {
	s.Run("zero subscriptions with absent slot and empty broadcast", func() {
		dev := device()
		dev.PhysicalSlotCount = 1
		dev.HardwareSimStates = []models.IccState{models.IccStateAbsent}
		in := models.Input{Device: dev, Broadcast: &models.SpnBroadcast{ShowPlmn: true, ShowSpn: true}}

		result := s.compose(in, slotState([]bool{false}, []bool{true}))
		s.True(result.AllSimsMissing)
		s.Equal("No SIM card.", result.Text)
	})

	s.Run("zero subscriptions with plmn broadcast", func() {
		dev := device()
		dev.HardwareSimStates = []models.IccState{models.IccStateAbsent, models.IccStateAbsent}
		in := models.Input{Device: dev, Broadcast: &models.SpnBroadcast{ShowPlmn: true, Plmn: "Emergency calls only"}}

		s.Equal("No SIM card. | Emergency calls only", s.compose(in, s.noSlots).Text)
	})

	s.Run("equal plmn and spn shown once", func() {
		dev := device()
		dev.HardwareSimStates = []models.IccState{models.IccStateAbsent}
		in := models.Input{Device: dev, Broadcast: &models.SpnBroadcast{ShowPlmn: true, Plmn: "Acme", ShowSpn: true, Spn: "Acme"}}

		s.Equal("No SIM card. | Acme", s.compose(in, s.noSlots).Text)
	})

	s.Run("distinct plmn and spn both shown", func() {
		dev := device()
		dev.HardwareSimStates = []models.IccState{models.IccStateAbsent}
		in := models.Input{Device: dev, Broadcast: &models.SpnBroadcast{ShowPlmn: true, Plmn: "Acme", ShowSpn: true, Spn: "Beta"}}

		s.Equal("No SIM card. | Acme | Beta", s.compose(in, s.noSlots).Text)
	})

	s.Run("hidden spn ignored", func() {
		dev := device()
		dev.HardwareSimStates = []models.IccState{models.IccStateAbsent}
		in := models.Input{Device: dev, Broadcast: &models.SpnBroadcast{ShowPlmn: true, Plmn: "Acme", Spn: "Beta"}}

		s.Equal("No SIM card. | Acme", s.compose(in, s.noSlots).Text)
	})

	s.Run("no broadcast falls back to emergency calls only", func() {
		dev := device()
		dev.HardwareSimStates = []models.IccState{models.IccStateAbsent}

		s.Equal("No SIM card. | Emergency calls only", s.compose(models.Input{Device: dev}, s.noSlots).Text)
	})

	s.Run("device without emergency calls shows only the missing text", func() {
		dev := device()
		dev.EmergencyCallCapable = false
		dev.HardwareSimStates = []models.IccState{models.IccStateAbsent}
		in := models.Input{Device: dev, Broadcast: &models.SpnBroadcast{ShowPlmn: true, Plmn: "Acme"}}

		s.Equal("No SIM card.", s.compose(in, s.noSlots).Text)
	})

	s.Run("subscriptions present but all missing use first carrier name", func() {
		first := models.Subscription{SubscriptionID: 1, CarrierName: "Emergency calls only", SimState: models.IccStateAbsent}
		second := models.Subscription{SubscriptionID: 2, SlotIndex: 1, CarrierName: "Other", SimState: models.IccStateUnknown}
		in := models.Input{Subscriptions: []models.Subscription{first, second}, Device: device()}

		result := s.compose(in, s.noSlots)
		s.True(result.AllSimsMissing)
		s.Equal("No SIM card. | Emergency calls only", result.Text)
	})

	s.Run("unprovisioned absent card counts as missing", func() {
		dev := device()
		dev.DeviceProvisioned = false
		dev.EmergencyCallCapable = false
		absent := models.Subscription{SubscriptionID: 1, CarrierName: "Acme", SimState: models.IccStateAbsent}

		result := s.compose(models.Input{Subscriptions: []models.Subscription{absent}, Device: dev}, s.noSlots)
		s.True(result.AllSimsMissing)
		s.Equal("No SIM card.", result.Text)
	})
}

func (s *ComposerSuite) TestEmergencyOnly() {
	s.Run("present card shows emergency text with spn", func() {
		dev := device()
		dev.EmergencyOnly = &models.EmergencyOnlySignal{PresentSubscriptionID: 3}
		in := models.Input{
			Subscriptions: []models.Subscription{readySub(3, 0, "Acme")},
			Device:        dev,
			Broadcast:     &models.SpnBroadcast{ShowSpn: true, Spn: "Acme", SubscriptionID: 3},
		}

		s.Equal("Emergency calls only | Acme", s.compose(in, s.noSlots).Text)
	})

	s.Run("spn for another subscription ignored", func() {
		dev := device()
		dev.EmergencyOnly = &models.EmergencyOnlySignal{PresentSubscriptionID: 3}
		in := models.Input{
			Subscriptions: []models.Subscription{readySub(3, 0, "Acme")},
			Device:        dev,
			Broadcast:     &models.SpnBroadcast{ShowSpn: true, Spn: "Beta", SubscriptionID: 4},
		}

		s.Equal("Emergency calls only", s.compose(in, s.noSlots).Text)
	})

	s.Run("spn equal to emergency text not duplicated", func() {
		dev := device()
		dev.EmergencyOnly = &models.EmergencyOnlySignal{PresentSubscriptionID: 3}
		in := models.Input{
			Subscriptions: []models.Subscription{readySub(3, 0, "Acme")},
			Device:        dev,
			Broadcast:     &models.SpnBroadcast{ShowSpn: true, Spn: "Emergency calls only", SubscriptionID: 3},
		}

		s.Equal("Emergency calls only", s.compose(in, s.noSlots).Text)
	})

	s.Run("locked present card wraps emergency text", func() {
		dev := device()
		dev.EmergencyOnly = &models.EmergencyOnlySignal{PresentSubscriptionID: 3}
		locked := models.Subscription{SubscriptionID: 3, CarrierName: "Acme", SimState: models.IccStatePinRequired}
		in := models.Input{Subscriptions: []models.Subscription{locked}, Device: dev}

		s.Equal("SIM is locked. | Emergency calls only", s.compose(in, s.noSlots).Text)
	})

	s.Run("all slots occupied skips override", func() {
		dev := device()
		dev.EmergencyOnly = &models.EmergencyOnlySignal{PresentSubscriptionID: 1}
		in := models.Input{Subscriptions: []models.Subscription{readySub(1, 0, "A"), readySub(2, 1, "B")}, Device: dev}

		s.Equal("A | B", s.compose(in, s.noSlots).Text)
	})

	s.Run("unknown present subscription skips override", func() {
		dev := device()
		dev.EmergencyOnly = &models.EmergencyOnlySignal{PresentSubscriptionID: 9}
		in := models.Input{Subscriptions: []models.Subscription{readySub(1, 0, "A")}, Device: dev}

		s.Equal("A", s.compose(in, s.noSlots).Text)
	})
}

// =============================================================================
// Airplane Mode Tests
// =============================================================================

func (s *ComposerSuite) TestAirplaneOverride() {
	s.Run("overrides non-empty text when nothing is in service", func() {
		dev := device()
		dev.AirplaneMode = true
		sub := models.Subscription{SubscriptionID: 1, CarrierName: "Acme - No Service", SimState: models.IccStateReady}
		in := models.Input{Subscriptions: []models.Subscription{sub}, Device: dev}

		result := s.compose(in, slotState([]bool{true, false}, []bool{false, false}))
		want := models.DisplayResult{Text: "Airplane mode", AirplaneOverride: true}
		if diff := cmp.Diff(want, result); diff != "" {
			s.Failf("unexpected result", "(-want +got):\n%s", diff)
		}
	})

	s.Run("in-service card keeps carrier text", func() {
		dev := device()
		dev.AirplaneMode = true
		in := models.Input{Subscriptions: []models.Subscription{readySub(1, 0, "Acme")}, Device: dev}

		result := s.compose(in, s.noSlots)
		s.Equal("Acme", result.Text)
		s.False(result.AirplaneOverride)
	})

	s.Run("wifi calling without wifi is not in service", func() {
		dev := device()
		dev.AirplaneMode = true
		sub := readySub(1, 0, "Acme")
		sub.ServiceState = inService(models.RadioTechIWLAN)
		in := models.Input{Subscriptions: []models.Subscription{sub}, Device: dev}

		s.Equal("Airplane mode", s.compose(in, s.noSlots).Text)
	})

	s.Run("wifi calling with associated wifi is in service", func() {
		dev := device()
		dev.AirplaneMode = true
		dev.WifiAssociated = true
		sub := readySub(1, 0, "Acme")
		sub.ServiceState = inService(models.RadioTechIWLAN)
		in := models.Input{Subscriptions: []models.Subscription{sub}, Device: dev}

		s.Equal("Acme", s.compose(in, s.noSlots).Text)
	})

	s.Run("voice-only registration does not count", func() {
		dev := device()
		dev.AirplaneMode = true
		sub := readySub(1, 0, "Acme")
		sub.ServiceState = &models.ServiceState{VoiceInService: true, VoiceRadioTech: models.RadioTechLTE}
		in := models.Input{Subscriptions: []models.Subscription{sub}, Device: dev}

		s.Equal("Airplane mode", s.compose(in, s.noSlots).Text)
	})

	s.Run("wins over all-missing text", func() {
		dev := device()
		dev.AirplaneMode = true
		dev.HardwareSimStates = []models.IccState{models.IccStateAbsent}

		result := s.compose(models.Input{Device: dev}, s.noSlots)
		s.True(result.AllSimsMissing)
		s.Equal("Airplane mode", result.Text)
	})
}
