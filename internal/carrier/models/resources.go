package models

// Messages holds the localized strings a pass may emit.
type Messages struct {
	NetworkLocked      string                  `yaml:"network_locked"`
	SimLocked          string                  `yaml:"sim_locked"`
	SimPukLocked       string                  `yaml:"sim_puk_locked"`
	PermDisabled       string                  `yaml:"perm_disabled"`
	SimErrorShort      string                  `yaml:"sim_error_short"`
	MissingSimShort    string                  `yaml:"missing_sim_short"`
	MissingSim         string                  `yaml:"missing_sim"`
	AirplaneMode       string                  `yaml:"airplane_mode"`
	EmergencyCallsOnly string                  `yaml:"emergency_calls_only"`
	CarrierDefault     string                  `yaml:"carrier_default"`
	RAT                map[NetworkClass]string `yaml:"rat"`
}

// RATLabel returns the suffix for a network class, or "" when none is configured.
func (m Messages) RATLabel(class NetworkClass) string {
	return m.RAT[class]
}

// Resources are the locale-resolved strings and carrier name table for one pass.
type Resources struct {
	Locale   string
	Messages Messages
	// CarrierNames maps an origin carrier-name token to its localized token.
	CarrierNames map[string]string
}

// LocalizeCarrierName substitutes a token, returning it unchanged on a miss.
func (r Resources) LocalizeCarrierName(name string) string {
	if localized, ok := r.CarrierNames[name]; ok {
		return localized
	}
	return name
}
