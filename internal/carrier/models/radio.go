package models

// RadioTech is the radio access technology a modem reports.
type RadioTech string

const (
	RadioTechUnknown RadioTech = "UNKNOWN"
	RadioTechGPRS    RadioTech = "GPRS"
	RadioTechEDGE    RadioTech = "EDGE"
	RadioTechUMTS    RadioTech = "UMTS"
	RadioTechIS95A   RadioTech = "IS95A"
	RadioTechIS95B   RadioTech = "IS95B"
	RadioTech1xRTT   RadioTech = "1XRTT"
	RadioTechEVDO0   RadioTech = "EVDO_0"
	RadioTechEVDOA   RadioTech = "EVDO_A"
	RadioTechHSDPA   RadioTech = "HSDPA"
	RadioTechHSUPA   RadioTech = "HSUPA"
	RadioTechHSPA    RadioTech = "HSPA"
	RadioTechEVDOB   RadioTech = "EVDO_B"
	RadioTechEHRPD   RadioTech = "EHRPD"
	RadioTechLTE     RadioTech = "LTE"
	RadioTechHSPAP   RadioTech = "HSPAP"
	RadioTechGSM     RadioTech = "GSM"
	RadioTechTDSCDMA RadioTech = "TD_SCDMA"
	RadioTechIWLAN   RadioTech = "IWLAN"
	RadioTechLTECA   RadioTech = "LTE_CA"
)

// NetworkClass is the coarse generation bucket shown as a suffix.
type NetworkClass string

const (
	NetworkClassUnknown NetworkClass = "unknown"
	NetworkClass2G      NetworkClass = "2g"
	NetworkClass3G      NetworkClass = "3g"
	NetworkClass4G      NetworkClass = "4g"
)

var networkClasses = map[RadioTech]NetworkClass{
	RadioTechGPRS:    NetworkClass2G,
	RadioTechEDGE:    NetworkClass2G,
	RadioTechGSM:     NetworkClass2G,
	RadioTechIS95A:   NetworkClass2G,
	RadioTechIS95B:   NetworkClass2G,
	RadioTech1xRTT:   NetworkClass2G,
	RadioTechUMTS:    NetworkClass3G,
	RadioTechEVDO0:   NetworkClass3G,
	RadioTechEVDOA:   NetworkClass3G,
	RadioTechEVDOB:   NetworkClass3G,
	RadioTechHSDPA:   NetworkClass3G,
	RadioTechHSUPA:   NetworkClass3G,
	RadioTechHSPA:    NetworkClass3G,
	RadioTechEHRPD:   NetworkClass3G,
	RadioTechHSPAP:   NetworkClass3G,
	RadioTechTDSCDMA: NetworkClass3G,
	RadioTechLTE:     NetworkClass4G,
	RadioTechLTECA:   NetworkClass4G,
	RadioTechIWLAN:   NetworkClass4G,
}

// Known reports whether the technology is anything other than unknown/unset.
func (r RadioTech) Known() bool {
	return r != "" && r != RadioTechUnknown
}

// NetworkClass buckets the technology. Unrecognized values are NetworkClassUnknown.
func (r RadioTech) NetworkClass() NetworkClass {
	if class, ok := networkClasses[r]; ok {
		return class
	}
	return NetworkClassUnknown
}
