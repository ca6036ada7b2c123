package handler

import "carriertext/internal/carrier/models"

// ResultResponse is the HTTP representation of one pass.
type ResultResponse struct {
	Text                    string `json:"text"`
	AllSimsMissing          bool   `json:"all_sims_missing"`
	AnySimReadyAndInService bool   `json:"any_sim_ready_and_in_service"`
	AirplaneOverride        bool   `json:"airplane_override"`
}

// SimStateResponse is the HTTP response for POST /v1/slots/{slot}/sim-state.
type SimStateResponse struct {
	Recomputed bool            `json:"recomputed"`
	Result     *ResultResponse `json:"result,omitempty"`
}

// LocaleResponse is the HTTP response for PUT /v1/locale.
type LocaleResponse struct {
	Locale string          `json:"locale"`
	Result *ResultResponse `json:"result,omitempty"`
}

// FromResult converts a DisplayResult; nil stays nil.
func FromResult(result *models.DisplayResult) *ResultResponse {
	if result == nil {
		return nil
	}
	return &ResultResponse{
		Text:                    result.Text,
		AllSimsMissing:          result.AllSimsMissing,
		AnySimReadyAndInService: result.AnySimReadyAndInService,
		AirplaneOverride:        result.AirplaneOverride,
	}
}
