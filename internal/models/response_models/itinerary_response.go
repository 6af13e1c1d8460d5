package response_models

import "fmt"

type ItineraryReport struct {
	Destination     string `json:"destination"`
	DestinationText string `json:"destination_text"`
	Flights         string `json:"flights"`
	Hotels          string `json:"hotels"`
	Attractions     string `json:"attractions"`
}

// Markdown renders the four report sections in their fixed order.
func (r *ItineraryReport) Markdown() string {
	return fmt.Sprintf(
		"### 🌍 Suggested Destination:\n%s\n\n"+
			"### ✈️ Flight Options:\n%s\n\n"+
			"### 🏨 Hotel Suggestions:\n%s\n\n"+
			"### 🍽 Attractions & Food:\n%s",
		r.DestinationText, r.Flights, r.Hotels, r.Attractions)
}

type PlanTripResponse struct {
	*ItineraryReport
	Markdown string `json:"markdown"`
}
