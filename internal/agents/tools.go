package agents

import "fmt"

var destinationParam = ToolParam{
	Name:        "destination",
	Description: "The city the traveller is going to, e.g. Tokyo",
	Required:    true,
}

// GetFlights returns mock flight options.
func GetFlights(destination string) string {
	return fmt.Sprintf("Flights to %s from your city: Flight A, Flight B, Flight C.", destination)
}

// SuggestHotels returns mock hotel suggestions.
func SuggestHotels(destination string) string {
	return fmt.Sprintf("Recommended hotels in %s: Hotel X, Hotel Y, Hotel Z.", destination)
}

func GetFlightsTool() Tool {
	return Tool{
		Name:        "get_flights",
		Description: "Get available flights to a destination",
		Params:      []ToolParam{destinationParam},
		Handler: func(args map[string]any) (string, error) {
			return GetFlights(fmt.Sprint(args["destination"])), nil
		},
	}
}

func SuggestHotelsTool() Tool {
	return Tool{
		Name:        "suggest_hotels",
		Description: "Suggest hotels in a destination",
		Params:      []ToolParam{destinationParam},
		Handler: func(args map[string]any) (string, error) {
			return SuggestHotels(fmt.Sprint(args["destination"])), nil
		},
	}
}
