package response_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunResultRawText(t *testing.T) {
	trace := RunTrace{
		LastAgent:    "BookingAgent",
		FinalOutput:  "Flight A\nFlight B",
		NewItems:     3,
		RawResponses: 2,
	}

	assert.Equal(t, "Flight A\nFlight B", NewTextResult("Flight A\nFlight B").RawText())
	assert.Equal(t, "Flight A\nFlight B", trace.Result(false).RawText())
	assert.Equal(t, ResultKindOpaque, trace.Result(true).Kind)
	assert.Equal(t, "", NewOpaqueResult(nil).RawText())
	assert.Equal(t, "", RunResult{}.RawText())

	assert.Equal(t, "RunResult:\n"+
		"- Last agent: Agent(name=\"BookingAgent\", ...)\n"+
		"- Final output (str):\n"+
		"    Flight A\n"+
		"    Flight B\n"+
		"- 3 new item(s)\n"+
		"- 2 raw response(s)\n"+
		"- 0 input guardrail result(s)\n"+
		"- 0 output guardrail result(s)\n", trace.Result(true).RawText())
}

func TestItineraryReportMarkdown(t *testing.T) {
	r := &ItineraryReport{
		Destination:     "Paris",
		DestinationText: "Go to Paris",
		Flights:         "F",
		Hotels:          "H",
		Attractions:     "A",
	}

	assert.Equal(t, "### 🌍 Suggested Destination:\nGo to Paris\n\n"+
		"### ✈️ Flight Options:\nF\n\n"+
		"### 🏨 Hotel Suggestions:\nH\n\n"+
		"### 🍽 Attractions & Food:\nA", r.Markdown())
}
