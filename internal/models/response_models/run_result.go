package response_models

import (
	"fmt"
	"strings"
)

// ResultKind tags which variant of RunResult is populated.
type ResultKind int

const (
	// ResultKindText carries the final text directly in Value.
	ResultKindText ResultKind = iota + 1
	// ResultKindOpaque only offers a generic string rendering through Trace.
	ResultKindOpaque
)

// RunResult is what a single model invocation hands back to the planner.
type RunResult struct {
	Kind  ResultKind
	Value string
	Trace fmt.Stringer
}

func NewTextResult(value string) RunResult {
	return RunResult{Kind: ResultKindText, Value: value}
}

func NewOpaqueResult(trace fmt.Stringer) RunResult {
	return RunResult{Kind: ResultKindOpaque, Trace: trace}
}

// RawText returns the unprocessed text of the result for either variant.
func (r RunResult) RawText() string {
	switch r.Kind {
	case ResultKindText:
		return r.Value
	case ResultKindOpaque:
		if r.Trace == nil {
			return ""
		}
		return r.Trace.String()
	default:
		return ""
	}
}

// RunTrace summarises one agent run. Its String form is the verbose debug
// dump that gets shown when a run result is printed as a whole.
type RunTrace struct {
	LastAgent              string
	FinalOutput            string
	NewItems               int
	RawResponses           int
	InputGuardrailResults  int
	OutputGuardrailResults int
}

func (t RunTrace) String() string {
	var b strings.Builder
	b.WriteString("RunResult:\n")
	fmt.Fprintf(&b, "- Last agent: Agent(name=%q, ...)\n", t.LastAgent)
	b.WriteString("- Final output (str):\n")
	for _, line := range strings.Split(t.FinalOutput, "\n") {
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "- %d new item(s)\n", t.NewItems)
	fmt.Fprintf(&b, "- %d raw response(s)\n", t.RawResponses)
	fmt.Fprintf(&b, "- %d input guardrail result(s)\n", t.InputGuardrailResults)
	fmt.Fprintf(&b, "- %d output guardrail result(s)\n", t.OutputGuardrailResults)
	return b.String()
}

// Result wraps the trace in the requested variant.
func (t RunTrace) Result(debug bool) RunResult {
	if debug {
		return NewOpaqueResult(t)
	}
	return NewTextResult(t.FinalOutput)
}
