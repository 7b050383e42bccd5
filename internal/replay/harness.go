package replay

// #region imports
import (
	"fmt"
	"strings"

	"peeler/internal/agent"
)

// #endregion

// #region mismatch

// Mismatch reports one expectation a run failed to meet.
type Mismatch struct {
	Field string
	Got   string
	Want  string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %s, want %s", m.Field, m.Got, m.Want)
}

// #endregion

// #region run

// Run decodes the fixture input and compares the result against the
// fixture's expectations. Operates entirely in-memory.
func Run(f Fixture) (agent.Result, []Mismatch) {
	ag := agent.New(agent.Config{MaxIterations: f.Config.MaxIterations})
	result := ag.Decode(f.Input)
	return result, diff(f.Expected, result)
}

func diff(want Expected, got agent.Result) []Mismatch {
	var mismatches []Mismatch

	if want.Status != "" && want.Status != string(got.Status) {
		mismatches = append(mismatches, Mismatch{
			Field: "status",
			Got:   string(got.Status),
			Want:  want.Status,
		})
	}
	if want.Success != nil && *want.Success != got.Success {
		mismatches = append(mismatches, Mismatch{
			Field: "success",
			Got:   fmt.Sprintf("%v", got.Success),
			Want:  fmt.Sprintf("%v", *want.Success),
		})
	}
	if want.FinalText != nil && *want.FinalText != got.FinalText {
		mismatches = append(mismatches, Mismatch{
			Field: "final_text",
			Got:   fmt.Sprintf("%q", got.FinalText),
			Want:  fmt.Sprintf("%q", *want.FinalText),
		})
	}
	if want.Iterations != nil && *want.Iterations != got.Iterations {
		mismatches = append(mismatches, Mismatch{
			Field: "iterations",
			Got:   fmt.Sprintf("%d", got.Iterations),
			Want:  fmt.Sprintf("%d", *want.Iterations),
		})
	}
	if want.EncodingChain != nil && !equalChains(want.EncodingChain, got.EncodingChain) {
		mismatches = append(mismatches, Mismatch{
			Field: "encoding_chain",
			Got:   "[" + strings.Join(got.EncodingChain, ", ") + "]",
			Want:  "[" + strings.Join(want.EncodingChain, ", ") + "]",
		})
	}

	return mismatches
}

func equalChains(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// #endregion
