package extraction

import "fmt"

// Step names the workflow phase a failure belongs to.
type Step string

const (
	StepLaunch     Step = "launch"
	StepLogin      Step = "login"
	StepNavigation Step = "navigation"
	StepFilter     Step = "filter"
	StepExtraction Step = "extraction"
)

// Error kinds. The envelope message must let the caller tell credential
// problems from page-structure drift from timeouts, so every failure is
// labeled with one of these.
const (
	KindLaunch            = "launch error"
	KindAuthentication    = "authentication error"
	KindNavigation        = "navigation error"
	KindFilterNotFound    = "filter option not found"
	KindExtractionTimeout = "extraction timeout"
	KindRowShape          = "row shape error"
)

// StepError is the single error shape crossing the orchestrator
// boundary. All step errors are terminal for the current request; no
// step retries internally.
type StepError struct {
	Step   Step
	Kind   string
	Detail string
	Err    error
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("%s failed: %s: %s", e.Step, e.Kind, e.Detail)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StepError) Unwrap() error { return e.Err }

func launchError(err error) *StepError {
	return &StepError{
		Step:   StepLaunch,
		Kind:   KindLaunch,
		Detail: "browser process could not start",
		Err:    err,
	}
}

func authenticationError(detail string, err error) *StepError {
	return &StepError{Step: StepLogin, Kind: KindAuthentication, Detail: detail, Err: err}
}

func navigationError(detail string, err error) *StepError {
	return &StepError{Step: StepNavigation, Kind: KindNavigation, Detail: detail, Err: err}
}

// filterNotFoundError names the offending filter so the caller knows
// which requested option does not exist on the screen.
func filterNotFoundError(filter, option string) *StepError {
	return &StepError{
		Step:   StepFilter,
		Kind:   KindFilterNotFound,
		Detail: fmt.Sprintf("filter %q has no option %q", filter, option),
	}
}

// filterDriftError covers a known filter control that could not be
// located or operated, which points at page-structure drift rather
// than a bad option label.
func filterDriftError(filter, detail string, err error) *StepError {
	return &StepError{
		Step:   StepFilter,
		Kind:   KindNavigation,
		Detail: fmt.Sprintf("filter %q: %s", filter, detail),
		Err:    err,
	}
}

func extractionTimeoutError(detail string, err error) *StepError {
	return &StepError{Step: StepExtraction, Kind: KindExtractionTimeout, Detail: detail, Err: err}
}

// rowShapeError reports a row whose cell count does not match the
// column map, in either direction. A shape mismatch most likely means
// the target table layout changed, so the whole request fails rather
// than emit misleading partial records.
func rowShapeError(row, got, want int) *StepError {
	return &StepError{
		Step:   StepExtraction,
		Kind:   KindRowShape,
		Detail: fmt.Sprintf("row %d has %d cells, expected %d", row, got, want),
	}
}
