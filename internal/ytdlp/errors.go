package ytdlp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBusy is returned when a pipeline is already in flight; the app runs at
// most one download or probe per user action.
var ErrBusy = errors.New("another operation is already in progress")

// Output lines kept when reporting a failed invocation
const errorTailLines = 5

// FailureReason classifies a failed yt-dlp invocation from its output text.
type FailureReason int

const (
	// ReasonOther covers failures with no special handling
	ReasonOther FailureReason = iota

	// ReasonAgeRestricted means the extractor demanded age verification;
	// the attempt is worth retrying with browser cookies
	ReasonAgeRestricted

	// ReasonCookies means the cookie import itself failed (browser not
	// installed, not logged in, locked profile)
	ReasonCookies
)

// Phrases yt-dlp prints for age-gated content
var ageRestrictionIndicators = []string{
	"sign in to confirm your age",
	"age verification",
	"age-restricted",
	"confirm your age",
	"this video may be inappropriate",
	"age check",
}

// Phrases yt-dlp prints when cookie extraction from the browser fails
var cookieErrorIndicators = []string{
	"cookies are missing",
	"cookies invalid",
	"failed to import cookies",
	"no cookies found",
	"cannot extract cookie",
	"cookie error",
	"extract cookie",
	"could not find",
}

// ClassifyOutput inspects tool output and picks the failure reason
func ClassifyOutput(output string) FailureReason {
	lower := strings.ToLower(output)
	for _, indicator := range cookieErrorIndicators {
		if strings.Contains(lower, indicator) {
			return ReasonCookies
		}
	}
	for _, indicator := range ageRestrictionIndicators {
		if strings.Contains(lower, indicator) {
			return ReasonAgeRestricted
		}
	}
	return ReasonOther
}

// InvokeError reports a non-zero yt-dlp exit together with the tail of its
// output and the classified reason.
type InvokeError struct {
	Args   []string
	Tail   string
	Reason FailureReason
	Err    error
}

func (e *InvokeError) Error() string {
	if e.Tail == "" {
		return fmt.Sprintf("yt-dlp failed: %v", e.Err)
	}
	return fmt.Sprintf("yt-dlp failed: %v\n%s", e.Err, e.Tail)
}

func (e *InvokeError) Unwrap() error {
	return e.Err
}

// newInvokeError builds an InvokeError from the collected output lines
func newInvokeError(args []string, lines []string, err error) *InvokeError {
	tail := lines
	if len(tail) > errorTailLines {
		tail = tail[len(tail)-errorTailLines:]
	}
	joined := strings.Join(tail, "\n")
	return &InvokeError{
		Args:   args,
		Tail:   joined,
		Reason: ClassifyOutput(joined),
		Err:    err,
	}
}
