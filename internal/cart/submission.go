package cart

import "errors"

type SubmissionState string

const (
	SubmissionIdle      SubmissionState = "idle"
	SubmissionInFlight  SubmissionState = "in_flight"
	SubmissionSucceeded SubmissionState = "succeeded"
	SubmissionFailed    SubmissionState = "failed"
)

var (
	ErrSubmissionInProgress = errors.New("cart: submission already in progress")
	ErrNoSubmission         = errors.New("cart: no submission in progress")
)

func (s SubmissionState) IsTerminal() bool {
	return s == SubmissionSucceeded || s == SubmissionFailed
}

func (s SubmissionState) String() string {
	return string(s)
}

func (c *Cart) State() SubmissionState {
	return c.state
}

// BeginSubmission marks the cart as in flight. A second call before the first
// submission settles returns ErrSubmissionInProgress.
func (c *Cart) BeginSubmission() error {
	if c.state == SubmissionInFlight {
		return ErrSubmissionInProgress
	}

	c.state = SubmissionInFlight

	return nil
}

// CompleteSubmission clears the cart after the order was accepted.
func (c *Cart) CompleteSubmission() error {
	if c.state != SubmissionInFlight {
		return ErrNoSubmission
	}

	c.Clear()
	c.state = SubmissionSucceeded

	return nil
}

// FailSubmission leaves lines and modifiers untouched so the order can be retried.
func (c *Cart) FailSubmission() error {
	if c.state != SubmissionInFlight {
		return ErrNoSubmission
	}

	c.state = SubmissionFailed

	return nil
}

// View is a read-only snapshot of a cart for presentation layers.
type View struct {
	Profile   string          `json:"profile"`
	Lines     []Line          `json:"lines"`
	Modifiers Modifiers       `json:"modifiers"`
	Breakdown Breakdown       `json:"breakdown"`
	ItemCount int             `json:"item_count"`
	State     SubmissionState `json:"state"`
}

func (c *Cart) View() View {
	return View{
		Profile:   c.profile.Name,
		Lines:     c.Lines(),
		Modifiers: c.modifiers,
		Breakdown: c.Breakdown(),
		ItemCount: c.ItemCount(),
		State:     c.state,
	}
}
