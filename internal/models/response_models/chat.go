package response_models

import "fmt"

const (
	IntentQuestion      = "question"
	IntentChangeRequest = "change_request"
)

type ChatTurn struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

// ChatReply is the second-phase chat output. The replacement itinerary is
// present exactly when the user's message was classified as a change
// request; for pure questions it must be absent.
type ChatReply struct {
	Reply     string     `json:"reply"`
	Intent    string     `json:"intent"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
}

func (r *ChatReply) Validate(duration int) error {
	if r.Reply == "" {
		return fmt.Errorf("empty reply")
	}
	switch r.Intent {
	case IntentQuestion:
		if r.Itinerary != nil {
			return fmt.Errorf("question reply carries an itinerary")
		}
	case IntentChangeRequest:
		if r.Itinerary == nil {
			return fmt.Errorf("change request reply is missing the itinerary")
		}
		if err := r.Itinerary.Validate(duration); err != nil {
			return fmt.Errorf("replacement itinerary: %w", err)
		}
	default:
		return fmt.Errorf("unknown intent %q", r.Intent)
	}
	return nil
}
