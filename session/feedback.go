package session

// FeedbackAction is the user's decision about one suggested command. The
// decision flows outward to the CLI and audit log only; it is never fed
// back into the conversation, keeping the AI boundary one-directional.
type FeedbackAction string

const (
	// FeedbackAccept runs the command as suggested.
	FeedbackAccept FeedbackAction = "accept"
	// FeedbackReject discards the suggestion.
	FeedbackReject FeedbackAction = "reject"
	// FeedbackEdit runs a user-modified version of the command.
	FeedbackEdit FeedbackAction = "edit"
)

// CommandFeedback records what the user did with a suggestion.
type CommandFeedback struct {
	// Command is the suggestion as the session produced it.
	Command string
	// Action is the user's decision.
	Action FeedbackAction
	// Edited holds the user's replacement text when Action is FeedbackEdit.
	Edited string
}

// Final returns the command that should actually run, or "" when the
// suggestion was rejected.
func (f CommandFeedback) Final() string {
	switch f.Action {
	case FeedbackAccept:
		return f.Command
	case FeedbackEdit:
		return f.Edited
	default:
		return ""
	}
}
