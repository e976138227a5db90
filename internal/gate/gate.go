// Package gate decides whether a visitor sees the email form or the menu.
//
// The only state is whether the marker record exists. A valid submission
// writes the record and closes the gate for the rest of that request.
package gate

import (
	"strings"

	"midnightcafe/internal/utils"
)

// Messages shown to the visitor.
const (
	MsgInvalidEmail = "Please enter a valid email address."
	MsgSaveFailed   = "Error saving email. Please try again."
)

// trimSet is what is stripped from both ends of a submission. Unicode spaces
// such as NBSP are kept, so they fail validation.
const trimSet = " \t\n\r\x00\x0b"

// Store is the marker record the gate reads and writes.
type Store interface {
	Exists() bool
	Save(value string) error
}

// State is the outcome of one request.
type State struct {
	// Open means the email form is shown.
	Open bool
	// Echo is the raw submitted value to put back into the form.
	Echo string
	// Err is a *utils.CustomError when the submission was refused.
	Err error
}

// ErrorMessage returns the banner text for s, or "".
func (s State) ErrorMessage() string {
	return utils.UserMessage(s.Err)
}

// Gate evaluates requests against a marker Store.
type Gate struct {
	store  Store
	logger *utils.Logger
}

// New creates a Gate. A nil logger discards output.
func New(store Store, logger *utils.Logger) *Gate {
	if logger == nil {
		logger = utils.Discard()
	}
	return &Gate{store: store, logger: logger}
}

// Current returns the gate state without a submission.
func (g *Gate) Current() State {
	return State{Open: !g.store.Exists()}
}

// Submit validates raw and, when valid, persists it. A refused submission
// always leaves the form open so the visitor can see the error.
func (g *Gate) Submit(raw string) State {
	email := strings.Trim(raw, trimSet)
	if !ValidEmail(email) {
		g.logger.Warnf("rejected email submission (%d bytes)", len(raw))
		return State{
			Open: true,
			Echo: raw,
			Err:  utils.New(utils.CodeInvalidEmail, MsgInvalidEmail),
		}
	}

	if err := g.store.Save(email); err != nil {
		g.logger.Errorf("save email: %v", err)
		return State{
			Open: true,
			Echo: raw,
			Err:  utils.Wrap(utils.CodeSaveFailed, MsgSaveFailed, err),
		}
	}

	g.logger.Info("email saved, gate closed")
	return State{Open: false}
}
