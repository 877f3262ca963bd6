// Package panel implements the bot connection panel: the per-mount view state,
// the connect action, the static dashboard catalogs, and page rendering.
package panel

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyToken is returned by AttemptConnect when the token is blank.
var ErrEmptyToken = errors.New("bot token is empty")

// State is the complete, serializable state of one panel view.
type State struct {
	BotToken    string `json:"bot_token"`
	IsConnected bool   `json:"is_connected"`
}

// View owns the state of a single mounted panel. It is not safe for
// concurrent use; the Registry serializes access per view.
type View struct {
	state State
}

// NewView returns a view in its initial state: empty token, disconnected.
func NewView() *View {
	return &View{}
}

// SetToken replaces the bound token value, as the input field does on every keystroke.
func (v *View) SetToken(token string) {
	v.state.BotToken = token
}

// AttemptConnect flips the view into connected mode if a token was entered.
// A blank or whitespace-only token leaves the state untouched and returns
// ErrEmptyToken together with the error notification to show.
func (v *View) AttemptConnect() (Notification, error) {
	if strings.TrimFunc(v.state.BotToken, isBlankRune) == "" {
		return emptyTokenNotification, ErrEmptyToken
	}

	v.state.IsConnected = true
	return connectedNotification, nil
}

// State returns a copy of the current view state.
func (v *View) State() State {
	return v.state
}

// Connected reports whether the view renders the dashboard.
func (v *View) Connected() bool {
	return v.state.IsConnected
}

// isBlankRune reports whether a browser's String.prototype.trim strips r.
// NEL (U+0085) is kept.
func isBlankRune(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
