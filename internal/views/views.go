// Package views holds the two fixed documents the gate serves. The markup
// lives in views.templ; run `templ generate` after editing it.
package views

const siteName = "The Midnight Café"

// LoginData is the dynamic part of the email form page.
type LoginData struct {
	Stylesheet string
	// Email is echoed into the input as submitted.
	Email string
	// Error is shown in a banner above the form when non-empty.
	Error string
}
