//go:build !ebiten

package app

import "ca-player/internal/session"

// Run always fails in the headless build.
func Run(*session.Controller, Options) error {
	return ErrNoGUI
}
