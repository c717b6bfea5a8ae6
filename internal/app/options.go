package app

import (
	"errors"
	"log/slog"

	"ca-player/internal/ui"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("window support requires building with the 'ebiten' tag")

// Options configures the window host.
type Options struct {
	Title   string
	Theme   ui.Theme
	ShowFPS bool
	Logger  *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "ca-player"
	}
	if o.Theme == (ui.Theme{}) {
		o.Theme = ui.DefaultTheme()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
