package docconf

import (
	"context"
	"errors"
	"log/slog"

	"github.com/krachkiste/doctools/internal/logfields"
)

// Event names a point in the documentation build at which hooks run.
type Event string

// EventBuilderInited fires once the settings are assembled, before anything is rendered.
const EventBuilderInited Event = "builder-inited"

// Hook is a callback connected to an Event.
type Hook func(ctx context.Context, app *App) error

// App is the build-time view handed to hooks: the assembled settings and resolved paths.
type App struct {
	Settings *Settings
	Paths    Paths

	hooks map[Event][]Hook
}

// NewApp creates an App without any connected hooks.
func NewApp(settings *Settings, paths Paths) *App {
	return &App{
		Settings: settings,
		Paths:    paths,
		hooks:    make(map[Event][]Hook),
	}
}

// Connect registers hook for event. Hooks run in registration order.
func (a *App) Connect(event Event, hook Hook) {
	a.hooks[event] = append(a.hooks[event], hook)
}

// Emit runs every hook connected to event. All hooks run even if one fails; the
// failures are joined.
func (a *App) Emit(ctx context.Context, event Event) error {
	hooks := a.hooks[event]
	slog.Debug("Emitting event", logfields.Event(string(event)), slog.Int("hooks", len(hooks)))

	var errs []error
	for _, hook := range hooks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := hook(ctx, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Setup connects the doctools hooks to app.
func Setup(app *App, doxygen *DoxygenGenerator) {
	app.Connect(EventBuilderInited, doxygen.Hook)
}
