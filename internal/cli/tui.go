package cli

import (
	"context"

	"github.com/idilsaglam/notes/internal/app"
	"github.com/idilsaglam/notes/internal/tui"
)

// runTUI owns the terminal, so logs always go to the log file.
func runTUI(ctx context.Context, s *session) error {
	b, log, done, err := s.open(false)
	if err != nil {
		return err
	}
	defer done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes, err := b.Watch(ctx)
	if err != nil {
		log.WithError(err).Warn("watching notes file failed, external edits will not show up")
	}

	ctrl := app.New(ctx, b, log)
	log.WithField("mode", b.Mode).Info("starting notes UI")
	return tui.Run(ctx, ctrl, tui.Options{Mode: string(b.Mode), Watch: changes})
}
