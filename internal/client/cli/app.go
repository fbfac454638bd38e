package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/usercards/internal/client/carousel"
	"github.com/dmitrijs2005/usercards/internal/client/config"
	"github.com/dmitrijs2005/usercards/internal/client/source"
	"github.com/dmitrijs2005/usercards/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	source   source.Source
	carousel *carousel.Controller
	reader   io.Reader
	out      io.Writer
}

func NewApp(c *config.Config, log logging.Logger, src source.Source) *App {
	a := &App{
		config: c,
		log:    log.With("component", "cli"),
		source: src,
		reader: os.Stdin,
		out:    os.Stdout,
	}
	a.carousel = carousel.NewController(carousel.WithObserver(a.logEvent))
	return a
}

// Run mounts the screen: it starts the single fetch, waits for its outcome,
// then serves commands until the user quits, input ends or ctx is cancelled.
func (a *App) Run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	fetched := make(chan source.Result, 1)
	want := make(chan struct{}, 1)
	lines := make(chan string)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := a.source.Fetch(gctx)
		fetched <- source.Result{Users: users, Err: err}
		return nil
	})
	g.Go(func() error {
		return readLines(gctx, a.reader, want, lines)
	})

	a.log.Info(ctx, "session started", "source", a.config.SourceURL, "batch_size", a.config.BatchSize)
	printlnFn(a.out, "Welcome to usercards (type 'help' for commands)")
	printlnFn(a.out, "Loading users...")

	a.loop(ctx, fetched, want, lines)
	cancel()

	if parent.Err() != nil {
		// A reader blocked on a terminal read cannot be interrupted.
		a.log.Info(parent, "session interrupted")
		return nil
	}
	if err := g.Wait(); err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return fmt.Errorf("read input: %w", err)
	}
	a.log.Info(ctx, "session ended")
	return nil
}

// loop is the only place carousel state is mutated.
func (a *App) loop(ctx context.Context, fetched <-chan source.Result, want chan<- struct{}, lines <-chan string) {
	select {
	case <-ctx.Done():
		return
	case r := <-fetched:
		r.Apply(ctx, a.carousel, a.log)
		_ = a.Show(ctx)
	}

	for {
		a.prompt()
		want <- struct{}{}

		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				printlnFn(a.out)
				return
			}
			if quit := dispatch(ctx, a, line, a.out); quit {
				return
			}
		}
	}
}

func (a *App) prompt() {
	fmt.Fprintf(a.out, "cards %s> ", a.status())
}

func (a *App) status() string {
	c := a.carousel
	switch {
	case c.FetchError() != "":
		return "(error)"
	case c.Len() == 0:
		return "(empty)"
	}
	return fmt.Sprintf("(%d/%d)", c.CurrentIndex()+1, c.Len())
}

func (a *App) logEvent(e carousel.Event) {
	a.log.Debug(context.Background(), "carousel changed",
		"event", string(e.Kind),
		"index", e.Index,
		"selected", e.Selection.Field.String(),
	)
}

// viewportWidth is the terminal width, or the configured fallback when
// stdout is not a terminal.
func (a *App) viewportWidth() int {
	if w, ok := termWidth(); ok {
		return w
	}
	if a.config.ViewportWidth > 0 {
		return a.config.ViewportWidth
	}
	return 80
}
