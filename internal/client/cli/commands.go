package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/usercards/internal/client/carousel"
	"github.com/dmitrijs2005/usercards/internal/client/models"
)

var ErrNoCard = errors.New("no user on screen")

// Next shows the following card. On the last card it is a no-op.
func (a *App) Next(ctx context.Context) error {
	if cmd, ok := a.carousel.GoNext(); ok {
		a.scrollTo(ctx, cmd)
		return nil
	}
	printlnFn(a.out, "Already at the last user.")
	return nil
}

// Previous shows the preceding card. On the first card it is a no-op.
func (a *App) Previous(ctx context.Context) error {
	if cmd, ok := a.carousel.GoPrevious(); ok {
		a.scrollTo(ctx, cmd)
		return nil
	}
	printlnFn(a.out, "Already at the first user.")
	return nil
}

// Toggle expands or collapses the named row of the card on screen.
func (a *App) Toggle(ctx context.Context, name string) error {
	field, err := models.ParseField(name)
	if err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}
	user, ok := a.carousel.Current()
	if !ok {
		return ErrNoCard
	}
	value, _ := user.Value(field)
	a.carousel.ToggleSelection(field, value)
	return a.Show(ctx)
}

// Swipe reports that a drag settled at offset columns. The view is already
// where the drag left it, so the card is redrawn without a scroll.
func (a *App) Swipe(ctx context.Context, offset string) error {
	x, err := strconv.ParseFloat(offset, 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q", offset)
	}
	return a.settle(ctx, x)
}

// Goto swipes straight to the 1-based card position.
func (a *App) Goto(ctx context.Context, position string) error {
	n, err := strconv.Atoi(position)
	if err != nil {
		return fmt.Errorf("invalid position %q", position)
	}
	return a.settle(ctx, float64((n-1)*a.viewportWidth()))
}

func (a *App) settle(ctx context.Context, offset float64) error {
	if a.carousel.Len() == 0 {
		return ErrNoCard
	}
	width := a.viewportWidth()
	a.carousel.OnGestureSettle(offset, float64(width))
	a.log.Debug(ctx, "gesture settled", "offset", offset, "width", width, "index", a.carousel.CurrentIndex())
	return a.Show(ctx)
}

// Show draws the current card, or the fetch error, or a loading notice.
func (a *App) Show(ctx context.Context) error {
	renderScreen(a.out, a.carousel, a.viewportWidth())
	return nil
}

// List prints one line per loaded user, keyed by uid.
func (a *App) List(ctx context.Context) error {
	if a.carousel.Len() == 0 {
		return ErrNoCard
	}
	renderList(a.out, a.carousel)
	return nil
}

// scrollTo executes a scroll command emitted by the carousel. A terminal
// cannot animate, so the target card is simply drawn.
func (a *App) scrollTo(ctx context.Context, cmd carousel.ScrollCommand) {
	a.log.Debug(ctx, "scroll", "index", cmd.Index, "animated", cmd.Animated)
	_ = a.Show(ctx)
}
