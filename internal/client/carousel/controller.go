// Package carousel keeps the state behind the card carousel: the fetched
// records, the index of the card on screen and the single expanded field.
//
// A Controller is owned by one event loop and is not safe for concurrent use.
// Navigation never fails; at the boundaries it is a no-op.
package carousel

import (
	"math"

	"github.com/dmitrijs2005/usercards/internal/client/models"
)

// ScrollCommand tells the view to bring card Index on screen.
type ScrollCommand struct {
	Index    int
	Animated bool
}

// Selection is the expanded (field, value) pair. The zero value means
// nothing is expanded.
type Selection struct {
	Field models.Field
	Value string
}

// Empty reports whether no field is expanded.
func (s Selection) Empty() bool {
	return s.Field == models.FieldNone
}

type Controller struct {
	records      []models.User
	currentIndex int
	selection    Selection
	fetchError   string
	loaded       bool

	observer func(Event)
}

type Option func(*Controller)

// WithObserver registers fn to be called after every state change.
func WithObserver(fn func(Event)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

func NewController(opts ...Option) *Controller {
	c := &Controller{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize replaces the records, moves to the first card and collapses any
// expanded field.
func (c *Controller) Initialize(records []models.User) {
	c.records = append([]models.User(nil), records...)
	c.currentIndex = 0
	c.selection = Selection{}
	c.fetchError = ""
	c.loaded = true
	c.notify(EventInitialized)
}

// ReportFetchFailure stores the user-facing message. Records stay empty.
func (c *Controller) ReportFetchFailure(message string) {
	c.fetchError = message
	c.loaded = true
	c.notify(EventFetchFailed)
}

// GoNext advances one card. ok is false on the last card.
func (c *Controller) GoNext() (cmd ScrollCommand, ok bool) {
	if !c.CanGoNext() {
		return ScrollCommand{}, false
	}
	c.currentIndex++
	c.notify(EventNavigated)
	return ScrollCommand{Index: c.currentIndex, Animated: true}, true
}

// GoPrevious moves back one card. ok is false on the first card.
func (c *Controller) GoPrevious() (cmd ScrollCommand, ok bool) {
	if !c.CanGoPrevious() {
		return ScrollCommand{}, false
	}
	c.currentIndex--
	c.notify(EventNavigated)
	return ScrollCommand{Index: c.currentIndex, Animated: true}, true
}

// OnGestureSettle syncs the index with where a drag came to rest. The view is
// already there, so no scroll command is produced. Out-of-range results are
// clamped to the available cards; a non-positive width is ignored.
func (c *Controller) OnGestureSettle(offset, viewportWidth float64) {
	if !(viewportWidth > 0) || math.IsNaN(offset) {
		return
	}

	idx := math.Floor(offset / viewportWidth)
	c.currentIndex = c.clamp(idx)
	c.notify(EventSettled)
}

// ToggleSelection collapses (field, value) if it is the expanded pair and
// expands it otherwise. Only one pair is ever expanded.
func (c *Controller) ToggleSelection(field models.Field, value string) {
	if c.selection.Field == field && c.selection.Value == value {
		c.selection = Selection{}
	} else {
		c.selection = Selection{Field: field, Value: value}
	}
	c.notify(EventToggled)
}

// IsExpanded reports whether the row (field, value) should render expanded.
func (c *Controller) IsExpanded(field models.Field, value string) bool {
	return !c.selection.Empty() && c.selection.Field == field && c.selection.Value == value
}

func (c *Controller) CanGoNext() bool {
	return c.currentIndex < len(c.records)-1
}

func (c *Controller) CanGoPrevious() bool {
	return c.currentIndex > 0
}

func (c *Controller) Records() []models.User {
	return c.records
}

func (c *Controller) Len() int {
	return len(c.records)
}

func (c *Controller) CurrentIndex() int {
	return c.currentIndex
}

// Current returns the record on screen.
func (c *Controller) Current() (models.User, bool) {
	if len(c.records) == 0 {
		return models.User{}, false
	}
	return c.records[c.currentIndex], true
}

func (c *Controller) Selection() Selection {
	return c.selection
}

// FetchError is the message stored by ReportFetchFailure, or "".
func (c *Controller) FetchError() string {
	return c.fetchError
}

// Loaded reports whether the record source has answered, either way.
func (c *Controller) Loaded() bool {
	return c.loaded
}

func (c *Controller) clamp(idx float64) int {
	last := len(c.records) - 1
	if last < 0 || idx < 0 {
		return 0
	}
	if idx > float64(last) {
		return last
	}
	return int(idx)
}

func (c *Controller) notify(kind EventKind) {
	if c.observer == nil {
		return
	}
	c.observer(Event{Kind: kind, Index: c.currentIndex, Selection: c.selection})
}
