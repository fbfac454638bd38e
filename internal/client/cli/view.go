package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/usercards/internal/client/carousel"
	"github.com/dmitrijs2005/usercards/internal/client/models"
)

const maxCardWidth = 60

const (
	chevronCollapsed = ">"
	chevronExpanded  = "v"
)

// renderScreen draws whatever the carousel currently warrants.
func renderScreen(w io.Writer, c *carousel.Controller, width int) {
	switch {
	case c.FetchError() != "" && c.Len() == 0:
		fmt.Fprintln(w, c.FetchError())
	case !c.Loaded():
		fmt.Fprintln(w, "Loading users...")
	case c.Len() == 0:
		fmt.Fprintln(w, "No users to show.")
	default:
		renderCard(w, c, width)
	}
}

func renderCard(w io.Writer, c *carousel.Controller, width int) {
	user, ok := c.Current()
	if !ok {
		return
	}

	width = min(max(width, 30), maxCardWidth)
	rule := strings.Repeat("─", width)
	position := fmt.Sprintf("%d/%d", c.CurrentIndex()+1, c.Len())

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, padBetween(" "+user.FullName(), position+" ", width))
	fmt.Fprintf(w, " avatar: %s\n", user.Avatar)
	fmt.Fprintln(w)

	for i, field := range models.Fields {
		value, _ := user.Value(field)
		chevron := chevronCollapsed
		if c.IsExpanded(field, value) {
			chevron = chevronExpanded
		}
		fmt.Fprintf(w, " %s %d. %s\n", chevron, i+1, field)
		if chevron == chevronExpanded {
			fmt.Fprintf(w, "      %s\n", value)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, padBetween(" "+button("< Previous", c.CanGoPrevious()), button("Next >", c.CanGoNext())+" ", width))
	fmt.Fprintln(w, rule)
}

func renderList(w io.Writer, c *carousel.Controller) {
	for i, u := range c.Records() {
		marker := " "
		if i == c.CurrentIndex() {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %3d  %s  %s\n", marker, i+1, u.UID, u.FullName())
	}
}

// button renders a navigation control; disabled ones are shown without brackets.
func button(label string, enabled bool) string {
	if enabled {
		return "[" + label + "]"
	}
	return " " + strings.Repeat("·", len([]rune(label))) + " "
}

func padBetween(left, right string, width int) string {
	gap := width - len([]rune(left)) - len([]rune(right))
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
