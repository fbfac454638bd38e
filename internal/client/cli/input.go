package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"golang.org/x/term"
)

// termWidth is a test seam for the terminal size lookup.
var termWidth = func() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// readLines scans r one line per request on want and sends it on lines.
// Waiting for a request before each Scan keeps the goroutine from blocking on
// input after the loop has stopped listening. lines is closed on return.
func readLines(ctx context.Context, r io.Reader, want <-chan struct{}, lines chan<- string) error {
	defer close(lines)

	scanner := bufio.NewScanner(r)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-want:
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return nil
		}
	}
}
