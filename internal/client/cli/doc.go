// Package cli provides the interactive usercards terminal client.
//
// It fetches one batch of user records when it starts, shows them one card
// at a time and lets the viewer page through them and expand a single field
// of the card on screen. Typical flow: start, wait for "Loading users...",
// then use next/prev/swipe to move and toggle <field> to reveal a value.
//
// All carousel state changes happen on the goroutine running App.Run; the
// fetch and the input reader only hand results to it over channels.
package cli
