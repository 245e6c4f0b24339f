// Package console is the terminal I/O collaborator: it receives the ordered
// output lines of a session and is responsible for how they reach the player.
// The core only ever talks to the Sink and Cues interfaces, so it stays
// synchronous and headless.
package console

import (
	"strings"
)

// Sink receives ordered lines of output. Lines produced by one command must
// be delivered in the sequence they were produced, before any line from a
// later command.
type Sink interface {
	// PrintLine delivers a single line of text
	PrintLine(text string)

	// PrintBlock delivers newline-delimited multi-line text as individual
	// lines, in order. CRLF line endings are normalized to LF.
	PrintBlock(text string)
}

// Cues receives advisory audio-cue signals emitted alongside output.
// Implementations may ignore any or all of them.
type Cues interface {
	PlayKey()
	PlayBeep()
	PlayError()
}

// SplitBlock splits multi-line text into individual lines, normalizing CRLF
// to LF first. Shared by every Sink implementation.
func SplitBlock(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// NopCues ignores every cue signal
type NopCues struct{}

func (NopCues) PlayKey()   {}
func (NopCues) PlayBeep()  {}
func (NopCues) PlayError() {}
