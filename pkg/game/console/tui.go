package console

import (
	"fmt"
	"io"
	"time"

	"github.com/gookit/color"

	"observernode/pkg/engine/terminal"
)

// TUI renders session output to a terminal with typewriter pacing. It is the
// only place that knows about colors, delays, or line wrapping; the core hands
// it plain strings. Output is written synchronously, so FIFO delivery follows
// from call order.
type TUI struct {
	out   io.Writer
	delay time.Duration

	colorOutput color.Style
	colorPrompt color.Style
	styled      bool
}

// NewTUI creates a terminal console writing to out, pausing delay between
// characters. A zero delay disables the typewriter effect.
func NewTUI(out io.Writer, delay time.Duration) *TUI {
	return &TUI{out: out, delay: delay}
}

// Init initializes the color styles. Without it all output is unstyled.
func (t *TUI) Init() {
	t.colorOutput = color.Style{color.FgGreen}
	t.colorPrompt = color.Style{color.FgGreen, color.OpBold}
	t.styled = true
}

// PrintLine types out a single line, wrapped to the terminal width
func (t *TUI) PrintLine(text string) {
	for _, line := range wrap(text, terminal.Width()) {
		t.typeLine(line)
	}
}

// PrintBlock types out each line of a block in order
func (t *TUI) PrintBlock(text string) {
	for _, line := range SplitBlock(text) {
		t.PrintLine(line)
	}
}

// Prompt writes the input prompt without a trailing newline
func (t *TUI) Prompt() {
	if t.styled {
		fmt.Fprint(t.out, t.colorPrompt.Sprint("> "))
		return
	}
	fmt.Fprint(t.out, "> ")
}

// PlayKey is a no-op: per-keystroke clicks are not worth a BEL each
func (t *TUI) PlayKey() {}

// PlayBeep rings the terminal bell
func (t *TUI) PlayBeep() {
	fmt.Fprint(t.out, "\a")
}

// PlayError rings the terminal bell
func (t *TUI) PlayError() {
	fmt.Fprint(t.out, "\a")
}

func (t *TUI) typeLine(line string) {
	if t.delay <= 0 {
		t.write(line)
		fmt.Fprintln(t.out)
		return
	}

	for _, r := range line {
		t.write(string(r))
		time.Sleep(t.delay)
	}
	fmt.Fprintln(t.out)
}

func (t *TUI) write(s string) {
	if t.styled {
		fmt.Fprint(t.out, t.colorOutput.Sprint(s))
		return
	}
	fmt.Fprint(t.out, s)
}

// wrap breaks a line into rune-width chunks no longer than width. It never
// returns an empty slice: an empty input yields one empty line.
func wrap(line string, width int) []string {
	if width <= 0 {
		return []string{line}
	}

	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}

	var wrapped []string
	for len(runes) > width {
		wrapped = append(wrapped, string(runes[:width]))
		runes = runes[width:]
	}
	return append(wrapped, string(runes))
}
