package console

// Recorder is a Sink and Cues implementation that captures everything it is
// given, in delivery order. Used by the test harness and the serve mode.
type Recorder struct {
	lines []string
	cues  []string
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// PrintLine records a single line
func (r *Recorder) PrintLine(text string) {
	r.lines = append(r.lines, text)
}

// PrintBlock records each line of a block individually, in order
func (r *Recorder) PrintBlock(text string) {
	r.lines = append(r.lines, SplitBlock(text)...)
}

// PlayKey records a key cue
func (r *Recorder) PlayKey() {
	r.cues = append(r.cues, "key")
}

// PlayBeep records a beep cue
func (r *Recorder) PlayBeep() {
	r.cues = append(r.cues, "beep")
}

// PlayError records an error cue
func (r *Recorder) PlayError() {
	r.cues = append(r.cues, "error")
}

// Lines returns the recorded lines in delivery order
func (r *Recorder) Lines() []string {
	return r.lines
}

// Cues returns the recorded cue names in delivery order
func (r *Recorder) Cues() []string {
	return r.cues
}

// Reset discards everything recorded so far
func (r *Recorder) Reset() {
	r.lines = nil
	r.cues = nil
}
