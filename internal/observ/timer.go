package observ

import (
	"fmt"
	"io"
	"time"
)

// Phase records the duration of one step of a run.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer collects phases in the order they finish.
type Timer struct {
	now    func() time.Time
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{now: time.Now} }

// Measure runs fn as phase name. The phase is recorded even when fn fails.
func (t *Timer) Measure(name string, fn func() (note string, err error)) error {
	start := t.now()
	note, err := fn()
	t.phases = append(t.phases, Phase{Name: name, Dur: t.now().Sub(start), Note: note})
	return err
}

// Phases returns the recorded phases.
func (t *Timer) Phases() []Phase { return t.phases }

// Total is the sum of all phase durations.
func (t *Timer) Total() time.Duration {
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
	}
	return total
}

// WriteSummary prints one line per phase and a total, in milliseconds.
func (t *Timer) WriteSummary(w io.Writer) error {
	if len(t.phases) == 0 {
		return nil
	}
	for _, p := range t.phases {
		line := fmt.Sprintf("%-8s %7.2f ms", p.Name, toMillis(p.Dur))
		if p.Note != "" {
			line += "  (" + p.Note + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%-8s %7.2f ms\n", "total", toMillis(t.Total()))
	return err
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
