// Package timing measures the stages of a graphsh command.
package timing

import (
	"fmt"
	"strings"
	"time"
)

// Stage is the time spent between two marks
type Stage struct {
	Label    string
	Duration time.Duration
}

// Timer records named stages in order. It is not safe for concurrent use.
type Timer struct {
	now    func() time.Time
	start  time.Time
	last   time.Time
	stages []Stage
}

// NewTimer creates a timer started now
func NewTimer() *Timer {
	return newTimer(time.Now)
}

func newTimer(now func() time.Time) *Timer {
	start := now()
	return &Timer{now: now, start: start, last: start}
}

// Mark closes the current stage under label and returns its duration
func (t *Timer) Mark(label string) time.Duration {
	at := t.now()
	d := at.Sub(t.last)
	t.last = at
	t.stages = append(t.stages, Stage{Label: label, Duration: d})
	return d
}

// Stages returns the recorded stages in order
func (t *Timer) Stages() []Stage {
	return t.stages
}

// Elapsed returns the total time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Summary formats the total and every stage in milliseconds,
// e.g. "Total: 1.500ms (load: 1.000ms, build: 0.500ms)"
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %s", ms(t.Elapsed()))

	if len(t.stages) > 0 {
		b.WriteString(" (")
		for i, s := range t.stages {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", s.Label, ms(s.Duration))
		}
		b.WriteString(")")
	}

	return b.String()
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000.0)
}
