// Package cli provides progress output for batch commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

// progressReporter prints one line per item of a batch, such as the files
// given to `tours validate`. It writes to stderr so stdout stays parseable.
type progressReporter struct {
	out     io.Writer
	total   int
	current int
}

type progressStep struct {
	out     io.Writer
	started time.Time
}

func newProgressReporter(out io.Writer, total int) *progressReporter {
	if !progressEnabled() {
		return nil
	}
	return &progressReporter{out: out, total: total}
}

// Start announces the next item. It returns nil when progress is disabled,
// and a nil step ignores Done and Fail.
func (r *progressReporter) Start(label string) *progressStep {
	if r == nil {
		return nil
	}
	r.current++
	fmt.Fprintf(r.out, "[%d/%d] %s... ", r.current, r.total, label)
	return &progressStep{out: r.out, started: time.Now()}
}

func (p *progressStep) Done(detail string) {
	if p == nil {
		return
	}
	if detail != "" {
		fmt.Fprintf(p.out, "ok, %s (%s)\n", detail, formatDuration(time.Since(p.started)))
		return
	}
	fmt.Fprintf(p.out, "ok (%s)\n", formatDuration(time.Since(p.started)))
}

func (p *progressStep) Fail(err error) {
	if p == nil {
		return
	}
	if err != nil {
		fmt.Fprintf(p.out, "failed: %v\n", err)
		return
	}
	fmt.Fprintln(p.out, "failed")
}

func progressEnabled() bool {
	if IsJSONOutput() || IsJSONLOutput() || noProgress {
		return false
	}
	if _, ok := os.LookupEnv("SHOWCASE_NO_PROGRESS"); ok {
		return false
	}
	return true
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(100 * time.Millisecond).String()
	}
}
