// internal/xosc/report.go
package xosc

import (
	"fmt"
	"strings"
)

// Severity classifies codec messages. Nothing in the codec aborts; even
// critical messages mean a fallback or omission was substituted.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Message is one collected codec warning.
type Message struct {
	Severity Severity
	Text     string
}

// Report collects the non-fatal problems of one encode or decode pass.
// It is attached to the success result so the front end can show an
// aggregated warning list.
type Report struct {
	Messages []Message
}

// Warnf records a warning-severity message.
func (r *Report) Warnf(format string, args ...any) {
	r.Messages = append(r.Messages, Message{
		Severity: SeverityWarning,
		Text:     fmt.Sprintf(format, args...),
	})
}

// Criticalf records a critical-severity message.
func (r *Report) Criticalf(format string, args ...any) {
	r.Messages = append(r.Messages, Message{
		Severity: SeverityCritical,
		Text:     fmt.Sprintf(format, args...),
	})
}

// HasMessages reports whether anything was collected.
func (r *Report) HasMessages() bool {
	return len(r.Messages) > 0
}

// Summary renders the aggregated list, one message per line.
func (r *Report) Summary() string {
	if len(r.Messages) == 0 {
		return ""
	}
	var b strings.Builder
	for i, m := range r.Messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(m.Severity))
		b.WriteString(": ")
		b.WriteString(m.Text)
	}
	return b.String()
}
