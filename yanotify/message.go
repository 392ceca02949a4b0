// Package yanotify assembles, formats and delivers notifications. A Message
// carries severity, title, body and structured context; a Formatter renders
// it into one markup dialect using severity templates; the Service splits the
// rendered text, frames multi-part messages and drives the rate-limit retry
// loop around the transport.
//
// Example usage:
//
//	msg, err := yanotify.NewMessage(yanotify.SeverityError, "DB down", "primary unreachable")
//	if err != nil {
//	    return err
//	}
//
//	msg.WithContext("host", "db-1").WithContext("errorCode", "ECONN")
//
//	return service.Send(ctx, "alerts", msg)
package yanotify

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
)

// Severity ranks how urgent a notification is.
type Severity uint8

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	return s <= SeverityCritical
}

// Action is a link rendered under the notification.
type Action struct {
	Label string
	URL   string
}

// NewAction validates and creates an action link.
//
// Example usage:
//
//	action, err := yanotify.NewAction("Runbook", "https://wiki.internal/db-down")
func NewAction(label, url string) (Action, yaerrors.Error) {
	if strings.TrimSpace(label) == "" {
		return Action{}, yaerrors.FromString(http.StatusBadRequest, "action label cannot be empty")
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return Action{}, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("action url must be absolute, got %q", url),
		)
	}

	return Action{Label: label, URL: url}, nil
}

// Message is one notification. Construct it with NewMessage so the required
// fields are validated up front, then enrich it with the With* chainers.
type Message struct {
	Severity  Severity
	Title     string
	Body      string
	Timestamp time.Time
	Context   map[string]string
	Actions   []Action
}

// NewMessage validates and creates a message stamped with the current time.
//
// Example usage:
//
//	msg, err := yanotify.NewMessage(yanotify.SeverityWarning, "Disk filling up", "85% used on /var")
func NewMessage(severity Severity, title, body string) (*Message, yaerrors.Error) {
	if !severity.Valid() {
		return nil, yaerrors.FromString(
			http.StatusBadRequest,
			fmt.Sprintf("unknown severity: %d", severity),
		)
	}

	if strings.TrimSpace(title) == "" {
		return nil, yaerrors.FromString(http.StatusBadRequest, "message title cannot be empty")
	}

	if strings.TrimSpace(body) == "" {
		return nil, yaerrors.FromString(http.StatusBadRequest, "message body cannot be empty")
	}

	return &Message{
		Severity:  severity,
		Title:     title,
		Body:      body,
		Timestamp: time.Now(),
		Context:   make(map[string]string),
	}, nil
}

// WithTimestamp overrides the creation timestamp.
func (m *Message) WithTimestamp(t time.Time) *Message {
	m.Timestamp = t

	return m
}

// WithContext adds one context entry.
//
// Example usage:
//
//	msg.WithContext("host", "db-1").WithContext("region", "eu-1")
func (m *Message) WithContext(key, value string) *Message {
	if m.Context == nil {
		m.Context = make(map[string]string)
	}

	m.Context[key] = value

	return m
}

// WithContextMap adds every entry of the given map.
func (m *Message) WithContextMap(context map[string]string) *Message {
	for key, value := range context {
		m.WithContext(key, value)
	}

	return m
}

// WithActions appends action links. Build them with NewAction so they are
// validated.
func (m *Message) WithActions(actions ...Action) *Message {
	m.Actions = append(m.Actions, actions...)

	return m
}
