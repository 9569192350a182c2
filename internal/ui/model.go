// Package ui shows short-lived status messages at the bottom of the TUI.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/style"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// NotificationMsg carries the text to show.
type NotificationMsg string

type clearMsg struct {
	at time.Time
}

// Notifier holds the notification currently on screen.
type Notifier struct {
	text       string
	notifiedAt time.Time
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

func (n *Notifier) Text() string {
	return n.text
}

// Update handles NotificationMsg and its delayed clearing. A newer
// notification is not cleared by the timer of an older one.
func (n *Notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		n.text = string(msg)
		n.notifiedAt = time.Now()
		at := n.notifiedAt
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return clearMsg{at: at}
		})
	case clearMsg:
		if msg.at.Equal(n.notifiedAt) {
			n.text = ""
		}
	}

	return nil
}

// View appends the notification to the last line of content.
func (n *Notifier) View(content string) string {
	if n.text == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(n.text)
	return strings.Join(lines, "\n")
}
