package kiosk

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"alafaq/internal/domain"
)

// TerminalSurface renders alerts and the success modal on a terminal. It
// is the kiosk's stand-in for the site's alert and modal mount points.
type TerminalSurface struct {
	mu           sync.Mutex
	out          io.Writer
	scrollLocked bool
}

func NewTerminalSurface(out io.Writer) *TerminalSurface {
	return &TerminalSurface{out: out}
}

func (s *TerminalSurface) ShowAlert(alert domain.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	icon := "✅"
	if alert.Level == domain.AlertError {
		icon = "⚠️"
	}
	fmt.Fprintf(s.out, "\n%s %s\n", icon, alert.Message)
}

// HideAlert is a no-op: printed terminal output cannot be retracted.
func (s *TerminalSurface) HideAlert(id string) {}

func (s *TerminalSurface) ShowModal(content domain.ModalContent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := strings.Repeat("=", 46)
	fmt.Fprintf(s.out, "\n%s\n  %s\n%s\n", line, content.Title, line)
	for _, field := range content.Fields {
		fmt.Fprintf(s.out, "  %s: %s\n", field.Label, field.Value)
	}
	fmt.Fprintln(s.out, line)
}

func (s *TerminalSurface) HideModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out)
}

func (s *TerminalSurface) SetScrollLock(locked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrollLocked = locked
}

// ScrollLocked reports whether the modal is holding the background.
func (s *TerminalSurface) ScrollLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrollLocked
}
