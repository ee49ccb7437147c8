package output

import (
	"bytes"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleWriter colorizes console diagnostics for terminal display by their
// severity prefix ("[error]", "[warning]", "[info]"). It buffers partial
// writes so styling is applied to whole lines. This is front-end glue:
// the engine writes plain text and never emits color itself.
type StyleWriter struct {
	w       io.Writer
	buf     bytes.Buffer
	enabled bool

	errorStyle lipgloss.Style
	warnStyle  lipgloss.Style
	infoStyle  lipgloss.Style
}

// NewStyleWriter wraps w. Styling is disabled automatically on terminals
// without color support.
func NewStyleWriter(w io.Writer) *StyleWriter {
	return &StyleWriter{
		w:          w,
		enabled:    lipgloss.ColorProfile() != termenv.Ascii,
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		warnStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		infoStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	}
}

// SetEnabled overrides automatic color detection.
func (s *StyleWriter) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Write implements io.Writer. Complete lines are styled and forwarded;
// a trailing partial line is held until the next write or Flush. On a
// downstream error the count reports how many bytes of p were forwarded,
// so callers can retry the rest; bytes held from earlier writes are not
// charged against p.
func (s *StyleWriter) Write(p []byte) (int, error) {
	held := s.buf.Len()
	s.buf.Write(p)
	forwarded := 0
	for {
		line, err := s.buf.ReadString('\n')
		if err != nil {
			// Partial line: keep it buffered.
			s.buf.Reset()
			s.buf.WriteString(line)
			break
		}
		if _, werr := io.WriteString(s.w, s.styleLine(strings.TrimSuffix(line, "\n"))+"\n"); werr != nil {
			s.buf.Reset()
			consumed := forwarded - held
			if consumed < 0 {
				consumed = 0
			}
			return consumed, werr
		}
		forwarded += len(line)
	}
	return len(p), nil
}

// Flush writes any buffered partial line.
func (s *StyleWriter) Flush() error {
	if s.buf.Len() == 0 {
		return nil
	}
	line := s.buf.String()
	s.buf.Reset()
	_, err := io.WriteString(s.w, s.styleLine(line))
	return err
}

func (s *StyleWriter) styleLine(line string) string {
	if !s.enabled {
		return line
	}
	switch {
	case strings.HasPrefix(line, "[error]"):
		return s.errorStyle.Render(line)
	case strings.HasPrefix(line, "[warning]"):
		return s.warnStyle.Render(line)
	case strings.HasPrefix(line, "[info]"):
		return s.infoStyle.Render(line)
	}
	return line
}
