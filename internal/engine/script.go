package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// RunScript executes a console script file line by line against sink.
// Lines whose first non-blank character is '#' are comments. A failing
// line writes its diagnostic and the run continues, matching interactive
// behavior; only I/O problems abort the run.
func (e *Engine) RunScript(path string, sink io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		outcome := e.Execute(line, sink)
		if outcome.Failed() {
			e.log.Warn("Script line failed", "path", path, "line", lineNo, "outcome", outcome.Kind.String())
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}
