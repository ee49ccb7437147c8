package shell

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"quakeconsole/internal/engine"
	"quakeconsole/internal/logger"
	"quakeconsole/internal/output"
)

// Runner drives the interactive console loop on a terminal.
type Runner struct {
	engine *engine.Engine
	rl     *readline.Instance
	sink   *output.StyleWriter
	log    *log.Logger
}

// NewRunner creates a Runner reading from the terminal with prompt and
// writing styled output to out. historyLimit bounds readline's own recall
// buffer and normally mirrors the engine's history capacity.
func NewRunner(e *engine.Engine, prompt string, out io.Writer, historyLimit int) (*Runner, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		AutoComplete:    newCompleter(e),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    recallLimit(historyLimit),
	})
	if err != nil {
		return nil, err
	}

	return &Runner{
		engine: e,
		rl:     rl,
		sink:   output.NewStyleWriter(out),
		log:    logger.NewStyledLogger("shell"),
	}, nil
}

// recallLimit maps the engine's history capacity onto readline's, where 0
// means "use the default" rather than "disabled". A disabled engine
// history must disable terminal recall too.
func recallLimit(n int) int {
	if n <= 0 {
		return -1
	}
	return n
}

// Run processes lines until EOF, interrupt on an empty line, or an
// explicit exit/quit. Every submitted line goes through the engine; the
// front-end only intercepts the exit words, which a windowed console would
// not have.
func (r *Runner) Run() error {
	defer func() { _ = r.rl.Close() }()

	for {
		line, err := r.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "exit", "quit":
			return nil
		}

		outcome := r.engine.Execute(line, r.sink)
		if err := r.sink.Flush(); err != nil {
			r.log.Warn("Failed to flush console output", "error", err)
		}
		logger.Dispatch(r.log, outcome.Name, outcome.Kind.String())
	}
}
