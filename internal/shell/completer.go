// Package shell provides the interactive terminal front-end for the
// console engine. It wires a readline loop, prefix autocompletion over the
// engine's registries, and styled diagnostics; the engine itself stays
// front-end agnostic.
package shell

import (
	"strings"

	"quakeconsole/internal/engine"
)

// completer implements readline.AutoCompleter with prefix matching over
// the engine's command and variable names. Completion only applies to the
// first word of the line; arguments are free-form.
type completer struct {
	engine *engine.Engine
}

func newCompleter(e *engine.Engine) *completer {
	return &completer{engine: e}
}

// Do analyzes the current input line and cursor position and returns the
// suffixes that would complete the word under the cursor.
func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])

	// Only the identifier position completes.
	if strings.ContainsAny(strings.TrimLeft(lineStr, " \t"), " \t") {
		return nil, 0
	}
	word := strings.TrimLeft(lineStr, " \t")

	var suggestions [][]rune
	for _, candidate := range c.candidates() {
		if strings.HasPrefix(candidate, word) {
			suggestions = append(suggestions, []rune(strings.TrimPrefix(candidate, word)))
		}
	}
	return suggestions, len(word)
}

// candidates returns all completable identifiers: commands first, then
// variables, each set already sorted by the registries.
func (c *completer) candidates() []string {
	cmds := c.engine.EnumerateCommands()
	cvars := c.engine.EnumerateCVars()

	names := make([]string, 0, len(cmds)+len(cvars))
	for _, info := range cmds {
		names = append(names, info.Name)
	}
	for _, info := range cvars {
		names = append(names, info.Name)
	}
	return names
}
