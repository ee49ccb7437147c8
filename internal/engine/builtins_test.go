package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quakeconsole/internal/output"
	"quakeconsole/internal/testutils"
	"quakeconsole/pkg/consoletypes"
)

func TestBuiltins_BoundByDefault(t *testing.T) {
	e := NewEngine()

	names := make([]string, 0)
	for _, info := range e.EnumerateCommands() {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"echo", "help", "listCmd", "listCVars", "runFile"}, names)

	bare := NewEngine(WithoutBuiltins())
	assert.Empty(t, bare.EnumerateCommands())
}

func TestBuiltins_Echo(t *testing.T) {
	e := NewEngine()
	sink := output.NewCaptureBuffer()

	outcome := e.Execute("echo hello console world", sink)
	assert.Equal(t, consoletypes.OutcomeCommandRan, outcome.Kind)
	assert.Equal(t, "hello console world\n", sink.String())

	sink.Reset()
	e.Execute("echo", sink)
	assert.Equal(t, "\n", sink.String())
}

func TestBuiltins_Help(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.BindCommand("spawn", func(n int) {}, "spawn n entities"))
	fov := 90.0
	require.NoError(t, e.BindCVar("fov", &fov, "field of view in degrees"))

	sink := output.NewCaptureBuffer()

	e.Execute("help", sink)
	assert.Contains(t, sink.String(), "listCmd")
	assert.Contains(t, sink.String(), "listCVars")

	sink.Reset()
	e.Execute("help spawn", sink)
	assert.Equal(t, "spawn - spawn n entities\n", sink.String())

	sink.Reset()
	e.Execute("help fov", sink)
	assert.Equal(t, "fov - field of view in degrees\n", sink.String())

	sink.Reset()
	outcome := e.Execute("help nothere", sink)
	assert.Equal(t, consoletypes.OutcomeCommandError, outcome.Kind)
	assert.Contains(t, sink.String(), "no help found for nothere")
}

func TestBuiltins_ListCmd(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.BindCommand("aardvark", func() {}, "first alphabetically"))

	sink := output.NewCaptureBuffer()
	e.Execute("listCmd", sink)

	lines := sink.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "aardvark - first alphabetically", lines[0], "listing is sorted")
	assert.Contains(t, sink.String(), "echo")
	assert.Contains(t, sink.String(), "runFile")
}

func TestBuiltins_ListCVars(t *testing.T) {
	e := NewEngine()
	volume := 0.8
	sensitivity := 2.5
	require.NoError(t, e.BindCVar("volume", &volume, "master volume"))
	require.NoError(t, e.BindCVar("sensitivity", &sensitivity, ""))

	sink := output.NewCaptureBuffer()
	e.Execute("listCVars", sink)

	lines := sink.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "sensitivity - (no help available)", lines[0])
	assert.Equal(t, "volume - master volume", lines[1])
}

func TestBuiltins_RunFile(t *testing.T) {
	e := NewEngine()
	x := 0
	require.NoError(t, e.BindCVar("x", &x, ""))

	script := testutils.WriteScript(t, "autoexec.cfg",
		"# startup script",
		"x 7",
		"",
		"echo loaded",
		"notacommand",
		"x",
	)

	sink := output.NewCaptureBuffer()
	outcome := e.Execute("runFile "+script, sink)

	// The run continues past the unknown identifier.
	assert.Equal(t, consoletypes.OutcomeCommandRan, outcome.Kind)
	assert.Equal(t, 7, x)
	testutils.RequireLine(t, sink.Lines(), "loaded")
	testutils.RequireLine(t, sink.Lines(), "unknown identifier: notacommand")
	testutils.RequireLine(t, sink.Lines(), "x = 7")

	// Script lines land in history alongside the runFile line itself.
	assert.Contains(t, e.History(), "x 7")
}

func TestBuiltins_RunFile_MissingFile(t *testing.T) {
	e := NewEngine()
	sink := output.NewCaptureBuffer()

	outcome := e.Execute("runFile /does/not/exist.cfg", sink)
	assert.Equal(t, consoletypes.OutcomeCommandError, outcome.Kind)
	assert.Contains(t, sink.String(), "[error]")
}

func TestBuiltins_RunFile_Usage(t *testing.T) {
	e := NewEngine()
	sink := output.NewCaptureBuffer()

	outcome := e.Execute("runFile", sink)
	assert.Equal(t, consoletypes.OutcomeCommandError, outcome.Kind)
	assert.Contains(t, sink.String(), "usage: runFile <path>")
}
