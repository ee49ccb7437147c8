package engine

import (
	"fmt"
	"io"
	"strings"
)

// bindBuiltins installs the default command set every console ships with.
// Names follow the conventions game consoles have used for these for
// decades, so they are left camel-cased rather than Go-cased.
func (e *Engine) bindBuiltins() {
	// The command namespace is empty at this point, so registration
	// cannot fail.
	_ = e.BindRawCommand("echo", e.echoCommand, "echo the arguments back to the console")
	_ = e.BindRawCommand("help", e.helpCommand, "help [name] : describe a command or variable")
	_ = e.BindRawCommand("listCmd", e.listCmdCommand, "list all commands")
	_ = e.BindRawCommand("listCVars", e.listCVarsCommand, "list all variables")
	_ = e.BindRawCommand("runFile", e.runFileCommand, "runFile <path> : execute a console script")
}

func (e *Engine) echoCommand(sink io.Writer, args []string) error {
	fmt.Fprintln(sink, strings.Join(args, " "))
	return nil
}

func (e *Engine) helpCommand(sink io.Writer, args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintln(sink, "Enter a command name, or a variable name to read it, or 'name value' to set it.")
		fmt.Fprintln(sink, "Use listCmd to list commands and listCVars to list variables.")
		return nil
	case 1:
		name := args[0]
		if entry, ok := e.commands.Lookup(name); ok {
			fmt.Fprintf(sink, "%s - %s\n", name, helpOrDefault(entry.Help))
			return nil
		}
		if entry, ok := e.cvars.Lookup(name); ok {
			fmt.Fprintf(sink, "%s - %s\n", name, helpOrDefault(entry.Help))
			return nil
		}
		return fmt.Errorf("no help found for %s", name)
	default:
		return fmt.Errorf("usage: help [name]")
	}
}

func (e *Engine) listCmdCommand(sink io.Writer, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: listCmd")
	}
	for _, info := range e.commands.Enumerate() {
		fmt.Fprintf(sink, "%s - %s\n", info.Name, helpOrDefault(info.Help))
	}
	return nil
}

func (e *Engine) listCVarsCommand(sink io.Writer, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: listCVars")
	}
	for _, info := range e.cvars.Enumerate() {
		fmt.Fprintf(sink, "%s - %s\n", info.Name, helpOrDefault(info.Help))
	}
	return nil
}

func (e *Engine) runFileCommand(sink io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: runFile <path>")
	}
	return e.RunScript(args[0], sink)
}

func helpOrDefault(help string) string {
	if help == "" {
		return "(no help available)"
	}
	return help
}
