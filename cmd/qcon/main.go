// Package main provides the qcon CLI, a terminal front-end for the
// quakeconsole engine. It exists for development and for scripting the
// engine outside a game; embedding hosts construct an engine.Engine
// directly and drive it from their own event loop.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quakeconsole/internal/config"
	"quakeconsole/internal/engine"
	"quakeconsole/internal/logger"
	"quakeconsole/internal/output"
	"quakeconsole/internal/shell"
)

var (
	logLevel   string
	logFile    string
	configFile string
	version    = "0.1.0" // set at build time
)

// rootCmd starts the interactive console when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "qcon",
	Short: "qcon - interactive Quake-style console",
	Long: `qcon hosts the quakeconsole engine on a terminal: a command and
variable registry with history and tab completion, the same core a game
embeds behind its in-game console.`,
	RunE: runShell,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive console (default)",
	RunE:  runShell,
}

var batchCmd = &cobra.Command{
	Use:   "batch <script>",
	Short: "Execute a console script file and exit",
	Long: `Execute a console script file line by line against a demo engine.
Lines starting with '#' are comments; failing lines print their diagnostic
and the run continues, as it would interactively.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("qcon v%s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file [default: ./qcon.yaml]")
	rootCmd.PersistentFlags().Int("history-size", config.Defaults().HistorySize, "Command history capacity (0 disables history)")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("history-size", rootCmd.PersistentFlags().Lookup("history-size")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding history-size flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}

func setup() (config.Config, *engine.Engine, error) {
	cfg, err := config.Load(viper.GetViper(), configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return config.Config{}, nil, fmt.Errorf("configure logger: %w", err)
	}

	// The styled component logger writes to stderr; when logging goes to
	// a file, stick with the plain configured logger instead.
	engineLog := logger.Logger
	if cfg.LogFile == "" {
		engineLog = logger.NewStyledLogger("engine")
	}

	eng := engine.NewEngine(
		engine.WithHistorySize(cfg.HistorySize),
		engine.WithLogger(engineLog),
	)
	bindDemoEntries(eng)

	if cfg.InitScript != "" {
		sink := output.NewStyleWriter(os.Stdout)
		if err := eng.RunScript(cfg.InitScript, sink); err != nil {
			logger.Warn("Init script failed", "path", cfg.InitScript, "error", err)
		}
		_ = sink.Flush()
	}
	return cfg, eng, nil
}

func runShell(_ *cobra.Command, _ []string) error {
	cfg, eng, err := setup()
	if err != nil {
		return err
	}

	logger.Info("Starting console", "version", version, "history-size", cfg.HistorySize)
	fmt.Println("Enter 'help' for help, press TAB to use text completion, 'exit' to quit.")

	runner, err := shell.NewRunner(eng, cfg.Prompt, os.Stdout, cfg.HistorySize)
	if err != nil {
		return fmt.Errorf("start shell: %w", err)
	}
	return runner.Run()
}

func runBatch(_ *cobra.Command, args []string) error {
	cfg, eng, err := setup()
	if err != nil {
		return err
	}

	// Styled output goes to the terminal; with a log file configured, the
	// plain transcript is mirrored there as well.
	styled := output.NewStyleWriter(os.Stdout)
	sink := output.NewMultiSink(styled)
	if cfg.LogFile != "" {
		mirror, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("open transcript mirror: %w", err)
		}
		defer func() { _ = mirror.Close() }()
		sink.Attach(mirror)
	}

	if err := eng.RunScript(args[0], sink); err != nil {
		return err
	}
	return styled.Flush()
}

// bindDemoEntries populates the demo engine the CLI hosts. A real host
// binds its own commands and variables here instead.
func bindDemoEntries(eng *engine.Engine) {
	vars := struct {
		textScale float64
		volume    float64
		showFPS   bool
		player    string
	}{textScale: 0.6, volume: 1.0, player: "anonymous"}

	must := func(err error) {
		if err != nil {
			logger.Fatal("Failed to bind demo entry", "error", err)
		}
	}

	must(eng.BindCVar("consoleTextScale", &vars.textScale, "text scale for the console widget"))
	must(eng.BindCVar("volume", &vars.volume, "master volume"))
	must(eng.BindCVar("showFPS", &vars.showFPS, "toggle the FPS overlay"))
	must(eng.BindCVar("playerName", &vars.player, "name shown to other players"))
	must(eng.BindCommand("add", func(out io.Writer, a, b int) {
		fmt.Fprintln(out, a+b)
	}, "add two integers"))
	must(eng.BindCommand("history", func(out io.Writer) {
		for _, line := range eng.History() {
			fmt.Fprintln(out, line)
		}
	}, "print the command history"))
}
