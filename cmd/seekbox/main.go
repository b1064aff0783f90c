package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"seekbox/internal/config"
	"seekbox/internal/debug"
	"seekbox/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}
	sourceKindFlag := flag.String("source", config.GetString(config.KeySourceKind), "Catalog store (memory, sqlite, index)")
	sourcePathFlag := flag.String("path", config.GetString(config.KeySourcePath), "JSON items file (memory, index) or SQLite database")
	sourceTableFlag := flag.String("table", config.GetString(config.KeySourceTable), "SQLite table holding id, name, description")
	latencyFlag := flag.Duration("latency", config.GetDuration(config.KeySourceLatency), "Simulated lookup latency upper bound (e.g. 300ms)")
	recoverFlag := flag.String("recover", config.GetString(config.KeyPickerRecover), "What unmatched text commits (off, verbatim, nearest)")
	placeholderFlag := flag.String("placeholder", config.GetString(config.KeyPickerPlaceholder), "Text shown while nothing is picked")
	themeFlag := flag.String("theme", config.GetString(config.KeyTheme), "Color theme")
	previewFormatFlag := flag.String("preview-format", config.GetString(config.KeyPreviewFormat), "Preview markdown style (auto, rich, light, plain)")
	debugFlag := flag.Bool("debug", config.GetBool(config.KeyDebug), "Write a debug log to ~/.seekbox/debug.log")
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	flag.Parse()

	if *versionFlag {
		printVersion(os.Stdout)
		return
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		sourceKind:    sourceKindFlag,
		sourcePath:    sourcePathFlag,
		sourceTable:   sourceTableFlag,
		latency:       latencyFlag,
		recover:       recoverFlag,
		placeholder:   placeholderFlag,
		theme:         themeFlag,
		previewFormat: previewFormatFlag,
		debug:         debugFlag,
	}, visited)

	if err := config.ApplyOverrides(runtime.overrides()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := debug.Init(runtime.debug); err != nil {
		fmt.Fprintf(os.Stderr, "warning: debug log disabled: %v\n", err)
	}
	defer debug.Close()
	announceDebugLog(os.Stderr)

	if runtime.theme != "" && !theme.SetTheme(runtime.theme) {
		fmt.Fprintf(os.Stderr, "warning: unknown theme %q (available: %s)\n", runtime.theme, strings.Join(theme.Available(), ", "))
	}

	value, err := runProgram(runtime, newPickerApp, newProgram)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printResult(os.Stdout, value)
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*pickerApp) programRunner

// programOptions reports all mouse motion so hovering a menu row highlights
// it without a button held.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
}

func newProgram(app *pickerApp) programRunner {
	return tea.NewProgram(app, programOptions()...)
}

// runProgram builds the app, runs it and returns the committed value, if any.
func runProgram(runtime runtimeOptions, builder func(runtimeOptions) (*pickerApp, error), factory programFactory) (string, error) {
	app, err := builder(runtime)
	if err != nil {
		return "", fmt.Errorf("initialize picker: %w", err)
	}
	defer app.Close()

	if factory == nil {
		return "", errors.New("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return "", errors.New("program is nil")
	}
	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("run UI: %w", err)
	}
	if done, ok := final.(*pickerApp); ok && done != nil {
		app = done
	}
	return app.Result(), nil
}

// announceDebugLog tells the user where the debug log goes, if it is on.
func announceDebugLog(w io.Writer) {
	if !debug.Enabled() {
		return
	}
	path, err := debug.GetLogPath()
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Debug log: %s\n", path)
}

func printResult(w io.Writer, value string) {
	if value == "" {
		return
	}
	_, _ = fmt.Fprintln(w, value)
}

type runtimeFlags struct {
	sourceKind    *string
	sourcePath    *string
	sourceTable   *string
	latency       *time.Duration
	recover       *string
	placeholder   *string
	theme         *string
	previewFormat *string
	debug         *bool
}

type runtimeOptions struct {
	sourceKind      string
	sourcePath      string
	sourceTable     string
	sourceLimit     int
	latency         time.Duration
	cacheSize       int
	lookupTimeout   time.Duration
	width           int
	maxVisible      int
	placeholder     string
	recover         string
	recoverDistance int
	theme           string
	previewFormat   string
	debug           bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	stringOption := func(key, flagName string, flagVal *string) string {
		v := strings.TrimSpace(config.GetString(key))
		if flagWasExplicitlySet(flagName, visited) && flagVal != nil {
			v = strings.TrimSpace(*flagVal)
		}
		return v
	}

	latency := config.GetDuration(config.KeySourceLatency)
	if flagWasExplicitlySet("latency", visited) && flags.latency != nil {
		latency = *flags.latency
	}
	if latency < 0 {
		latency = 0
	}

	debugEnabled := config.GetBool(config.KeyDebug)
	if flagWasExplicitlySet("debug", visited) && flags.debug != nil {
		debugEnabled = *flags.debug
	}

	return runtimeOptions{
		sourceKind:      strings.ToLower(stringOption(config.KeySourceKind, "source", flags.sourceKind)),
		sourcePath:      stringOption(config.KeySourcePath, "path", flags.sourcePath),
		sourceTable:     stringOption(config.KeySourceTable, "table", flags.sourceTable),
		sourceLimit:     config.GetInt(config.KeySourceLimit),
		latency:         latency,
		cacheSize:       config.GetInt(config.KeyCacheSize),
		lookupTimeout:   config.GetDuration(config.KeyLookupTimeout),
		width:           config.GetInt(config.KeyPickerWidth),
		maxVisible:      config.GetInt(config.KeyPickerMaxVisible),
		placeholder:     stringOption(config.KeyPickerPlaceholder, "placeholder", flags.placeholder),
		recover:         strings.ToLower(stringOption(config.KeyPickerRecover, "recover", flags.recover)),
		recoverDistance: config.GetInt(config.KeyPickerRecoverDistance),
		theme:           stringOption(config.KeyTheme, "theme", flags.theme),
		previewFormat:   stringOption(config.KeyPreviewFormat, "preview-format", flags.previewFormat),
		debug:           debugEnabled,
	}
}

// overrides feeds the resolved settings back into config so Validate sees
// what the flags chose.
func (o runtimeOptions) overrides() map[string]any {
	return map[string]any{
		config.KeySourceKind:        o.sourceKind,
		config.KeySourcePath:        o.sourcePath,
		config.KeySourceTable:       o.sourceTable,
		config.KeySourceLatency:     o.latency,
		config.KeyPickerRecover:     o.recover,
		config.KeyPickerPlaceholder: o.placeholder,
		config.KeyTheme:             o.theme,
		config.KeyPreviewFormat:     o.previewFormat,
		config.KeyDebug:             o.debug,
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}
