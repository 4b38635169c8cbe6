package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"nuros-switch/internal/config"
	"nuros-switch/internal/descriptor"
	"nuros-switch/internal/logger"
	"nuros-switch/internal/module"
	"nuros-switch/internal/switcher"
	"nuros-switch/internal/ui"
)

// Build metadata, overridden with -ldflags "-X nuros-switch/cmd.version=...".
var (
	version = "1.0.0"
	commit  = ""
)

// rootOptions are the global flags.
type rootOptions struct {
	listModules bool
	version     bool
	noColor     bool
	color       string
	configFile  string
	evaluator   string
	debug       bool
}

// app holds one invocation's streams and the values derived from configuration.
type app struct {
	stdout io.Writer
	stderr io.Writer
	opts   rootOptions

	cfg *config.Config
	out *ui.Output
	log *log.Logger
}

// Execute runs the command line and exits with its status.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes args and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		out:    ui.New(stdout, stderr, false),
		log:    logger.Discard(),
	}

	root := a.newRootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		a.report(err)
		return 1
	}
	return 0
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "switch [flags] <module> [action] [target]",
		Short:         "Alternatives management tool for NurOS",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          a.runRoot,
	}

	flags := root.Flags()
	flags.BoolVarP(&a.opts.listModules, "list-modules", "l", false, "List all available modules")
	flags.BoolVarP(&a.opts.version, "version", "V", false, "Show version information")
	flags.BoolVar(&a.opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&a.opts.color, "color", string(config.ColorAuto), "Color mode: auto, always or never")
	flags.StringVar(&a.opts.configFile, "config", "", "Read configuration from `file`")
	flags.StringVar(&a.opts.evaluator, "evaluator", string(descriptor.KindBash), "Descriptor evaluator: bash or virtual")
	flags.BoolVar(&a.opts.debug, "debug", false, "Enable debug logging")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	root.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := a.setup(c); err != nil {
			a.cfg = &config.Config{SystemModulesDir: config.DefaultSystemModulesDir}
		}
		a.out.Usage(a.usageInfo())
	})
	return root
}

// setup loads configuration and derives output, logger and color from it.
func (a *app) setup(c *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.opts.configFile,
		Flags:      c.Flags(),
	})
	if err != nil {
		return err
	}
	if a.opts.noColor {
		cfg.Color = config.ColorNever
	}
	a.cfg = cfg

	colored := ui.ShouldColor(cfg.Color, ui.IsTerminal(a.stdout), nil)
	a.out = ui.New(a.stdout, a.stderr, colored)
	a.log = logger.New(a.stderr, logger.Options{Debug: cfg.Debug, Color: colored})
	if cfg.File != "" {
		a.log.Debug("configuration loaded", "file", cfg.File)
	}
	return nil
}

func (a *app) runRoot(c *cobra.Command, args []string) error {
	if err := a.setup(c); err != nil {
		return err
	}

	if a.opts.version {
		a.out.Version(ui.VersionInfo{Version: version, Commit: commit})
		return nil
	}

	eval, err := descriptor.New(descriptor.Kind(a.cfg.Evaluator), descriptor.Options{
		Shell:   a.cfg.Shell,
		Timeout: a.cfg.EvalTimeout,
	})
	if err != nil {
		return err
	}

	ctx := c.Context()
	reg := module.NewScanner(a.log).Scan(a.cfg.UserModulesDir, a.cfg.SystemModulesDir)
	loader := module.NewLoader(eval, a.log)

	if a.opts.listModules {
		mods := reg.Modules()
		for _, m := range mods {
			loader.LoadField(ctx, m, descriptor.FieldDescription)
		}
		a.out.ModuleList(mods)
		return nil
	}

	if len(args) == 0 {
		a.out.Usage(a.usageInfo())
		return errUsageShown
	}

	engine := switcher.New(loader, module.NewResolver(eval, a.log), a.log)
	return a.runAction(ctx, reg, loader, engine, args)
}

func (a *app) usageInfo() ui.UsageInfo {
	return ui.UsageInfo{
		Prog:      "switch",
		SystemDir: a.cfg.SystemModulesDir,
		UserDir:   a.cfg.UserModulesDir,
	}
}

// errUsageShown ends the run with status 1 after the usage text was printed.
var errUsageShown = errors.New("usage shown")

// usageError wraps a command-line parsing error.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// report prints err and the hint that goes with it.
func (a *app) report(err error) {
	if errors.Is(err, errUsageShown) {
		return
	}
	a.out.Error("%s", err)

	var (
		usageErr   *usageError
		altErr     *switcher.AlternativeNotFoundError
		actionErr  *unknownActionError
		missingErr *missingTargetError
	)
	switch {
	case errors.As(err, &usageErr):
		a.out.Hint("Try 'switch --help' for more information.")
	case errors.Is(err, module.ErrModuleNotFound):
		a.out.Hint("\nUse 'switch --list-modules' to see available modules.")
	case errors.As(err, &altErr):
		a.out.Hint("Use 'switch %s list' to see available alternatives.", altErr.Module)
	case errors.Is(err, switcher.ErrInsufficientPermission):
		a.out.Hint("Try running with sudo.")
	case errors.As(err, &actionErr):
		a.out.Hint("Available actions: %s", actionNames)
	case errors.As(err, &missingErr):
		a.out.Hint("Usage: switch %s set <target>", missingErr.Module)
	}
}
