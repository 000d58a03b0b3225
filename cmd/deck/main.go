package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/vanderheijden86/slidedeck/pkg/config"
	"github.com/vanderheijden86/slidedeck/pkg/debug"
	"github.com/vanderheijden86/slidedeck/pkg/deck"
	"github.com/vanderheijden86/slidedeck/pkg/export"
	"github.com/vanderheijden86/slidedeck/pkg/metrics"
	"github.com/vanderheijden86/slidedeck/pkg/nav"
	"github.com/vanderheijden86/slidedeck/pkg/ui"
	"github.com/vanderheijden86/slidedeck/pkg/version"
	"github.com/vanderheijden86/slidedeck/pkg/watcher"
)

// builtinPrefix selects a bundled deck instead of a file, e.g. "builtin:impact".
const builtinPrefix = "builtin:"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type presentFlags struct {
	policy  string
	noMouse bool
	watch   bool
	start   int
	pick    bool
}

type app struct {
	cfgPath string
	cfg     config.Config
	present presentFlags
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "deck [file]",
		Short:         "Present a slide deck in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			metrics.LogSummary()
			debug.Sync()
		},
		RunE: a.runPresent,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default "+config.ConfigPath()+")")
	a.bindPresentFlags(root)

	present := &cobra.Command{
		Use:   "present [file]",
		Short: "Run the presenter (default command)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runPresent,
	}
	a.bindPresentFlags(present)

	root.AddCommand(present, a.exportCmd(), a.outlineCmd(), a.configCmd(), versionCmd())
	return root
}

func (a *app) bindPresentFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&a.present.policy, "policy", "", "boundary policy: wrap or clamp")
	f.BoolVar(&a.present.noMouse, "no-mouse", false, "disable clicks and drag gestures")
	f.BoolVar(&a.present.watch, "watch", false, "reload the deck when its file changes")
	f.IntVar(&a.present.start, "start", 1, "slide number to open at")
	f.BoolVar(&a.present.pick, "pick", false, "choose the start slide from a list")
}

func (a *app) loadConfig() error {
	var (
		cfg config.Config
		err error
	)
	if a.cfgPath != "" {
		cfg, err = config.LoadFrom(a.cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	a.cfg = cfg
	debug.Dump("config", a.cfg)
	return nil
}

// resolveDeck picks the deck to open: the argument, then the configured
// path, then the bundled default. The returned path is empty for bundled
// decks.
func (a *app) resolveDeck(args []string) (deck.Deck, string, error) {
	src := a.cfg.Deck.Path
	if len(args) > 0 {
		src = args[0]
	}
	switch {
	case src == "":
		d, err := deck.LoadBuiltin(deck.DefaultBuiltin)
		return d, "", err
	case strings.HasPrefix(src, builtinPrefix):
		d, err := deck.LoadBuiltin(strings.TrimPrefix(src, builtinPrefix))
		return d, "", err
	}
	abs, err := filepath.Abs(src)
	if err != nil {
		return deck.Deck{}, "", err
	}
	d, err := deck.Load(abs)
	return d, abs, err
}

func (a *app) runPresent(cmd *cobra.Command, args []string) error {
	d, path, err := a.resolveDeck(args)
	if err != nil {
		return err
	}

	policy := a.cfg.NavPolicy()
	if cmd.Flags().Changed("policy") {
		if policy, err = nav.ParsePolicy(a.present.policy); err != nil {
			return err
		}
	}

	start := a.present.start - 1
	if start < 0 || start >= d.Len() {
		return fmt.Errorf("--start %d out of range (deck has %d slides)", a.present.start, d.Len())
	}
	if a.present.pick {
		if start, err = pickStart(d, start); err != nil {
			return err
		}
	}

	mouse := a.cfg.UI.Mouse && !a.present.noMouse
	m := ui.New(d, ui.Options{
		Policy:      policy,
		Start:       start,
		Mouse:       mouse,
		CellWidthPx: a.cfg.UI.CellWidthPx,
		ShowNotes:   a.cfg.UI.ShowNotes,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)

	if path != "" && (a.present.watch || a.cfg.Deck.Watch) {
		w, err := watchDeck(cmd.Context(), path, p)
		if err != nil {
			debug.Logger().Warn("live reload unavailable", zap.String("path", path), zap.Error(err))
		} else {
			defer w.Stop()
		}
	}

	return runTUIProgram(p)
}

// watchDeck reloads path on change and hands the result to the program.
func watchDeck(ctx context.Context, path string, p *tea.Program) (*watcher.Watcher, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	w, err := watcher.New(path,
		watcher.WithOnChange(func() {
			stop := metrics.Timer(metrics.DeckReload)
			d, err := deck.Load(path)
			stop()
			if err != nil {
				debug.Logger().Warn("deck reload failed", zap.String("path", path), zap.Error(err))
			}
			p.Send(ui.DeckReloadedMsg{Deck: d, Err: err})
		}),
		watcher.WithOnError(func(err error) {
			debug.Logger().Warn("watcher error", zap.String("path", path), zap.Error(err))
			p.Send(ui.DeckReloadedMsg{Err: err})
		}),
	)
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	debug.Logger().Info("watching deck", zap.String("path", path), zap.Bool("polling", w.IsPolling()))
	return w, nil
}

// pickStart asks for the start slide. Without a terminal on stdin the
// current choice is kept.
func pickStart(d deck.Deck, start int) (int, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return start, nil
	}
	options := make([]huh.Option[int], 0, d.Len())
	for i, s := range d.Slides {
		options = append(options, huh.NewOption(fmt.Sprintf("%2d. %s", i+1, s.Headline()), i))
	}
	choice := start
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Start at slide").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return start, nil
		}
		return start, err
	}
	return choice, nil
}

func runTUIProgram(p *tea.Program) error {
	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set DECK_TUI_AUTOCLOSE_MS.
	if ms := autoCloseAfter(os.Getenv("DECK_TUI_AUTOCLOSE_MS")); ms > 0 {
		go func() {
			timer := time.NewTimer(ms)
			defer timer.Stop()

			select {
			case <-runDone:
				return
			case <-timer.C:
			}

			p.Quit()

			select {
			case <-runDone:
				return
			case <-time.After(2 * time.Second):
			}

			p.Kill()
		}()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}

func autoCloseAfter(v string) time.Duration {
	ms, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func (a *app) exportCmd() *cobra.Command {
	var dir, format string
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write every chart slide as an SVG or PNG image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := a.resolveDeck(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Export.Format
			}
			files, err := export.Charts(cmd.Context(), d, dir, format)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "slide %d: %s\n", f.SlideID, f.Path)
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no chart slides with data")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "charts", "output directory")
	cmd.Flags().StringVar(&format, "format", "svg", "image format: svg or png")
	return cmd
}

func (a *app) outlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline [file]",
		Short: "Print the deck as Markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := a.resolveDeck(args)
			if err != nil {
				return err
			}
			return export.Outline(cmd.OutOrStdout(), d)
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgPath
			if path == "" {
				path = config.ConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			var err error
			if a.cfgPath != "" {
				err = config.SaveTo(config.DefaultConfig(), a.cfgPath)
			} else {
				err = config.Save(config.DefaultConfig())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "deck %s\n", version.Version)
		},
	}
}
