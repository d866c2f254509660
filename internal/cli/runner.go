package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/goods/internal/config"
	"github.com/Makepad-fr/goods/internal/logging"
	"github.com/Makepad-fr/goods/internal/store/seed"
	"github.com/Makepad-fr/goods/internal/tui"
	"github.com/Makepad-fr/goods/internal/ui"
)

// Version is set during build with -ldflags.
var Version = "dev"

// runTUI is swapped out in tests.
var runTUI = tui.Run

type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// Run dispatches the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string) int {
	root := newRootCmd(ctx)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(root.ErrOrStderr(), root.UsageString())
		return 2
	}
	return 1
}

func newRootCmd(ctx context.Context) *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "goods",
		Short: "Keep a list of named, priced items",
		Long: `goods - a tiny priced-item list

Keys:
  a / +        add an item
  e / enter    edit the selected item
  d / x        remove the selected item (asks first)
  y            copy the selected item
  /            filter
  q            quit

Items live in memory only; --seed preloads some from a YAML or JSON file.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{errors.Errorf("unknown subcommand: %s", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := config.New(cfgPath)
			for key, flag := range map[string]string{
				"ui.theme":    "theme",
				"ui.currency": "currency",
				"ui.no_color": "no-color",
				"seed.path":   "seed",
				"log.path":    "log-file",
			} {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return errors.Wrapf(err, "failed to bind flag %s", flag)
				}
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return start(ctx, cfg)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := root.Flags()
	f.StringVar(&cfgPath, "config", "", "config file (default $GOODS_CONFIG or ~/.config/goods/config.*)")
	f.String("theme", "", "color theme: classic, neon or mono")
	f.String("currency", "", "symbol shown before prices")
	f.Bool("no-color", false, "disable colors")
	f.String("seed", "", "YAML or JSON file of items to start with")
	f.String("log-file", "", "append logs to this file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			ui.OK("goods " + Version)
		},
	})
	return root
}

func start(ctx context.Context, cfg config.Config) error {
	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorForcing(false, cfg.UI.NoColor)

	lgr, f, err := logging.Open(cfg.Log.Path)
	if err != nil {
		return err
	}
	if f != nil {
		defer f.Close()
	}

	var entries []seed.Entry
	if cfg.Seed.Path != "" {
		if entries, err = seed.Load(cfg.Seed.Path); err != nil {
			lgr.Error(ctx, "failed to load seed", err, "path", cfg.Seed.Path)
			return err
		}
	}

	lgr.Info(ctx, "starting", "theme", cfg.UI.Theme, "seeded", len(entries))
	err = runTUI(ctx, tui.Options{
		Title:        cfg.UI.Title,
		Currency:     cfg.UI.Currency,
		DefaultPrice: cfg.Editor.DefaultPrice,
		Seed:         entries,
		Logger:       lgr,
	})
	if err != nil {
		lgr.Error(ctx, "program failed", err)
		return err
	}
	lgr.Info(ctx, "stopped")
	return nil
}
