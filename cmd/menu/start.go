package menu

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/mserradell/clinica_backend/config"
	"github.com/mserradell/clinica_backend/internal/app"
	"github.com/mserradell/clinica_backend/internal/cli"
	"github.com/mserradell/clinica_backend/pkg/logs"
)

func NewStartCommand() *cobra.Command {
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the interactive clinic menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			// Set up structured logger before fx starts so all logs use it.
			logger := logs.New(cfg)
			slog.SetDefault(logger)

			fxApp := fx.New(
				fx.Supply(cfg, logger),
				app.CoreModule,
				app.CLIModule,
				fx.Invoke(runMenu),
				fx.StopTimeout(shutdownTimeout),
				fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
			)

			fxApp.Run()
			return nil
		},
	}

	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "Maximum time to wait for graceful shutdown")

	return cmd
}

// runMenu drives the menu loop on its own goroutine and stops the fx
// app once the user quits or input ends.
func runMenu(lc fx.Lifecycle, sh fx.Shutdowner, m *cli.Menu, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := m.Run(); err != nil {
					log.Error("menú finalizado con error", "error", err)
				}
				_ = sh.Shutdown()
			}()
			return nil
		},
	})
}
