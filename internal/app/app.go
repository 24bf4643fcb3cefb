package app

import (
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/mserradell/clinica_backend/config"
	"github.com/mserradell/clinica_backend/internal/cli"
	"github.com/mserradell/clinica_backend/internal/clinic"
)

// CoreModule provides the clinic aggregate. It is the whole of the
// application state: built once at start, dropped at exit.
var CoreModule = fx.Module("core",
	fx.Provide(ProvideClinic),
)

// CLIModule provides the interactive menu frontend.
var CLIModule = fx.Module("cli",
	fx.Provide(ProvideMenu),
)

func ProvideClinic(log *slog.Logger) *clinic.Clinic {
	return clinic.New(log)
}

func ProvideMenu(c *clinic.Clinic, cfg *config.Config, log *slog.Logger) *cli.Menu {
	return cli.New(c, cfg, os.Stdin, os.Stdout, log)
}
