package cli

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gomusiko/pkg/musiko"
)

// serveConfig is read from the environment; the serve command is meant
// to run unattended, so it does not depend on flags or the config file.
type serveConfig struct {
	Addr     string `env:"MUSIKO_ADDR" envDefault:":8080"`
	BoundMin int    `env:"MUSIKO_BOUND_MIN" envDefault:"0"`
	BoundMax int    `env:"MUSIKO_BOUND_MAX" envDefault:"127"`
	Limit    int    `env:"MUSIKO_LIMIT" envDefault:"100"`
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve relational queries over HTTP",
	Long: `Starts an HTTP server exposing the note, interval and chord relations
as JSON endpoints. Configured through the environment: MUSIKO_ADDR,
MUSIKO_BOUND_MIN, MUSIKO_BOUND_MAX, MUSIKO_LIMIT.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg serveConfig
		if err := env.Parse(&cfg); err != nil {
			return err
		}
		space, err := musiko.NewPitchSpace(musiko.Bound{Min: cfg.BoundMin, Max: cfg.BoundMax})
		if err != nil {
			return err
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		srv := newServer(musiko.NewTheory(space), cfg.Limit, logger)

		logger.Info("listening", "addr", cfg.Addr,
			"bound_min", cfg.BoundMin, "bound_max", cfg.BoundMax)
		return http.ListenAndServe(cfg.Addr, cors.Default().Handler(srv.router()))
	},
}
