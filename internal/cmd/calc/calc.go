// Package calc parses calc service flags and selects stdio or HTTP transport.
package calc

import (
	"context"
	"flag"

	"github.com/louisbranch/possibility.space/internal/platform/cmd"
	"github.com/louisbranch/possibility.space/internal/services/calc/service"
)

// Config holds calc command configuration.
type Config struct {
	HTTPAddr  string `env:"POSSIBILITY_SPACE_CALC_HTTP_ADDR"  envDefault:"localhost:8081"`
	Transport string `env:"POSSIBILITY_SPACE_CALC_TRANSPORT"  envDefault:"stdio"`
	AuthToken string `env:"POSSIBILITY_SPACE_CALC_AUTH_TOKEN"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.AuthToken, "auth-token", cfg.AuthToken, "Bearer token required on HTTP requests")
	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the calculator MCP server.
func Run(ctx context.Context, cfg Config) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceCalc, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{
			Transport: service.TransportKind(cfg.Transport),
			HTTPAddr:  cfg.HTTPAddr,
			AuthToken: cfg.AuthToken,
		})
	})
}
