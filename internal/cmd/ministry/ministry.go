// Package ministry parses ministry service flags and launches the service.
package ministry

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/shepherd.church/internal/platform/cmd"
	server "github.com/louisbranch/shepherd.church/internal/services/ministry/app"
)

// Config holds ministry command configuration.
type Config struct {
	Port int `env:"SHEPHERD_CHURCH_MINISTRY_PORT" envDefault:"8081"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The ministry gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the ministry gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMinistry, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
