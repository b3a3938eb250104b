package lokalmart

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lokalmart/lokalmart/lokalmart/database"
	"github.com/lokalmart/lokalmart/lokalmart/remote"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log       LogConfig         `toml:"log"`
	DB        database.DBConfig `toml:"db"`
	Remote    remote.Config     `toml:"remote"`
	Reconcile ReconcileConfig   `toml:"reconcile"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type ReconcileConfig struct {
	// IntervalSeconds between reconciliation passes; 0 disables the worker.
	IntervalSeconds int `toml:"interval_seconds"`
	// MaxConcurrency bounds per-listing repair goroutines in one pass.
	MaxConcurrency int `toml:"max_concurrency"`
}
