// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/bitpeople-node/bitpeople"
)

const (
	DefaultPort    = 3000
	DefaultNodeURL = "http://localhost:8546"
)

type Config struct {
	Port            int
	NodeURL         string
	ContractAddress common.Address
	NodeTimeout     time.Duration
	OTLPEndpoint    string
	LogLevel        string
	LogFormat       string
}

// LoadEnv reads KEY=value pairs from the given files (default .env) into the
// environment. Variables already set win; missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var contract, timeout string

	fs := flag.NewFlagSet("bitpeople-node", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.NodeURL, "n", "", "Ethereum node RPC URL")
	fs.StringVar(&contract, "c", "", "BitPeople contract address")
	fs.StringVar(&timeout, "timeout", "", "Upper bound on contract reads per request, e.g. 10s")

	// Observability
	fs.StringVar(&cfg.OTLPEndpoint, "otlp", "", "OTLP/HTTP trace endpoint (tracing is off when empty)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "text or json")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.NodeURL == "" {
		cfg.NodeURL = envOr("NODE_URL", DefaultNodeURL)
	}

	if contract == "" {
		contract = os.Getenv("CONTRACT_ADDRESS")
	}
	if contract == "" {
		cfg.ContractAddress = bitpeople.DefaultAddress
	} else {
		if !common.IsHexAddress(contract) {
			return Config{}, fmt.Errorf("invalid contract address %q", contract)
		}
		cfg.ContractAddress = common.HexToAddress(contract)
	}

	if timeout == "" {
		timeout = os.Getenv("NODE_TIMEOUT")
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid node timeout %q", timeout)
		}
		cfg.NodeTimeout = d
	}

	if cfg.OTLPEndpoint == "" {
		cfg.OTLPEndpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("LOG_LEVEL", "info")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = envOr("LOG_FORMAT", "text")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
