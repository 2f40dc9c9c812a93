package ganttboard

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

const _ConfigNamespace = "GANTT"

type Config struct {
	IntervalPolicy        string `envconfig:"INTERVAL_POLICY" default:"reject"`
	LogLevel              string `envconfig:"LOG_LEVEL" default:"info"`
	SeedFile              string `envconfig:"SEED_FILE" default:""`
	Timezone              string `envconfig:"TIMEZONE" default:"Local"`
	MinimumDurationMillis int64  `envconfig:"MINIMUM_DURATION_MILLIS" default:"0"`
}

func LoadConfig() (*Config, error) {
	var result Config

	if errProcess := envconfig.Process(_ConfigNamespace, &result); errProcess != nil {
		return nil,
			fmt.Errorf("failed to load config: %w", errProcess)
	}

	if _, errPolicy := result.GetPolicy(); errPolicy != nil {
		return nil, errPolicy
	}

	if _, errLocation := result.GetLocation(); errLocation != nil {
		return nil, errLocation
	}

	if _, errLevel := zapcore.ParseLevel(result.LogLevel); errLevel != nil {
		return nil,
			fmt.Errorf("failed to parse log level %q: %w", result.LogLevel, errLevel)
	}

	return &result, nil
}

func (cfg *Config) GetPolicy() (IntervalPolicy, error) {
	return ParseIntervalPolicy(cfg.IntervalPolicy)
}

func (cfg *Config) GetLocation() (*time.Location, error) {
	location, errLoad := time.LoadLocation(cfg.Timezone)
	if errLoad != nil {
		return nil,
			fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, errLoad)
	}

	return location, nil
}

// ToParamsNewBoard carries the interval settings, groups come from the seed.
func (cfg *Config) ToParamsNewBoard() (*ParamsNewBoard, error) {
	policy, errPolicy := cfg.GetPolicy()
	if errPolicy != nil {
		return nil, errPolicy
	}

	logger, errLogger := NewLogger(cfg.LogLevel)
	if errLogger != nil {
		return nil, errLogger
	}

	return &ParamsNewBoard{
			Logger:                logger,
			Policy:                policy,
			MinimumDurationMillis: cfg.MinimumDurationMillis,
		},
		nil
}
