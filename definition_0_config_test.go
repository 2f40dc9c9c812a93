package ganttboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run(
		"1. defaults",
		func(t *testing.T) {
			cfg, errLoad := LoadConfig()
			require.NoError(t, errLoad)

			policy, errPolicy := cfg.GetPolicy()
			require.NoError(t, errPolicy)
			require.Equal(t, PolicyReject, policy)
			require.Zero(t, cfg.MinimumDurationMillis)

			location, errLocation := cfg.GetLocation()
			require.NoError(t, errLocation)
			require.Equal(t, time.Local, location)
		},
	)

	t.Run(
		"2. from environment",
		func(t *testing.T) {
			t.Setenv("GANTT_INTERVAL_POLICY", "clamp")
			t.Setenv("GANTT_MINIMUM_DURATION_MILLIS", "900000")
			t.Setenv("GANTT_TIMEZONE", "UTC")

			cfg, errLoad := LoadConfig()
			require.NoError(t, errLoad)

			params, errParams := cfg.ToParamsNewBoard()
			require.NoError(t, errParams)
			require.Equal(t, PolicyClamp, params.Policy)
			require.EqualValues(t, 900000, params.MinimumDurationMillis)
			require.NotNil(t, params.Logger)
		},
	)

	t.Run(
		"3. unknown policy",
		func(t *testing.T) {
			t.Setenv("GANTT_INTERVAL_POLICY", "swap")

			cfg, errLoad := LoadConfig()
			require.Error(t, errLoad)
			require.Nil(t, cfg)
		},
	)

	t.Run(
		"4. unknown timezone",
		func(t *testing.T) {
			t.Setenv("GANTT_TIMEZONE", "Mars/Olympus")

			_, errLoad := LoadConfig()
			require.Error(t, errLoad)
		},
	)

	t.Run(
		"5. unknown log level",
		func(t *testing.T) {
			t.Setenv("GANTT_LOG_LEVEL", "chatty")

			cfg, errLoad := LoadConfig()
			require.Error(t, errLoad)
			require.Nil(t, cfg)

			logger, errLogger := NewLogger("chatty")
			require.Error(t, errLogger)
			require.Nil(t, logger)
		},
	)
}
