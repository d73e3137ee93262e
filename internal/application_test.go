package application

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "debug",
		Game: config.Game{
			RestartMode:      config.RestartAuto,
			OpponentDelay:    time.Millisecond,
			CountdownSeconds: 3,
			CountdownTick:    time.Hour,
		},
		Redis: config.Redis{
			Host:    "localhost",
			Port:    "1",
			Channel: "tictactoe:test",
		},
	}
}

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Plays a game from the console", func(t *testing.T) {
		// Given: a script where X takes the top row
		in := strings.NewReader("pvp\n1\n4\n2\n5\n3\nquit\n")
		out := &bytes.Buffer{}

		// When: running the app
		err := RunApp(logger, testConfig(), in, out)

		// Then: the win and the pending restart are shown
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Choose Game Mode")
		assert.Contains(t, out.String(), "Winner: X - New game in 3...")
	})

	t.Run("Fails when redis is unreachable", func(t *testing.T) {
		// Given: redis enabled on a closed port
		conf := testConfig()
		conf.Redis.Enabled = true

		// When: running the app
		err := RunApp(logger, conf, strings.NewReader("quit\n"), &bytes.Buffer{})

		// Then: the connection error is returned before anything is played
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not connect to redis")
	})
}
