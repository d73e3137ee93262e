package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs the game until the player quits or the process is signalled.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	consoleServer := console.New(logger, in, out)
	publishers := []usecase.StatePublisher{consoleServer}

	if conf.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis client", "error", err)
			}
		}()

		publishers = append(publishers, redis.NewPublisher(redisClient, conf.Redis.Channel))
		log.Info("publishing session states to redis", "addr", conf.Redis.GetRedisAddr(), "channel", conf.Redis.Channel)
	}

	bot := service.NewBotService(entity.PlayerO, conf.Game.Seed)

	session := usecase.NewSession(ctx, logger, bot, usecase.NewClockScheduler(), usecase.Options{
		AutoRestart:      conf.Game.IsAutoRestart(),
		OpponentDelay:    conf.Game.OpponentDelay,
		CountdownSeconds: conf.Game.CountdownSeconds,
		CountdownTick:    conf.Game.CountdownTick,
	}, publishers...)
	defer session.Close()

	log.Info("session started", "sessionID", session.ID())

	if err := consoleServer.Run(ctx, session); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("session finished", "sessionID", session.ID())

	return nil
}
