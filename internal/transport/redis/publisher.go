package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Publisher pushes every session state to "<channel>:<session id>" so an external renderer can follow the game.
// Nothing is stored, the messages are gone once delivered.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
	}
}

func (that *Publisher) Channel(sessionID string) string {
	return that.channel + ":" + sessionID
}

func (that *Publisher) Publish(ctx context.Context, state entity.SessionState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal session state: %w", err)
	}

	if err = that.client.Publish(ctx, that.Channel(state.ID), stateJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish session state: %w", err)
	}

	return nil
}

// Subscribe - decodes the states published for a session until ctx is done.
func (that *Publisher) Subscribe(ctx context.Context, sessionID string) (<-chan entity.SessionState, error) {
	pubsub := that.client.Subscribe(ctx, that.Channel(sessionID))

	// wait for the subscription to be confirmed, otherwise early messages are lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	states := make(chan entity.SessionState)

	go func() {
		defer close(states)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var state entity.SessionState
				if err := json.Unmarshal([]byte(msg.Payload), &state); err != nil {
					continue
				}

				select {
				case states <- state:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return states, nil
}
