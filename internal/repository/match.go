package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/seabattle/internal/entity"
)

const statsKey = "stats"

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Save(ctx context.Context, match *entity.MatchRecord) error
	GetByID(ctx context.Context, id string) (*entity.MatchRecord, error)
	Stats(ctx context.Context) (map[entity.Side]int, error)
}

type dbMatch struct {
	client *redis.Client
}

func NewMatchRepository(client *redis.Client) MatchRepository {
	return &dbMatch{
		client: client,
	}
}

// Save stores the record and counts the win in one transaction.
func (that *dbMatch) Save(ctx context.Context, match *entity.MatchRecord) error {
	if err := match.Validate(); err != nil {
		return fmt.Errorf("invalid match record: %w", err)
	}

	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, matchKey(match.ID), matchJSON, 0)
		pipe.HIncrBy(ctx, statsKey, string(match.Winner), 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.MatchRecord, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.MatchRecord{}, ErrMatchNotFound
	}

	if err != nil {
		return &entity.MatchRecord{}, fmt.Errorf("failed to get match by id: %w", err)
	}

	var existingMatch entity.MatchRecord
	if err = json.Unmarshal([]byte(response), &existingMatch); err != nil {
		return &entity.MatchRecord{}, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &existingMatch, nil
}

// Stats - returns the number of wins per side.
func (that *dbMatch) Stats(ctx context.Context) (map[entity.Side]int, error) {
	response, err := that.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := map[entity.Side]int{
		entity.SideHuman: 0,
		entity.SideBot:   0,
	}
	for side, raw := range response {
		wins, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse wins of %s: %w", side, err)
		}
		stats[entity.Side(side)] = wins
	}

	return stats, nil
}

func matchKey(id string) string {
	return "match:" + id
}
