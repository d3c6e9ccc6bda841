package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fortuna/scorefeed/internal/dataset"
)

// RedisPublisher publishes extracted records to Redis streams, one stream
// per result type.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a new Redis stream publisher
func NewRedisPublisher(redisURL string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisPublisher{client: client}, nil
}

// NewRedisPublisherWithClient wraps an existing Redis client
func NewRedisPublisherWithClient(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Close closes the Redis connection
func (rp *RedisPublisher) Close() error {
	return rp.client.Close()
}

// StreamName returns the stream a result type is published on
func StreamName(resultType dataset.ResultType) string {
	return fmt.Sprintf("scorefeed.results.%s", resultType)
}

// PublishResult publishes one extracted record to its type's stream
func (rp *RedisPublisher) PublishResult(ctx context.Context, resultType dataset.ResultType, sourceID string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return rp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamName(resultType),
		Values: map[string]interface{}{
			"sourceId":  sourceID,
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
