package stats

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"

	"github.com/tvwall/multiview/pkg/model"
)

// RedisStats counts live check outcomes per channel.
// Inspect with redis-cli:
//      127.0.0.1:6379> keys stats/top/*
//      127.0.0.1:6379> zrevrange stats/top/2026/10/live 0 10 withscores
//      127.0.0.1:6379> hgetall stats/2026/10/UCkwHQ7DWv9aqEtvAOSO74dQ
type RedisStats struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStats(redisURL string) (*RedisStats, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}

	client := redis.NewClient(opts)
	if err := client.Ping().Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	return &RedisStats{client: client, now: time.Now}, nil
}

// Record increments the counter of the given outcome for a channel.
func (r *RedisStats) Record(outcome model.Outcome, channelID string) error {
	_, err := r.Inc(string(outcome), channelID)
	return err
}

func (r *RedisStats) Inc(metric, channelID string) (int64, error) {
	now := r.now().UTC()

	key := r.makeKey(now, channelID)
	top := r.makeTop(now, metric)

	var cmd *redis.IntCmd
	_, err := r.client.TxPipelined(func(p redis.Pipeliner) error {
		cmd = p.HIncrBy(key, metric, 1)
		p.ZIncrBy(top, 1, channelID)
		return nil
	})

	if err != nil {
		return 0, err
	}

	return cmd.Result()
}

func (r *RedisStats) Get(metric, channelID string) (int64, error) {
	key := r.makeKey(r.now().UTC(), channelID)

	val, err := r.client.HGet(key, metric).Int64()
	if err == redis.Nil {
		return 0, nil
	}

	return val, err
}

// Top returns up to n channels with the highest count for a metric this month.
func (r *RedisStats) Top(metric string, n int64) (map[string]int64, error) {
	top := r.makeTop(r.now().UTC(), metric)

	zrange, err := r.client.ZRevRangeWithScores(top, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	ret := make(map[string]int64, len(zrange))
	for _, x := range zrange {
		ret[x.Member.(string)] = int64(x.Score)
	}

	return ret, nil
}

func (r *RedisStats) makeKey(now time.Time, channelID string) string {
	return fmt.Sprintf("stats/%d/%d/%s", now.Year(), now.Month(), channelID)
}

func (r *RedisStats) makeTop(now time.Time, metric string) string {
	return fmt.Sprintf("stats/top/%d/%d/%s", now.Year(), now.Month(), metric)
}

func (r *RedisStats) Close() error {
	return r.client.Close()
}
