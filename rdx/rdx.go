// Package rdx holds the Redis connection used for short-lived view caches.
// The service stays functional without Redis: every helper degrades to a
// cache miss on error.
package rdx

import (
	"context"
	"log"
	"time"

	"medistore/utils"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func Init() {
	Conn = redis.NewClient(&redis.Options{
		Addr: utils.Env("REDIS_ADDR", "localhost:6379"),
	})
}

// Cached returns the cached bytes for key, or calls fetch and stores the
// result for ttl. Redis failures fall through to fetch.
func Cached(ctx context.Context, key string, ttl time.Duration, fetch func() ([]byte, error)) ([]byte, error) {
	if Conn != nil {
		if val, err := Conn.Get(ctx, key).Bytes(); err == nil {
			return val, nil
		} else if err != redis.Nil {
			log.Println("rdx: get error:", err)
		}
	}

	val, err := fetch()
	if err != nil {
		return nil, err
	}

	if Conn != nil && len(val) > 0 {
		if err := Conn.Set(ctx, key, val, ttl).Err(); err != nil {
			log.Println("rdx: set error:", err)
		}
	}
	return val, nil
}
