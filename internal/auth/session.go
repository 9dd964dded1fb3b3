package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyFmt = "admin_session:%s"

func SetSession(rdb *redis.Client, username string, token string, duration time.Duration) error {
	ctx := context.Background()
	key := fmt.Sprintf(sessionKeyFmt, username)
	return rdb.Set(ctx, key, token, duration).Err()
}

func GetSession(rdb *redis.Client, username string) (string, error) {
	ctx := context.Background()
	key := fmt.Sprintf(sessionKeyFmt, username)
	return rdb.Get(ctx, key).Result()
}

func DeleteSession(rdb *redis.Client, username string) error {
	ctx := context.Background()
	key := fmt.Sprintf(sessionKeyFmt, username)
	return rdb.Del(ctx, key).Err()
}
