package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL      = 10 * time.Second
	defaultRetryBackoff = 50 * time.Millisecond
)

// Снимаем блокировку, только если она всё ещё наша
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// RedisLocker блокировка слотов между несколькими инстансами сервиса
type RedisLocker struct {
	client  redis.UniversalClient
	ttl     time.Duration
	backoff time.Duration
	logger  Logger
}

// NewRedisLocker создает блокировку поверх redis
// ttl ограничивает время удержания, если процесс упал, не сняв блокировку
func NewRedisLocker(client redis.UniversalClient, ttl time.Duration, logger Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisLocker{
		client:  client,
		ttl:     ttl,
		backoff: defaultRetryBackoff,
		logger:  logger,
	}
}

// Lock захватывает слот key (SET NX PX), повторяя попытки до истечения ctx
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ErrLockTimeout
			}
			return nil, fmt.Errorf("%w: SetNX %s: %v", ErrLockBackend, key, err)
		}
		if ok {
			break
		}

		timer := time.NewTimer(l.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ErrLockTimeout
		case <-timer.C:
		}
	}

	return func() {
		// Контекст запроса может быть уже отменен, снимаем блокировку в своем
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warn("SlotLock: failed to release %s: %v", key, err)
		}
	}, nil
}
