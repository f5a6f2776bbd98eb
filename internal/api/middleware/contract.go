package middleware

import "time"

// Metrics сборщик HTTP метрик
type Metrics interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
	ObserveRateLimited(path string)
}

// Limiter ограничитель частоты запросов по ключу
type Limiter interface {
	Allow(key string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
