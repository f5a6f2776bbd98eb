package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const msgTooManyRequests = "リクエストが多すぎます。しばらくしてから再度お試しください"

// RateLimit отклоняет запросы сверх лимита с 429, ключом служит IP клиента
// X-Forwarded-For учитывается только при trustForwarded (сервис за доверенным прокси)
func RateLimit(limiter Limiter, m Metrics, logger Logger, trustForwarded bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trustForwarded)
			if !limiter.Allow(ip) {
				path := routePath(r)
				logger.Warn("%s %s - Rate limited: ip=%s", r.Method, path, ip)
				m.ObserveRateLimited(path)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP ключ лимитера, никогда не пустой
func clientIP(r *http.Request, trustForwarded bool) string {
	if trustForwarded {
		fwd := strings.TrimSpace(strings.SplitN(r.Header.Get("X-Forwarded-For"), ",", 2)[0])
		if net.ParseIP(fwd) != nil {
			return fwd
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		host = r.RemoteAddr
	}
	if host == "" {
		return "unknown"
	}
	return host
}
