package api

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"fxdelta/internal/delta/handler"

	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewLimiter builds an in-memory limiter from a formatted rate such as "100-M".
func NewLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit rejects clients that exceeded the limiter's rate with 429.
func RateLimit(l *limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			lctx, err := l.Get(r.Context(), ip)
			if err != nil {
				logrus.WithError(err).WithField("ip", ip).Error("failed to get rate limit context")
				writeLimitError(w, http.StatusInternalServerError, handler.CodeInternalServerError, "rate limit check failed")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				logrus.WithFields(logrus.Fields{"ip": ip, "limit": lctx.Limit}).Warn("rate limit exceeded")
				writeLimitError(w, http.StatusTooManyRequests, "TooManyRequests", "Too many requests. Please try again later.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keys on the connection address only; forwarding headers are client controlled.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeLimitError(w http.ResponseWriter, statusCode int, code, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(handler.ErrorResponse{ErrorCode: code, ErrorDetails: details})
}
