// Package ratelimit はルート単位・クライアント単位のリクエスト頻度制限を提供します。
package ratelimit

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/bguntupallics/TradingSandbox/internal/api"
)

// Limiter はクライアント（リモートIP）ごとにトークンバケットを保持する
// ルート単位のレートリミッタです。バケットは初回アクセス時に生成されます。
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewLimiter は1分あたりperMinuteリクエストを上限とするLimiterを生成します。
func NewLimiter(perMinute int) *Limiter {
	return &Limiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   perMinute,
	}
}

// Allow は指定クライアントのリクエストを許可するかを判定します。
func (l *Limiter) Allow(client string) bool {
	l.mu.Lock()
	b, ok := l.buckets[client]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.buckets[client] = b
	}
	l.mu.Unlock()
	return b.Allow()
}

// PerMinute は1分あたりの上限を超えたリクエストを429で拒否する
// Ginミドルウェアを返します。ミドルウェアはルートごとに生成し、
// バケットはルート内でクライアントIPごとに分離されます。
func PerMinute(perMinute int) gin.HandlerFunc {
	l := NewLimiter(perMinute)
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
