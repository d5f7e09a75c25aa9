package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "httpcache"

type cacheWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheResponse serves availability listings from Redis for a short TTL. A
// hit can be one reservation stale at most; the write path never reads
// through this cache. A nil client disables caching instead of failing.
func CacheResponse(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		if body, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		writer := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Header("X-Cache", "MISS")

		c.Next()

		if writer.Status() == http.StatusOK {
			_ = rdb.SetEx(c.Request.Context(), key, writer.buf.Bytes(), ttl).Err()
		}
	}
}

func cacheKey(c *gin.Context) string {
	sum := sha1.Sum([]byte(c.FullPath() + "?" + c.Request.URL.RawQuery))
	return fmt.Sprintf("%s:%x", cacheKeyPrefix, sum)
}
