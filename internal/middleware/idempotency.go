package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

// cachedResponse stores the exact status and body of the first successful
// response so a replay is indistinguishable from the original.
type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(p []byte) (int, error) {
	w.body.Write(p)
	return w.ResponseWriter.Write(p)
}

// Idempotency replays POST responses keyed by the Idempotency-Key header.
// The first request runs the handler, records its status and body, and
// caches them on success; a replay returns the identical response. A
// short-lived SetNX lock rejects a duplicate request while the first one is
// still in flight.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached cachedResponse
			if json.Unmarshal([]byte(val), &cached) == nil && cached.Status != 0 {
				c.Abort()
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				return
			}
		}

		// lock expires on its own if the server dies mid-request
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is already in progress",
			})
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		status := recorder.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			entry := cachedResponse{Status: status, Body: recorder.body.Bytes()}
			if payload, err := json.Marshal(entry); err == nil {
				_ = rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyCacheTTL).Err()
			}
		}
		_ = rdb.Del(c.Request.Context(), lockKey).Err()
	}
}
