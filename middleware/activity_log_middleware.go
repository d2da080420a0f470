package middleware

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/config"
)

const (
	activityLogKey = "admin:activity"
	activityLogMax = 500
)

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

type activityEntry struct {
	AdminID   string    `json:"admin_id"`
	Email     string    `json:"email"`
	Action    string    `json:"action"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityLoggingMiddleware records admin mutations to a capped Redis
// list. Must be used AFTER AuthMiddleware (which sets userID/userEmail).
// GET requests are not logged.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, mutating := methodToActionVerb[c.Request.Method]
		if !mutating {
			c.Next()
			return
		}

		c.Next()

		if config.RedisClient == nil {
			return
		}

		adminID, _ := GetUserIDFromContext(c)
		email, _ := c.Get("userEmail")
		emailStr, _ := email.(string)

		entry := activityEntry{
			AdminID:   adminID,
			Email:     emailStr,
			Action:    verb,
			Path:      c.FullPath(),
			Status:    c.Writer.Status(),
			Timestamp: time.Now(),
		}

		raw, err := json.Marshal(entry)
		if err != nil {
			return
		}

		pipe := config.RedisClient.Pipeline()
		pipe.LPush(config.Ctx, activityLogKey, raw)
		pipe.LTrim(config.Ctx, activityLogKey, 0, activityLogMax-1)
		if _, err := pipe.Exec(config.Ctx); err != nil {
			log.Printf("[activity-logging] failed to record entry: %v", err)
		}
	}
}
