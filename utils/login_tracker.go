package utils

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/config"
)

const (
	loginEventsKey = "login_events"
	loginEventsMax = 200
)

type loginEvent struct {
	UserID     string    `json:"user_id"`
	LoggedInAt time.Time `json:"logged_in_at"`
	IPAddress  string    `json:"ip_address"`
	DeviceType string    `json:"device_type"`
	Browser    string    `json:"browser"`
	OS         string    `json:"os"`
}

// LogLoginEvent records a login event to a capped Redis list. Purely
// informational; a missing Redis just skips the write.
func LogLoginEvent(c *gin.Context, userID string) {
	userAgent := c.GetHeader("User-Agent")

	event := loginEvent{
		UserID:     userID,
		LoggedInAt: time.Now(),
		IPAddress:  c.ClientIP(),
		DeviceType: parseDeviceType(userAgent),
		Browser:    parseBrowser(userAgent),
		OS:         parseOS(userAgent),
	}

	if config.RedisClient == nil {
		log.Printf("login event (redis off): user=%s ip=%s device=%s", event.UserID, event.IPAddress, event.DeviceType)
		return
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return
	}

	pipe := config.RedisClient.Pipeline()
	pipe.LPush(config.Ctx, loginEventsKey, raw)
	pipe.LTrim(config.Ctx, loginEventsKey, 0, loginEventsMax-1)
	if _, err := pipe.Exec(config.Ctx); err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return
	}

	log.Printf("✅ Login event logged for user: %s from IP: %s", event.UserID, event.IPAddress)
}

// parseDeviceType determines if the request is from mobile, tablet, or desktop
func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") {
		return "mobile"
	}
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	return "desktop"
}

// parseBrowser extracts browser name from user agent
func parseBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "edg") {
		return "Edge"
	}
	if strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg") {
		return "Chrome"
	}
	if strings.Contains(ua, "firefox") {
		return "Firefox"
	}
	if strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome") {
		return "Safari"
	}
	return "Other"
}

// parseOS extracts operating system from user agent
func parseOS(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "windows") {
		return "Windows"
	}
	if strings.Contains(ua, "mac os") {
		return "macOS"
	}
	if strings.Contains(ua, "linux") {
		return "Linux"
	}
	if strings.Contains(ua, "android") {
		return "Android"
	}
	if strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") {
		return "iOS"
	}
	return "Other"
}
