package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/utils"
)

const profileIDKey = "profileID"

type ProfileConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// ProfileMiddleware 识别浏览器档案；没有有效令牌时创建新档案并写回 cookie
func ProfileMiddleware(cfg ProfileConfig, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(cfg.CookieName); err == nil {
			if id, err := utils.ParseToken(cfg.Secret, raw); err == nil {
				c.Set(profileIDKey, id)
				c.Next()
				return
			}
		}

		id := uuid.NewString()
		token, err := utils.IssueToken(cfg.Secret, id, cfg.TTL, time.Now())
		if err != nil {
			log.Error("failed to issue profile token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not create profile"})
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, token, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
		c.Set(profileIDKey, id)
		c.Next()
	}
}

// ProfileID 返回当前请求的档案 ID
func ProfileID(c *gin.Context) string {
	return c.GetString(profileIDKey)
}
