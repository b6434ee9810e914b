package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"uni_schedule/internal/response"

	"github.com/gin-gonic/gin"
)

const webAppUserKey = "webAppUser"

const defaultTokenTTL = 24 * time.Hour

// Middleware проверяет initData из заголовка Authorization и кладёт
// проверенного пользователя Telegram в контекст запроса
func Middleware() gin.HandlerFunc {
	secretKey := GenerateSecretKey(os.Getenv("TOKEN"))
	maxAge := tokenMaxAge()

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusForbidden, response.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "Forbidden access.",
			})
			c.Abort()
			return
		}

		initData := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := ParseInitData(initData, secretKey, maxAge)
		if err != nil {
			if errors.Is(err, ErrInvalidInitData) {
				c.JSON(http.StatusForbidden, response.ErrorResponse{
					Code:    "FORBIDDEN",
					Message: "Forbidden access.",
				})
			} else {
				// Подробности остаются в логе, клиенту — только общий ответ
				log.Println("Ошибка проверки initData:", err)
				c.JSON(http.StatusInternalServerError, response.ErrorResponse{
					Code:    "AUTH_INTERNAL",
					Message: "Internal error.",
				})
			}
			c.Abort()
			return
		}

		c.Set(webAppUserKey, user)
		c.Next()
	}
}

// CurrentWebAppUser возвращает пользователя Telegram, положенного в контекст Middleware
func CurrentWebAppUser(c *gin.Context) *WebAppUser {
	value, exists := c.Get(webAppUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*WebAppUser)
	if !ok {
		return nil
	}
	return user
}

func tokenMaxAge() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("AUTH_TTL_HOURS"))
	if err != nil || hours <= 0 {
		return defaultTokenTTL
	}
	return time.Duration(hours) * time.Hour
}
