package handlers

import (
	"log"
	"net/http"

	"uni_schedule/internal/auth"
	"uni_schedule/internal/models"
	"uni_schedule/internal/response"
	"uni_schedule/internal/schedule"
	"uni_schedule/internal/storage"
	"uni_schedule/internal/users"

	"github.com/gin-gonic/gin"
)

// Handler держит внешние зависимости обработчиков: клиент виджета расписания
// и его кэш. Создаётся один раз в main.
type Handler struct {
	schedule *schedule.Client
	cache    *schedule.Cache
}

func New(scheduleClient *schedule.Client, cache *schedule.Cache) *Handler {
	return &Handler{
		schedule: scheduleClient,
		cache:    cache,
	}
}

// currentUser достаёт проверенного пользователя Telegram из контекста и
// возвращает его строку в базе, создавая её при первом входе. При ошибке
// ответ уже записан, второе значение false.
func currentUser(c *gin.Context) (*models.User, bool) {
	webAppUser := auth.CurrentWebAppUser(c)
	if webAppUser == nil {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Forbidden access.",
		})
		return nil, false
	}

	user, err := users.GetOrCreate(storage.DB, webAppUser)
	if err != nil {
		log.Println("Ошибка получения пользователя:", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при получении пользователя",
		})
		return nil, false
	}
	return user, true
}
