package handlers

import (
	"net/http"

	"uni_schedule/internal/response"

	"github.com/gin-gonic/gin"
)

// Auth подтверждает авторизацию мини-приложения
// @Summary		Проверка авторизации
// @Description	Проверяет initData из Telegram WebApp и создаёт пользователя при первом входе
// @Tags			auth
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	response.AuthResponse	"Авторизация подтверждена"
// @Failure		403	{object}	response.ErrorResponse	"Неверные или устаревшие initData (FORBIDDEN)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (AUTH_INTERNAL, DB_ERROR)"
// @Router			/auth [post]
func (h *Handler) Auth(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, response.AuthResponse{
		OK:       true,
		Username: user.Username,
	})
}
