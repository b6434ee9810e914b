package handlers

import (
	"log"
	"net/http"
	"time"

	"uni_schedule/internal/response"
	"uni_schedule/internal/schedule"
	"uni_schedule/internal/subjects"

	"github.com/gin-gonic/gin"
)

// GetSchedule отдаёт расписание группы пользователя без скрытых им предметов
// @Summary		Получение расписания
// @Description	Запрашивает расписание группы пользователя за период и убирает скрытые предметы. Без параметров берётся период "сегодня — ближайшая суббота".
// @Tags			schedule
// @Produce		json
// @Security		BearerAuth
// @Param			aStartDate	query		string					false	"Дата начала в формате ДД.ММ.ГГГГ"
// @Param			aEndDate	query		string					false	"Дата окончания в формате ДД.ММ.ГГГГ"
// @Success		200			{array}		object					"Строки расписания или {error, raw}, если внешний API ответил не JSON"
// @Failure		404			{object}	response.ErrorResponse	"Пользователю не назначена группа (GROUP_NOT_ASSIGNED)"
// @Failure		502			{object}	response.ErrorResponse	"Внешний API недоступен (UPSTREAM_UNAVAILABLE)"
// @Router			/schedule [get]
func (h *Handler) GetSchedule(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if user.Group == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "GROUP_NOT_ASSIGNED",
			Message: "Пользователю не назначена группа",
		})
		return
	}

	startDate := c.Query("aStartDate")
	endDate := c.Query("aEndDate")
	if startDate == "" || endDate == "" {
		defaultStart, defaultEnd := schedule.DefaultWeekRange(time.Now())
		if startDate == "" {
			startDate = defaultStart
		}
		if endDate == "" {
			endDate = defaultEnd
		}
	}

	siteID := user.Group.SiteID
	rows, found := h.cache.Get(c.Request.Context(), siteID, startDate, endDate)
	if !found {
		var degraded *schedule.Degraded
		var err error
		rows, degraded, err = h.schedule.FetchRows(c.Request.Context(), siteID, startDate, endDate)
		if err != nil {
			log.Println("Ошибка запроса к API расписания:", err)
			c.JSON(http.StatusBadGateway, response.ErrorResponse{
				Code:    "UPSTREAM_UNAVAILABLE",
				Message: "Сервис расписания недоступен",
			})
			return
		}
		if degraded != nil {
			c.JSON(http.StatusOK, degraded)
			return
		}
		h.cache.Set(c.Request.Context(), siteID, startDate, endDate, rows)
	}

	c.JSON(http.StatusOK, subjects.Filter(rows, subjects.HiddenKeys(user)))
}
