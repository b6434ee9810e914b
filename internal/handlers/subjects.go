package handlers

import (
	"errors"
	"log"
	"net/http"

	"uni_schedule/internal/response"
	"uni_schedule/internal/storage"
	"uni_schedule/internal/subjects"

	"github.com/gin-gonic/gin"
)

// SubjectRequest — составной ключ предмета в теле запросов скрытия.
// Поле teacher может быть пустым: виджет не для всех занятий отдаёт преподавателя.
type SubjectRequest struct {
	Name      string  `json:"name" binding:"required"`
	Teacher   string  `json:"teacher"`
	StudyType string  `json:"study_type" binding:"required"`
	Subgroup  *string `json:"subgroup"`
}

func (r *SubjectRequest) key() subjects.Key {
	key := subjects.Key{
		Name:      r.Name,
		Teacher:   r.Teacher,
		StudyType: r.StudyType,
	}
	if r.Subgroup != nil {
		key.Subgroup = *r.Subgroup
	}
	return key
}

// HideSubject скрывает предмет из расписания пользователя
// @Summary		Скрытие предмета
// @Description	Скрывает предмет с указанным составным ключом из расписания пользователя
// @Tags			subjects
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			subject	body		SubjectRequest				true	"Ключ предмета"
// @Success		200		{object}	response.SuccessResponse	"Предмет скрыт"
// @Failure		400		{object}	response.ErrorResponse		"Ошибка валидации (VALIDATION_ERROR) или предмет уже скрыт (ALREADY_HIDDEN)"
// @Failure		404		{object}	response.ErrorResponse		"Пользователю не назначена группа (GROUP_NOT_ASSIGNED)"
// @Failure		500		{object}	response.ErrorResponse		"Ошибка сервера (DB_ERROR)"
// @Router			/hide_subject [post]
func (h *Handler) HideSubject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	if err := subjects.Hide(storage.DB, user, req.key()); err != nil {
		switch {
		case errors.Is(err, subjects.ErrAlreadyHidden):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "ALREADY_HIDDEN",
				Message: "Предмет уже скрыт",
			})
		case errors.Is(err, subjects.ErrNoGroup):
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "GROUP_NOT_ASSIGNED",
				Message: "Пользователю не назначена группа",
			})
		default:
			log.Println("Ошибка скрытия предмета:", err)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Ошибка при скрытии предмета",
			})
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Предмет скрыт"})
}

// UnhideSubject возвращает предмет в расписание пользователя
// @Summary		Возврат предмета
// @Description	Убирает скрытие предмета с указанным составным ключом
// @Tags			subjects
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			subject	body		SubjectRequest				true	"Ключ предмета"
// @Success		200		{object}	response.SuccessResponse	"Предмет снова виден"
// @Failure		400		{object}	response.ErrorResponse		"Ошибка валидации (VALIDATION_ERROR) или предмет не был скрыт (NOT_HIDDEN)"
// @Failure		500		{object}	response.ErrorResponse		"Ошибка сервера (DB_ERROR)"
// @Router			/unhide_subject [post]
func (h *Handler) UnhideSubject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	if err := subjects.Unhide(storage.DB, user, req.key()); err != nil {
		if errors.Is(err, subjects.ErrNotHidden) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "NOT_HIDDEN",
				Message: "Предмет не был скрыт",
			})
			return
		}
		log.Println("Ошибка возврата предмета:", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при возврате предмета",
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Предмет снова виден"})
}

// GetHiddenSubjects отдаёт список скрытых предметов пользователя
// @Summary		Список скрытых предметов
// @Description	Возвращает все предметы, скрытые пользователем из расписания
// @Tags			subjects
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		response.HiddenSubjectResponse	"Скрытые предметы"
// @Failure		403	{object}	response.ErrorResponse			"Неверные или устаревшие initData (FORBIDDEN)"
// @Router			/get_hidden_subjects [get]
func (h *Handler) GetHiddenSubjects(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	hidden := make([]response.HiddenSubjectResponse, 0, len(user.HiddenSubjects))
	for i := range user.HiddenSubjects {
		subject := &user.HiddenSubjects[i].Subject
		hidden = append(hidden, response.HiddenSubjectResponse{
			ID:            subject.ID,
			Discipline:    subject.Name,
			EmployeeShort: subject.Teacher,
			StudyType:     subject.StudyType,
			Subgroup:      subject.Subgroup,
		})
	}

	c.JSON(http.StatusOK, hidden)
}
