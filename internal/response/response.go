package response

// SuccessResponse представляет успешный ответ API
type SuccessResponse struct {
	Message string `json:"message" example:"Операция успешно выполнена"`
}

// ErrorResponse представляет ответ с ошибкой API
type ErrorResponse struct {
	// Код ошибки для программной обработки
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Человекочитаемое сообщение об ошибке
	// example: Ошибка валидации данных
	Message string `json:"message"`

	// Дополнительные детали об ошибке (опционально)
	// example: поле name обязательно
	Details string `json:"details,omitempty"`
}

// AuthResponse представляет ответ на проверку авторизации мини-приложения
type AuthResponse struct {
	OK bool `json:"ok"`

	// Имя пользователя из Telegram
	// example: rizzyfox
	Username string `json:"username"`
}

// HiddenSubjectResponse представляет скрытый предмет в списке скрытых
type HiddenSubjectResponse struct {
	// Идентификатор предмета
	ID uint `json:"id"`

	// Название дисциплины
	// example: Вища математика
	Discipline string `json:"discipline"`

	// Короткое имя преподавателя
	// example: Іваненко І.І.
	EmployeeShort string `json:"employee_short"`

	// Тип занятия
	// example: Лекція
	StudyType string `json:"study_type"`

	// Подгруппа (null, если занятие общее)
	Subgroup *string `json:"subgroup"`
}
