package subjects

import (
	"uni_schedule/internal/models"
)

// Key — составной естественный ключ предмета внутри группы.
// Пустая строка в Subgroup означает занятие без подгруппы.
type Key struct {
	Name      string
	Teacher   string
	StudyType string
	Subgroup  string
}

// KeyFromRow собирает ключ из полей строки внешнего API расписания
func KeyFromRow(row map[string]interface{}) Key {
	return Key{
		Name:      rowString(row, "discipline"),
		Teacher:   rowString(row, "employee_short"),
		StudyType: rowString(row, "study_type"),
		Subgroup:  rowString(row, "subgroup"),
	}
}

// KeyFromSubject собирает ключ из сохранённого предмета
func KeyFromSubject(s *models.Subject) Key {
	key := Key{
		Name:      s.Name,
		Teacher:   s.Teacher,
		StudyType: s.StudyType,
	}
	if s.Subgroup != nil {
		key.Subgroup = *s.Subgroup
	}
	return key
}

// HiddenKeys строит множество ключей скрытых предметов из уже подгруженных
// связей пользователя — без повторных запросов к базе
func HiddenKeys(user *models.User) map[Key]struct{} {
	keys := make(map[Key]struct{}, len(user.HiddenSubjects))
	for i := range user.HiddenSubjects {
		keys[KeyFromSubject(&user.HiddenSubjects[i].Subject)] = struct{}{}
	}
	return keys
}

// Filter возвращает строки, ключей которых нет в hidden, сохраняя порядок входа.
// Чистая функция: входной срез не меняется.
func Filter(rows []map[string]interface{}, hidden map[Key]struct{}) []map[string]interface{} {
	if len(hidden) == 0 {
		return rows
	}

	filtered := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		if _, ok := hidden[KeyFromRow(row)]; !ok {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func rowString(row map[string]interface{}, field string) string {
	if value, ok := row[field].(string); ok {
		return value
	}
	return ""
}
