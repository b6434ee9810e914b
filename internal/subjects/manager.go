package subjects

import (
	"errors"

	"uni_schedule/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrAlreadyHidden — предмет уже скрыт этим пользователем
	ErrAlreadyHidden = errors.New("subject already hidden")
	// ErrNotHidden — предмет не скрыт, снимать нечего
	ErrNotHidden = errors.New("subject not hidden")
	// ErrNoGroup — пользователю не назначена группа
	ErrNoGroup = errors.New("user has no group")
)

// Hide скрывает предмет для пользователя. Предмет в группе создаётся лениво,
// при первом скрытии кем-либо из группы. Создание предмета и ссылки на скрытие
// выполняются в одной транзакции.
func Hide(db *gorm.DB, user *models.User, key Key) error {
	// Сначала смотрим в уже подгруженное множество — без похода в базу
	if _, ok := HiddenKeys(user)[key]; ok {
		return ErrAlreadyHidden
	}
	if user.GroupID == nil {
		return ErrNoGroup
	}

	err := hideOnce(db, user, key)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Предмет успел создать параллельный запрос другого пользователя —
		// теперь он точно есть, повторяем один раз
		err = hideOnce(db, user, key)
	}
	return err
}

func hideOnce(db *gorm.DB, user *models.User, key Key) error {
	return db.Transaction(func(tx *gorm.DB) error {
		subject, err := findOrCreateSubject(tx, *user.GroupID, key)
		if err != nil {
			return err
		}

		link := models.UserHiddenSubject{UserID: user.ID, SubjectID: subject.ID}
		if err := tx.Create(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Гонка двух одинаковых запросов: ссылку уже создали
				return ErrAlreadyHidden
			}
			return err
		}
		return nil
	})
}

// Unhide убирает скрытие предмета. Ссылка ищется среди уже подгруженных
// связей пользователя; отсутствие — ErrNotHidden без изменений в базе.
func Unhide(db *gorm.DB, user *models.User, key Key) error {
	for i := range user.HiddenSubjects {
		if KeyFromSubject(&user.HiddenSubjects[i].Subject) != key {
			continue
		}
		// Unscoped: мягко удалённая ссылка осталась бы в уникальном индексе
		// и заблокировала бы повторное скрытие
		return db.Unscoped().Delete(&user.HiddenSubjects[i]).Error
	}
	return ErrNotHidden
}

func findOrCreateSubject(tx *gorm.DB, groupID uint, key Key) (*models.Subject, error) {
	query := tx.Where("group_id = ? AND name = ? AND teacher = ? AND study_type = ?",
		groupID, key.Name, key.Teacher, key.StudyType)
	if key.Subgroup == "" {
		query = query.Where("subgroup IS NULL")
	} else {
		query = query.Where("subgroup = ?", key.Subgroup)
	}

	var subject models.Subject
	err := query.First(&subject).Error
	if err == nil {
		return &subject, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subject = models.Subject{
		Name:      key.Name,
		Teacher:   key.Teacher,
		StudyType: key.StudyType,
		GroupID:   groupID,
	}
	if key.Subgroup != "" {
		subgroup := key.Subgroup
		subject.Subgroup = &subgroup
	}
	if err := tx.Create(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}
