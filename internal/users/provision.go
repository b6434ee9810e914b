package users

import (
	"errors"

	"uni_schedule/internal/auth"
	"uni_schedule/internal/models"

	"gorm.io/gorm"
)

// GetOrCreate находит пользователя по telegram_id или создаёт его при первом входе.
// Группа и скрытые предметы подгружаются сразу — дальше в рамках запроса база
// для них не дёргается. Гонка двух первых входов с одним telegram_id разрешается
// уникальным индексом: проигравший просто перечитывает уже созданную строку.
func GetOrCreate(db *gorm.DB, webAppUser *auth.WebAppUser) (*models.User, error) {
	user, err := loadByTelegramID(db, webAppUser.ID)
	if err == nil {
		// Имя пользователя в Telegram могло смениться
		if user.Username != webAppUser.Username {
			if err := db.Model(user).Update("username", webAppUser.Username).Error; err != nil {
				return nil, err
			}
			user.Username = webAppUser.Username
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newUser := models.User{
		TelegramID: webAppUser.ID,
		Username:   webAppUser.Username,
	}
	if err := db.Create(&newUser).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	// Перечитываем в обоих случаях: либо за сгенерированными полями,
	// либо за строкой, которую успел создать параллельный запрос
	return loadByTelegramID(db, webAppUser.ID)
}

func loadByTelegramID(db *gorm.DB, telegramID int64) (*models.User, error) {
	var user models.User
	err := db.Preload("Group").
		Preload("HiddenSubjects.Subject").
		Where("telegram_id = ?", telegramID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
