package models

import (
	"gorm.io/gorm"
)

type Group struct {
	gorm.Model
	SiteID   string `gorm:"uniqueIndex;not null"` // Идентификатор группы на сайте расписания
	Name     string `gorm:"not null"`             // Название группы
	Faculty  string
	Semester int

	Users    []User    `gorm:"foreignKey:GroupID"`
	Subjects []Subject `gorm:"foreignKey:GroupID"`
}

type User struct {
	gorm.Model
	TelegramID int64  `gorm:"uniqueIndex;not null"` // Идентификатор пользователя в Telegram
	Username   string // Обновляется при каждой успешной авторизации
	GroupID    *uint  `gorm:"index"`
	Group      *Group

	HiddenSubjects []UserHiddenSubject `gorm:"constraint:OnDelete:CASCADE"`
}

// Subject — повторяющееся занятие группы. Внутри группы уникален по составному ключу
// (название, преподаватель, тип занятия, подгруппа). Не удаляется: на него могут
// ссылаться скрытия других пользователей.
type Subject struct {
	gorm.Model
	Name      string  `gorm:"not null;uniqueIndex:uq_group_subject"`
	Teacher   string  `gorm:"not null;uniqueIndex:uq_group_subject"`
	StudyType string  `gorm:"not null;uniqueIndex:uq_group_subject"`
	Subgroup  *string `gorm:"uniqueIndex:uq_group_subject"` // Подгруппа, если занятие делится
	GroupID   uint    `gorm:"not null;index;uniqueIndex:uq_group_subject"`
	Group     Group
}

// UserHiddenSubject — запись "предмет скрыт для пользователя". Не больше одной на пару
// (пользователь, предмет) — повторное скрытие упирается в уникальный индекс.
type UserHiddenSubject struct {
	gorm.Model
	UserID    uint `gorm:"not null;index;uniqueIndex:uq_user_subject"`
	SubjectID uint `gorm:"not null;uniqueIndex:uq_user_subject"`
	Subject   Subject
}
