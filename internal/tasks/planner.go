package tasks

import (
	"context"
	"log"
	"time"

	"uni_schedule/internal/models"
	"uni_schedule/internal/schedule"
	"uni_schedule/internal/storage"

	"github.com/robfig/cron/v3"
)

// WarmScheduleCache обновляет кэш расписания текущей недели для всех групп,
// к которым привязан хотя бы один пользователь. Ошибка по одной группе
// не прерывает обход остальных.
func WarmScheduleCache(client *schedule.Client, cache *schedule.Cache) {
	subQuery := storage.DB.Model(&models.User{}).
		Select("group_id").
		Where("group_id IS NOT NULL")

	var groups []models.Group
	if err := storage.DB.Where("id IN (?)", subQuery).Find(&groups).Error; err != nil {
		log.Println("Ошибка поиска групп для обновления кэша:", err)
		return
	}

	if len(groups) == 0 {
		log.Println("Нет групп с пользователями, кэш обновлять нечего.")
		return
	}

	startDate, endDate := schedule.DefaultWeekRange(time.Now())

	for _, group := range groups {
		ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
		rows, degraded, err := client.FetchRows(ctx, group.SiteID, startDate, endDate)
		cancel()

		if err != nil {
			log.Println("Ошибка обновления кэша расписания группы", group.Name, ":", err)
			continue
		}
		if degraded != nil {
			log.Println("Внешний API отдал не JSON, кэш группы", group.Name, "не обновлён")
			continue
		}

		cache.Set(context.Background(), group.SiteID, startDate, endDate, rows)
		log.Printf("Кэш расписания группы '%s' обновлён (%d строк).\n", group.Name, len(rows))
	}
}

// InitScheduler инициализирует планировщик cron-задач.
func InitScheduler(client *schedule.Client, cache *schedule.Cache) *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Прогрев кэша расписания каждые 30 минут.
	_, err := c.AddFunc("0 */30 * * * *", func() {
		WarmScheduleCache(client, cache)
	})
	if err != nil {
		log.Println("Ошибка запуска cron-задачи WarmScheduleCache:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}
