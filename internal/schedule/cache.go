package schedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheTTL = time.Hour

// Cache хранит строки расписания в Redis. Кэшируются строки до пользовательской
// фильтрации — скрытые предметы всегда вычитаются уже после чтения из кэша.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get возвращает строки из кэша; false — если записи нет или она не читается
func (c *Cache) Get(ctx context.Context, siteID, startDate, endDate string) ([]Row, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	cached, err := c.client.Get(ctx, cacheKey(siteID, startDate, endDate)).Result()
	if err != nil || cached == "" {
		return nil, false
	}

	var rows []Row
	if err := json.Unmarshal([]byte(cached), &rows); err != nil {
		return nil, false
	}
	return rows, true
}

// Set сохраняет строки на час
func (c *Cache) Set(ctx context.Context, siteID, startDate, endDate string, rows []Row) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(siteID, startDate, endDate), string(data), cacheTTL)
}

func cacheKey(siteID, startDate, endDate string) string {
	return "schedule_" + siteID + "_" + startDate + "_" + endDate
}
