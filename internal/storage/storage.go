package storage

import (
	"fmt"
	"log"
	"os"

	"uni_schedule/internal/models"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	// TranslateError: нарушения уникальных индексов приходят как gorm.ErrDuplicatedKey,
	// на этом построено разрешение гонок создания пользователей и скрытий.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Ошибка подключения к базе данных:", err)
	}

	DB = db
	fmt.Println("Подключение к базе данных успешно!")
}

// Migrate выполняет миграцию схемы и доводит индексы, которые AutoMigrate не умеет.
// В Postgres NULL != NULL в обычном уникальном индексе, поэтому предметы без
// подгруппы нужно ограничивать отдельным частичным индексом — иначе две
// одновременные первые попытки скрытия оставили бы в группе предметы-дубликаты.
func Migrate() error {
	if err := DB.AutoMigrate(&models.Group{}, &models.User{}, &models.Subject{}, &models.UserHiddenSubject{}); err != nil {
		return err
	}

	return DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_group_subject_no_subgroup
		ON subjects (group_id, name, teacher, study_type) WHERE subgroup IS NULL`).Error
}

var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

func ConnectTestingDatabase() {
	host := os.Getenv("TEST_DB_HOST")
	port := os.Getenv("TEST_DB_PORT")
	user := os.Getenv("TEST_DB_USER")
	password := os.Getenv("TEST_DB_PASSWORD")
	dbname := os.Getenv("TEST_DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Ошибка подключения к базе данных:", err)
	}

	DB = db
	fmt.Println("Подключение к базе данных успешно!")
}
