package main

import (
	"fmt"
	"log"
	"os"
	_ "uni_schedule/docs"
	"uni_schedule/internal/auth"
	"uni_schedule/internal/handlers"
	"uni_schedule/internal/schedule"
	"uni_schedule/internal/storage"
	"uni_schedule/internal/tasks"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Расписание занятий в Telegram Mini App
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectDatabase()

	if err := storage.Migrate(); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()

	scheduleClient := schedule.NewClient()
	defer scheduleClient.Close()
	scheduleCache := schedule.NewCache(storage.RedisClient)

	cronScheduler := tasks.InitScheduler(scheduleClient, scheduleCache)
	defer cronScheduler.Stop()

	h := handlers.New(scheduleClient, scheduleCache)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("", auth.Middleware())
	{
		api.POST("/auth", h.Auth)
		api.GET("/schedule", h.GetSchedule)
		api.POST("/hide_subject", h.HideSubject)
		api.POST("/unhide_subject", h.UnhideSubject)
		api.GET("/get_hidden_subjects", h.GetHiddenSubjects)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
