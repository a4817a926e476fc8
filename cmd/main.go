package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "linkup/api/v1"
	"linkup/config"
	"linkup/dao"
	"linkup/internal/auth"
	"linkup/internal/upload"
	myvalidator "linkup/internal/validator"
	"linkup/middleware"
	"linkup/model"
	"linkup/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	rdb, err := config.NewRedis(context.Background(), cfg.Redis)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("connect mysql: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.PostLike{}, &model.Comment{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	saver, err := upload.NewSaver(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireHours)*time.Hour)
	sessions := auth.NewSessionManager(rdb)

	userDAO := dao.NewUserDAO(db)
	postDAO := dao.NewPostDAO(db)
	userService := service.NewUserService(userDAO, tokens, sessions)
	postService := service.NewPostService(postDAO, userDAO)
	userAPI := v1.NewUserAPI(userService)
	postAPI := v1.NewPostAPI(postService, saver)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("notblank", myvalidator.NotBlank); err != nil {
			log.Fatalf("register validator: %v", err)
		}
	}

	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/uploads", cfg.Upload.Dir)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "LinkUp API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth":  "/api/auth/*",
				"posts": "/api/posts/*",
				"users": "/api/users/*",
			},
		})
	})

	public := r.Group("/api")
	{
		public.POST("/auth/signup", userAPI.Signup)
		public.POST("/auth/login", userAPI.Login)
	}

	private := r.Group("/api")
	private.Use(middleware.Auth(tokens, sessions))
	{
		private.POST("/auth/logout", userAPI.Logout)
		private.GET("/auth/me", userAPI.Me)
		private.PUT("/auth/profile", userAPI.UpdateProfile)

		private.POST("/posts", postAPI.Create)
		private.GET("/posts", postAPI.List)
		private.PUT("/posts/:id", postAPI.Update)
		private.DELETE("/posts/:id", postAPI.Delete)
		private.POST("/posts/:id/like", postAPI.Like)
		private.POST("/posts/:id/comment", postAPI.Comment)
		private.DELETE("/posts/:id/comment/:commentId", postAPI.DeleteComment)

		private.GET("/users/:id", postAPI.Profile)
	}

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
