package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Quill/internal/api/middleware"
	"Quill/internal/api/routes"
	"Quill/internal/auth"
	"Quill/internal/config"
	"Quill/internal/core/engagement"
	"Quill/internal/core/posts"
	"Quill/internal/core/users"
	postgresRepo "Quill/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpire)
	if err != nil {
		log.Fatal("Failed to create token service:", err)
	}

	// Initialize repositories and services
	userRepo := postgresRepo.NewUserRepository(db)
	postRepo := postgresRepo.NewPostRepository(db)
	likeRepo := postgresRepo.NewLikeRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)

	userService := users.NewUserService(userRepo, tokens)
	postService := posts.NewPostService(postRepo, userRepo, commentRepo)
	engagementService := engagement.NewService(postRepo, likeRepo, commentRepo)

	router := routes.NewRouter(routes.Services{
		Users:          userService,
		Posts:          postService,
		Engagement:     engagementService,
		Auth:           middleware.NewAuthMiddleware(tokens),
		DB:             db,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Quill API starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
