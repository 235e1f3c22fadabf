package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"designdesk/infrastructure/cache"
	"designdesk/infrastructure/db"
	"designdesk/infrastructure/journal"
	"designdesk/infrastructure/ws"
	httpDelivery "designdesk/internal/delivery/http"
	wsDelivery "designdesk/internal/delivery/websocket"
	"designdesk/internal/entity"
	"designdesk/internal/repository"
	"designdesk/internal/usecase"
	"designdesk/pkg/jwt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("godotenv: no .env file loaded")
	}

	ctx := context.Background()

	mongoUri := os.Getenv("MONGODB_URI")
	mongoDbName := os.Getenv("MONGODB_DATABASE")
	if mongoDbName == "" {
		mongoDbName = "designdesk"
	}
	mongoDb, err := db.NewMongoStore(ctx, mongoUri, mongoDbName)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer mongoDb.Close(ctx)
	log.Println("Connected to MongoDB")

	// Repositories
	messageRepo := repository.NewMessageRepository(mongoDb.DB)
	notificationRepo := repository.NewNotificationRepository(mongoDb.DB)
	chatRepo := repository.NewChatRepository(mongoDb.DB)
	projectRepo := repository.NewProjectRepository(mongoDb.DB)
	projectUpdateRepo := repository.NewProjectUpdateRepository(mongoDb.DB)
	taskRepo := repository.NewTaskRepository(mongoDb.DB)
	userRepo := repository.NewUserRepository(mongoDb.DB)
	refreshTokenRepo := repository.NewRefreshTokenRepository(mongoDb.DB)

	// Layered chat store: Mongo, then journal, then bounded memory.
	journalPath := os.Getenv("CHAT_JOURNAL_PATH")
	if journalPath == "" {
		journalPath = filepath.Join("data", "chat-journal.jsonl")
	}
	chatJournal, err := journal.Open[entity.ChatMessage](journalPath)
	if err != nil {
		log.Fatalf("journal: %v", err)
	}
	defer chatJournal.Close()
	chatStore := repository.NewLayeredChatStore(chatRepo, chatJournal, cache.NewBuffer[entity.ChatMessage](0))

	// Event hub: Redis when configured, single-server memory hub otherwise.
	var hub ws.Hub
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		serverId := os.Getenv("SERVER_ID")
		if serverId == "" {
			serverId = "server-1"
		}
		log.Printf("Using Redis hub at %s with server ID %s", redisAddr, serverId)
		hub = ws.NewRedisHub(redisAddr, serverId)
	} else {
		log.Println("Using in-memory hub (single server)")
		hub = ws.NewMemoryHub()
	}
	go hub.Run()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-change-me"
		log.Println("Warning: using default JWT secret; set JWT_SECRET for production")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, 15*time.Minute, 30*24*time.Hour)

	// Usecases
	dispatcher := usecase.NewDispatcher()
	notificationUc := usecase.NewNotificationUsecase(notificationRepo, hub)
	messageUc := usecase.NewMessageUsecase(messageRepo, notificationUc, hub, dispatcher)
	chatUc := usecase.NewChatUsecase(chatStore)
	projectUpdateUc := usecase.NewProjectUpdateUsecase(projectUpdateRepo)
	projectUc := usecase.NewProjectUsecase(projectRepo, taskRepo, chatUc, projectUpdateUc, dispatcher)
	taskUc := usecase.NewTaskUsecase(taskRepo, notificationUc, dispatcher)
	authUc := usecase.NewAuthUsecase(userRepo, refreshTokenRepo, jwtManager)
	userUc := usecase.NewUserUsecase(userRepo)

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(corsMiddleware)

	handlers := httpDelivery.Handlers{
		Message:       httpDelivery.NewMessageHandler(messageUc),
		Notification:  httpDelivery.NewNotificationHandler(notificationUc),
		Chat:          httpDelivery.NewChatHandler(chatUc),
		Project:       httpDelivery.NewProjectHandler(projectUc),
		ProjectUpdate: httpDelivery.NewProjectUpdateHandler(projectUpdateUc),
		Task:          httpDelivery.NewTaskHandler(taskUc),
		Auth:          httpDelivery.NewAuthHandler(authUc),
		User:          httpDelivery.NewUserHandler(userUc),
		Websocket:     wsDelivery.NewHandler(hub),
	}
	httpDelivery.MapRoutes(router, handlers, httpDelivery.NewAuthMiddleware(authUc))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("HTTP server is running on :%s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := os.Getenv("CORS_ORIGIN")
		if origin == "" {
			origin = "http://localhost:3000"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
