package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/flashfusion/studio-api/configs"
	"github.com/flashfusion/studio-api/internal/api/handlers"
	"github.com/flashfusion/studio-api/internal/gemini"
	job "github.com/flashfusion/studio-api/internal/jobs"
	"github.com/flashfusion/studio-api/internal/queue"
	"github.com/flashfusion/studio-api/internal/repository"
	"github.com/flashfusion/studio-api/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	backend, err := gemini.NewClient(context.Background(), *cfg)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    16 * 1024 * 1024, // 16 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	jobRepo := repository.NewJobRepository()
	cacheRepo := repository.NewMediaCacheRepository()
	brandKitRepo := repository.NewBrandKitRepository()

	var assets service.AssetStore
	if cfg.R2.BucketName != "" {
		assets = service.NewR2Service(*cfg)
	}

	mediaService := service.NewMediaService(backend, cacheRepo, assets, cfg.VideoPollInterval)
	textService := service.NewTextService(backend)
	campaignService := service.NewCampaignService(mediaService, textService, brandKitRepo)
	ideaService := service.NewIdeaService(backend)

	// With Redis configured, jobs run through asynq; otherwise each job
	// runs on its own goroutine inside this process.
	var dispatcher service.Dispatcher
	var asynqClient *asynq.Client
	var redisConn asynq.RedisClientOpt
	if cfg.RedisURI != "" {
		redisConn = asynq.RedisClientOpt{Addr: cfg.RedisURI}
		asynqClient = asynq.NewClient(redisConn)
		defer asynqClient.Close()
		dispatcher = queue.NewDispatcher(asynqClient)
	}

	jobService := service.NewJobService(jobRepo, campaignService, dispatcher)

	campaignH := handlers.NewCampaignHandler(*cfg, jobService)
	ideaH := handlers.NewIdeaHandler(ideaService)
	brandKitH := handlers.NewBrandKitHandler(brandKitRepo)

	api := app.Group("/api")
	api.Post("/campaigns", campaignH.CreateCampaign)
	api.Get("/campaigns/status", campaignH.JobStatus)
	api.Get("/brand-kits", brandKitH.ListBrandKits)
	api.Get("/ideas/suggestions", ideaH.Suggestions)
	api.Post("/ideas/summarize", ideaH.Summarize)

	// cron jobs
	statsJob := job.NewStoreStatsJob(jobRepo, cacheRepo)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", statsJob.LogStats)
	c.Start()

	if asynqClient != nil {
		queueW := queue.NewQueue(jobService)

		go func() {
			server := asynq.NewServer(redisConn, asynq.Config{
				Concurrency: 10,
			})

			mux := asynq.NewServeMux()
			mux.HandleFunc(queue.TaskTypeGenerateCampaign, queueW.HandleGenerateCampaignTask)

			log.Println("Starting the Asynq server...")
			if err := server.Run(mux); err != nil {
				log.Fatalf("Could not start Asynq server: %v", err)
			}
		}()
	}

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on %s", cfg.ListenAddr)

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
