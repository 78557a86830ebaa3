package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"time"

	"foster/config"
	"foster/domain"
	"foster/services/foster/delivery"
	"foster/services/foster/repository"
	"foster/services/foster/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := config.BootDB(bootCtx)
	bootCancel()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}
	defer db.Close()

	retellKey, err := config.GetRetellAPIKey()
	if err != nil {
		log.Fatalf("Retell configuration error: %v", err)
		return
	}

	openaiClient, err := config.NewOpenAIClient()
	if err != nil {
		log.Fatalf("OpenAI configuration error: %v", err)
		return
	}

	mailDialer, err := config.NewMailDialer()
	if err != nil {
		log.Fatalf("Mailer configuration error: %v", err)
		return
	}
	senderEmail, err := config.GetEmailSender()
	if err != nil {
		log.Fatalf("Mailer configuration error: %v", err)
		return
	}

	metrics := config.NewMetrics()

	// Repositories
	fosterRepo := repository.NewFosterRepository(db)
	voiceRepo := repository.NewRetellRepository(config.GetRetellBaseURL(), retellKey, config.GetFromPhoneNumber())
	bioRepo := repository.NewOpenAIRepository(openaiClient, config.GetOpenAIModel())
	mailRepo := repository.NewMailRepository(mailDialer, senderEmail, config.GetPhotographyTeamEmail())

	// Use cases
	fosterUC := usecase.NewFosterUseCase(fosterRepo, 10*time.Second)
	callUC := usecase.NewCallUseCase(fosterRepo, voiceRepo, metrics, 30*time.Second)
	bioUC := usecase.NewBiographyUseCase(fosterRepo, voiceRepo, bioRepo, metrics, 2*time.Minute)
	photoUC := usecase.NewPhotographyUseCase(fosterRepo, mailRepo, metrics, log, 2*time.Minute)
	programUC := usecase.NewProgramUseCase(fosterRepo, voiceRepo, bioRepo, metrics, log, 10*time.Minute)

	// Delivery
	delivery.NewFosterDelivery(app, fosterUC)
	delivery.NewCallDelivery(app, callUC, bioUC)
	delivery.NewBiographyDelivery(app, bioUC)
	delivery.NewPhotographyDelivery(app, photoUC)
	delivery.NewProgramDelivery(app, programUC)
	delivery.NewHealthDelivery(app, metrics.Registry)

	jobCtx, stopJobs := context.WithCancel(context.Background())

	wg.Add(1)
	go func() {
		defer wg.Done()
		runPhotographySweep(jobCtx, photoUC, config.GetPhotoSweepInterval())
	}()

	if interval, ok := config.GetProgramRunInterval(); ok {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runProgramLoop(jobCtx, programUC, interval)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on %s", config.GetFiberListenAddress())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")
	stopJobs()

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}

// runPhotographySweep periodically emails the photography team about every
// foster flagged as needing photos.
func runPhotographySweep(ctx context.Context, photoUC domain.PhotographyUseCase, interval time.Duration) {
	log.Infof("Photography sweep running every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sent, err := photoUC.SweepPhotographyNeededUC(ctx)
			if err != nil {
				log.Errorf("Error in background photography email job: %v", err)
				continue
			}
			if sent > 0 {
				log.Infof("Photography sweep notified the team about %d fosters", sent)
			}
		}
	}
}

// runProgramLoop periodically triggers the foster program. Passes that
// would overlap an in-flight run are skipped by the run guard.
func runProgramLoop(ctx context.Context, programUC domain.ProgramUseCase, interval time.Duration) {
	log.Infof("Foster program running every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := programUC.RunProgramUC(ctx)
			if err != nil {
				if errors.Is(err, domain.ErrProgramRunning) {
					log.Warn("Skipping scheduled foster program run, previous run still in progress")
					continue
				}
				log.Errorf("Error running foster program: %v", err)
				continue
			}
			log.Infof("Scheduled foster program processed %d of %d fosters", result.Processed, result.Total)
		}
	}
}
