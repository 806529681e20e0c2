package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"citamed-service/internal/app/config"
	"citamed-service/internal/app/delivery/http/controllers"
	"citamed-service/internal/app/delivery/http/middlewares"
	"citamed-service/internal/app/delivery/http/routers"
	"citamed-service/internal/app/drivers/database"
	"citamed-service/internal/app/drivers/logger"
	smtpdriver "citamed-service/internal/app/drivers/mailer"
	"citamed-service/internal/app/drivers/messaging"
	miniodriver "citamed-service/internal/app/drivers/storage"
	"citamed-service/internal/app/services/backend"
	"citamed-service/internal/app/services/core/admins"
	"citamed-service/internal/app/services/core/agenda"
	"citamed-service/internal/app/services/core/auth"
	"citamed-service/internal/app/services/core/booking"
	"citamed-service/internal/app/services/core/doctors"
	"citamed-service/internal/app/services/core/patients"
	"citamed-service/internal/app/services/core/users"
	"citamed-service/internal/app/services/identity"
	"citamed-service/internal/app/services/shared/locker"
	"citamed-service/internal/app/services/shared/mailer"
	redisrepo "citamed-service/internal/app/services/shared/redis"
	"citamed-service/internal/app/services/shared/storage"
	"citamed-service/internal/app/services/shared/whatsapp"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	stopWorker := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) (stopWorker func()) {
	zapLogger := logger.NewZapLogger(bootstrap.DriverConfig, bootstrap.InternalConfig)

	rabbitMQConnection := messaging.NewRabbitMQ(bootstrap.DriverConfig)
	minioClient := miniodriver.NewMinio(bootstrap.DriverConfig)
	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)

	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	minioStorage := storage.NewMinioStorage(minioClient)

	mailerService, err := mailer.NewMailerService(
		smtpClient,
		rabbitMQConnection,
		zapLogger,
		bootstrap.InternalConfig.App.RabbitMQMailerQueue,
		bootstrap.InternalConfig.App.NotificationRatePerSecond,
	)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize mailer service: %v", err)
	}
	if err := mailerService.StartConsumer(context.Background()); err != nil {
		bootstrap.Logger.Fatalf("Failed to start mailer consumer: %v", err)
	}

	whatsappService, err := whatsapp.NewWhatsAppService(
		rabbitMQConnection,
		zapLogger,
		bootstrap.InternalConfig.App.RabbitMQWhatsAppQueue,
	)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize whatsapp service: %v", err)
	}

	// Clinic backend clients
	clinicBaseUrl := bootstrap.InternalConfig.Clinic.BaseUrl
	agendaBackendClient := backend.NewAgendaBackendClient(clinicBaseUrl)
	appointmentBackendClient := backend.NewAppointmentBackendClient(clinicBaseUrl)
	doctorBackendClient := backend.NewDoctorBackendClient(clinicBaseUrl)
	patientBackendClient := backend.NewPatientBackendClient(clinicBaseUrl)
	administratorBackendClient := backend.NewAdministratorBackendClient(clinicBaseUrl)

	// Identity provider
	identityClient := identity.NewIdentityClient(
		bootstrap.InternalConfig.Identity.BaseUrl,
		bootstrap.InternalConfig.Identity.APIKey,
	)

	// User directory
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		identityClient,
		patientBackendClient,
		redisRepository,
		bootstrap.InternalConfig,
		zapLogger,
	)
	authController := controllers.NewAuthController(zapLogger, authUsecase)

	// Agenda
	agendaUsecase := agenda.NewAgendaUsecase(
		agendaBackendClient,
		doctorBackendClient,
		lockerService,
		bootstrap.InternalConfig,
		zapLogger,
	)
	agendaController := controllers.NewAgendaController(zapLogger, agendaUsecase)

	// Booking
	bookingUsecase := booking.NewBookingUsecase(
		appointmentBackendClient,
		agendaBackendClient,
		patientBackendClient,
		doctorBackendClient,
		administratorBackendClient,
		mailerService,
		whatsappService,
		bootstrap.InternalConfig,
		zapLogger,
	)
	appointmentController := controllers.NewAppointmentController(zapLogger, bookingUsecase)

	// People
	doctorUsecase := doctors.NewDoctorUsecase(doctorBackendClient, bootstrap.InternalConfig, zapLogger)
	doctorController := controllers.NewDoctorController(zapLogger, doctorUsecase)

	patientUsecase := patients.NewPatientUsecase(patientBackendClient, bootstrap.InternalConfig, zapLogger)
	patientController := controllers.NewPatientController(zapLogger, patientUsecase)

	administratorUsecase := admins.NewAdministratorUsecase(administratorBackendClient, userMongoRepository, zapLogger)
	administratorController := controllers.NewAdministratorController(zapLogger, administratorUsecase)

	documentController := controllers.NewDocumentController(
		zapLogger,
		minioStorage,
		bootstrap.DriverConfig.Minio.BucketName,
		int64(bootstrap.InternalConfig.App.RequestBodyLimitInMegabyte),
	)

	// Middlewares
	middlewareInstance := &middlewares.Middlewares{
		Log:            zapLogger,
		AuthUsecase:    authUsecase,
		InternalConfig: bootstrap.InternalConfig,
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		authController,
		agendaController,
		appointmentController,
		doctorController,
		patientController,
		administratorController,
		documentController,
	)

	// Consistency worker
	consistencyWorker := booking.NewWorker(
		zapLogger,
		bootstrap.InternalConfig,
		lockerService,
		appointmentBackendClient,
		agendaBackendClient,
	)
	consistencyWorker.Start(context.Background())

	return consistencyWorker.Stop
}
