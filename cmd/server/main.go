package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"work-log-server/internal/config"
	"work-log-server/internal/handler"
	"work-log-server/internal/repository"
	"work-log-server/internal/service"
	"work-log-server/pkg/notify"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load config:", err)
	}

	if level, parseErr := logrus.ParseLevel(cfg.LogLevel); parseErr == nil {
		logrus.SetLevel(level)
	}
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Foreign key support has to be enabled per connection for SQLite.
	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	userRepo, err := repository.NewGormUserRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create user repository")
	}

	scheduleRepo, err := repository.NewGormScheduleConfigRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create schedule config repository")
	}

	workLogRepo, err := repository.NewGormWorkLogRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create work log repository")
	}

	notifier, destination, err := buildNotifier(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create notifier")
	}

	userService := service.NewUserService(userRepo, scheduleRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	scheduleService := service.NewScheduleService(scheduleRepo)
	workLogService := service.NewWorkLogService(workLogRepo, scheduleService)
	summaryService := service.NewSummaryService(workLogRepo, scheduleService, notifier, destination)

	if err := userService.InitializeAdmin(cfg.BaseAdminEmail); err != nil {
		logrus.Infof("Warning: Failed to initialize admin: %v", err)
	} else if cfg.BaseAdminEmail != "" {
		logrus.Infof("Admin initialized with email: %s", cfg.BaseAdminEmail)
	}

	app := fiber.New(fiber.Config{
		AppName: "work-log-server",
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	h := handler.NewHandler(userService, scheduleService, workLogService, summaryService)
	h.RegisterRoutes(app)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.Fatal("Server stopped:", err)
		}
	}()

	logrus.Infof("Server started on port %s. Press Ctrl+C to stop.", cfg.Port)
	<-stop

	if err := app.Shutdown(); err != nil {
		logrus.Infof("Error shutting down server: %v", err)
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}

// buildNotifier constructs the notifier variant named by the config. The
// driver is an explicit choice; credentials are only read for the selected
// variant.
func buildNotifier(cfg *config.ServerConfig) (notify.Notifier, string, error) {
	switch cfg.NotifierDriver {
	case config.NotifierTelegram:
		n, err := notify.NewTelegramNotifier(cfg.TelegramToken)
		if err != nil {
			return nil, "", err
		}
		return n, cfg.TelegramChatID, nil
	case config.NotifierSMTP:
		n := notify.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPUsername, cfg.SMTPPassword)
		return n, "", nil
	default:
		return notify.NewMockNotifier(), "mock", nil
	}
}
