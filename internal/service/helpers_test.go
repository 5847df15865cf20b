package service

import (
	"testing"
	"time"

	"work-log-server/internal/repository"
	"work-log-server/pkg/notify"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	schedule *ScheduleService
	workLog  *WorkLogService
	summary  *SummaryService
	users    *UserService
	notifier *notify.MockNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}

	userRepo, err := repository.NewGormUserRepository(db)
	if err != nil {
		t.Fatalf("new user repository: %v", err)
	}
	scheduleRepo, err := repository.NewGormScheduleConfigRepository(db)
	if err != nil {
		t.Fatalf("new schedule repository: %v", err)
	}
	workLogRepo, err := repository.NewGormWorkLogRepository(db)
	if err != nil {
		t.Fatalf("new work log repository: %v", err)
	}

	notifier := notify.NewMockNotifier()
	scheduleService := NewScheduleService(scheduleRepo)

	return &testEnv{
		schedule: scheduleService,
		workLog:  NewWorkLogService(workLogRepo, scheduleService),
		summary:  NewSummaryService(workLogRepo, scheduleService, notifier, "default-dest"),
		users:    NewUserService(userRepo, scheduleRepo, "test-secret", 72*time.Hour),
		notifier: notifier,
	}
}
