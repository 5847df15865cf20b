package handler

import (
	"work-log-server/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	userService     *service.UserService
	scheduleService *service.ScheduleService
	workLogService  *service.WorkLogService
	summaryService  *service.SummaryService
	validate        *validator.Validate
	logger          *logrus.Logger
}

func NewHandler(
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	workLogService *service.WorkLogService,
	summaryService *service.SummaryService,
) *Handler {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Handler{
		userService:     userService,
		scheduleService: scheduleService,
		workLogService:  workLogService,
		summaryService:  summaryService,
		validate:        validator.New(),
		logger:          logger,
	}
}

// RegisterRoutes mounts all endpoints on the app. The holiday route is
// registered before the slot route so the literal segment wins.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.register)
	auth.Post("/login", h.login)

	protected := api.Group("", h.AuthRequired())

	protected.Get("/schedule", h.getSchedule)
	protected.Put("/schedule", h.updateSchedule)

	protected.Get("/log/:date", h.getDayLog)
	protected.Put("/log/:date/holiday", h.setHoliday)
	protected.Put("/log/:date/:slot", h.saveEntry)

	protected.Get("/summary/daily/:date", h.dailySummary)
	protected.Post("/summary/daily/:date/notify", h.notifyDaily)
	protected.Get("/summary/monthly/:year/:month", h.monthlySummary)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return respondOK(c, fiber.Map{"status": "ok"})
}
