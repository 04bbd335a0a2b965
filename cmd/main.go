package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/config"
	"github.com/lshigami/mcqdesk/database"
	_ "github.com/lshigami/mcqdesk/docs" // Swagger docs
	adminctrl "github.com/lshigami/mcqdesk/internal/controller/admin"
	userctrl "github.com/lshigami/mcqdesk/internal/controller/user"
	"github.com/lshigami/mcqdesk/internal/logger"
	"github.com/lshigami/mcqdesk/internal/model"
	"github.com/lshigami/mcqdesk/internal/repository"
	"github.com/lshigami/mcqdesk/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title MCQ Desk API
// @version 1.0
// @description Assessment authoring (manual, AI and CSV bulk import), learner attempts and attendance.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	// Until the config is loaded
	logger.Init("info", false)

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewDraftStore,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewAssessmentRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewAttendanceRepository,
		),

		// Services
		fx.Provide(
			service.NewAssessmentService,
			service.NewQuestionImportService,
			service.NewGeminiTextGenerator,
			service.NewQuestionGeneratorService,
			service.NewDraftService,
			service.NewAttemptService,
			service.NewAttendanceService,
		),

		// Controllers
		fx.Provide(
			adminctrl.NewAssessmentController,
			adminctrl.NewQuestionImportController,
			adminctrl.NewQuestionGenerationController,
			adminctrl.NewDraftController,
			adminctrl.NewAttendanceController,
			userctrl.NewAssessmentController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	switch cfg.Server.GinMode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.GinMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

type Controllers struct {
	fx.In

	Assessments *adminctrl.AssessmentController
	Import      *adminctrl.QuestionImportController
	Generation  *adminctrl.QuestionGenerationController
	Drafts      *adminctrl.DraftController
	Attendance  *adminctrl.AttendanceController
	Learner     *userctrl.AssessmentController
}

func RegisterRoutes(router *gin.Engine, ctrls Controllers) {
	admin := router.Group("/api/v1/admin")
	{
		assessments := admin.Group("/assessments")
		assessments.POST("", ctrls.Assessments.CreateAssessment)
		assessments.GET("", ctrls.Assessments.ListAssessments)
		assessments.GET("/:id", ctrls.Assessments.GetAssessment)
		assessments.POST("/:id/publish", ctrls.Assessments.PublishAssessment)
		assessments.POST("/:id/questions", ctrls.Assessments.AddQuestions)
		assessments.DELETE("/:id/questions/:question_id", ctrls.Assessments.DeleteQuestion)
		assessments.POST("/:id/questions/import", ctrls.Import.ImportQuestions)

		questions := admin.Group("/questions")
		questions.POST("/import/preview", ctrls.Import.PreviewImport)
		questions.GET("/import/template", ctrls.Import.DownloadTemplate)
		questions.POST("/generate", ctrls.Generation.GenerateQuestions)

		drafts := admin.Group("/drafts")
		drafts.PUT("/:owner/:key", ctrls.Drafts.SaveDraft)
		drafts.GET("/:owner/:key", ctrls.Drafts.LoadDraft)
		drafts.DELETE("/:owner/:key", ctrls.Drafts.DeleteDraft)

		attendance := admin.Group("/attendance")
		attendance.POST("/sessions/:session_id", ctrls.Attendance.MarkAttendance)
		attendance.GET("/sessions/:session_id", ctrls.Attendance.ListSession)
		attendance.GET("/students/:student_id/summary", ctrls.Attendance.StudentSummary)
	}

	user := router.Group("/api/v1")
	{
		user.GET("/assessments", ctrls.Learner.ListAssessments)
		user.GET("/assessments/:id", ctrls.Learner.GetAssessment)
		user.POST("/assessments/:id/attempts", ctrls.Learner.SubmitAttempt)
		user.GET("/assessments/:id/my-attempts", ctrls.Learner.ListMyAttempts)
		user.GET("/attempts/:attempt_id", ctrls.Learner.GetAttempt)
	}
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, ctrls Controllers) {
	RegisterRoutes(router, ctrls)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("MCQ Desk API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Assessment{},
		&model.Question{},
		&model.Attempt{},
		&model.Answer{},
		&model.AttendanceRecord{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
