package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/voicedoc/clinic-api/internal/audit"
	"github.com/voicedoc/clinic-api/internal/auth"
	"github.com/voicedoc/clinic-api/internal/config"
	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/handlers"
	"github.com/voicedoc/clinic-api/internal/infra/cache"
	infraRepo "github.com/voicedoc/clinic-api/internal/infra/repository"
	"github.com/voicedoc/clinic-api/internal/middleware"
	ucAccount "github.com/voicedoc/clinic-api/internal/usecase/account"
	ucCatalog "github.com/voicedoc/clinic-api/internal/usecase/catalog"
	ucReservation "github.com/voicedoc/clinic-api/internal/usecase/reservation"
)

// Deps are the process-wide collaborators built in cmd/api. Redis and
// Images may be nil.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger zerolog.Logger
	Audit  *audit.Dispatcher
	Redis  *redis.Client
	Images domain.ImageStore
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	tokens := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	var (
		revocations  middleware.RevocationChecker
		revoker      ucAccount.Revoker
		subjectCache ucCatalog.SubjectCache
	)
	if d.Redis != nil {
		store := cache.NewRevocationStore(d.Redis)
		revocations, revoker = store, store
		subjectCache = cache.NewSubjectCache(d.Redis, cfg.SubjectCacheTTL)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	reservationUC := handlers.ReservationUseCases{
		Weekdays: ucReservation.NewListWorkingWeekdays(reservationRepo),
		Slots:    ucReservation.NewListSlotsForDate(reservationRepo, cfg.Timezone),
		Create: ucReservation.NewCreateReservation(
			reservationRepo,
			d.Images,
			d.Audit,
			cfg.Timezone,
			d.Logger,
		),
		Cancel:   ucReservation.NewCancelReservation(reservationRepo, d.Audit),
		Complete: ucReservation.NewCompleteReservation(reservationRepo, d.Audit),
		Detail:   ucReservation.NewGetReservationDetail(reservationRepo, cfg.MediaBaseURL),
		Mine:     ucReservation.NewListMyReservations(reservationRepo),
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucAccount.NewSignup(userRepo, d.Audit, cfg.EmailDomainCheck),
		ucAccount.NewCheckEmail(userRepo, cfg.EmailDomainCheck),
		ucAccount.NewSignin(userRepo, tokens, d.Audit),
		ucAccount.NewSignout(revoker, d.Audit),
		d.Logger,
	)

	catalogHandler := handlers.NewCatalogHandler(
		ucCatalog.NewListSubjects(catalogRepo, subjectCache, cfg.MediaBaseURL, d.Logger),
		ucCatalog.NewListDoctorsBySubject(catalogRepo, cfg.MediaBaseURL),
		userRepo,
		d.Logger,
	)

	reservationHandler := handlers.NewReservationHandler(
		reservationUC,
		cfg.MaxUploadBytes,
		d.Logger,
	)

	authRequired := middleware.AuthMiddleware(tokens, revocations, userRepo, d.Logger)

	// ======================================================
	// 🩺 HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 👤 USERS
	// ======================================================
	users := r.Group("/users")
	{
		users.POST("/signup", authHandler.Signup)
		users.POST("/signin", authHandler.Signin)
		users.POST("/email_check", authHandler.EmailCheck)
		users.POST("/password_check", authHandler.PasswordCheck)
		users.POST("/signout", authRequired, authHandler.Signout)
	}

	// ======================================================
	// 📅 RESERVATIONS
	// ======================================================
	res := r.Group("/reservations", authRequired)
	{
		res.GET("/subject", catalogHandler.ListSubjects)
		res.GET("/subject/:id", catalogHandler.ListDoctors)
		res.GET("/time/:doctorId", reservationHandler.Availability)

		res.GET("", reservationHandler.Detail)
		res.GET("/mine", middleware.RequirePatient(), reservationHandler.Mine)
		res.PATCH("", reservationHandler.Update)
		res.POST("", middleware.RequirePatient(), reservationHandler.Create)
	}
}
