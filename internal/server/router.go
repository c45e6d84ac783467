package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"traineetracker/internal/domain/trainee"
	"traineetracker/internal/domain/upload"
	"traineetracker/internal/middleware"
	"traineetracker/internal/storage"
)

type Options struct {
	UploadURLPrefix string
	MaxUploadBytes  int64
	CORSOrigins     []string
	RateLimitRPS    float64
	RateLimitBurst  int
	// TrustedProxies decides whose X-Forwarded-For feeds ClientIP. Nil trusts
	// nobody.
	TrustedProxies []string
}

// NewRouter wires the trainee and upload modules on top of an explicit store
// handle and blob store.
func NewRouter(db *gorm.DB, store storage.Store, log zerolog.Logger, opts Options) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		log.Error().Err(err).Msg("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(opts.CORSOrigins))
	if opts.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).Middleware())
	}

	traineeHandler := trainee.NewHandler(trainee.NewService(trainee.NewRepository(db)))
	traineeHandler.RegisterRoutes(r)

	uploadService := upload.NewService(upload.NewRepository(db), store, opts.UploadURLPrefix, opts.MaxUploadBytes)
	upload.NewHandler(uploadService, store).RegisterRoutes(r)

	r.GET("/healthz", health(db))

	return r
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
