// Package api contains all endpoints available
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/Ahalya06/Eng-Scholar/db"
	"github.com/Ahalya06/Eng-Scholar/internal/session"
	"github.com/Ahalya06/Eng-Scholar/internal/storage"
	"github.com/Ahalya06/Eng-Scholar/middleware"
	"github.com/Ahalya06/Eng-Scholar/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Argon    *security.ArgonHash
	Sessions session.Store
	Blobs    storage.BlobStore
}

func NewRouter() (*API, error) {
	a := &API{}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = database

	makeLogger()

	a.Sessions, err = newSessionStore()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store, %w", err)
	}

	a.Blobs, err = storage.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob storage, %w", err)
	}

	a.Argon = security.New()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userEmail"); v != "" {
					fields = append(fields, zap.String("user", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	a.Router.MaxMultipartMemory = 5 << 20

	a.mountRoutes()

	return a, nil
}

// mountRoutes wires every endpoint onto a.Router. Split out of
// NewRouter so handler tests can mount the same routes over manually
// built dependencies.
func (a *API) mountRoutes() {
	gate := middleware.NewSessionMiddleware(a.Sessions)

	maxUploadSize := viper.GetInt64("upload.max_size")
	if maxUploadSize <= 0 {
		maxUploadSize = 16 << 20
	}

	r := a.Router

	// HEAD /heartbeat		-> Used to check if the server is alive
	r.HEAD("/heartbeat", a.Heartbeat)

	// HEAD /validate		-> Checks whether the caller holds a valid session
	r.HEAD("/validate", gate, a.Validate)

	// GET /			-> Landing page, the only public page
	r.GET("/", cacheFor(60), a.PageLanding)

	// GET/POST /register		-> Registration form / create a new account
	r.GET("/register", cacheFor(60), a.PageRegister)
	r.POST("/register", middleware.BodySizeLimiter(1<<20), a.UserRegister)

	// GET/POST /login		-> Login form / establish a session
	r.GET("/login", a.PageLogin)
	r.POST("/login", middleware.BodySizeLimiter(1<<20), a.UserLogin)

	// GET /logout			-> Destroys the caller's session
	r.GET("/logout", gate, a.UserLogout)

	// Informational pages, all behind the gate
	r.GET("/dashboard", gate, a.PageDashboard)
	r.GET("/scholarships", gate, a.PageScholarships)
	r.GET("/internships", gate, a.PageInternships)
	// Capital C kept for compatibility with the original links
	r.GET("/Courses", gate, a.PageCourses)
	r.GET("/projects", gate, a.PageProjects)

	// GET/POST /notes		-> Upload form / accept a note upload
	r.GET("/notes", gate, a.NoteForm)
	r.POST("/notes", gate, middleware.BodySizeLimiter(maxUploadSize), a.NoteUpload)

	// GET /view-notes		-> All notes grouped by branch
	r.GET("/view-notes", gate, a.NoteList)

	// GET /uploads/:branch/:filename -> Streams the blob bytes
	r.GET("/uploads/:branch/:filename", gate, a.NoteDownload)

	// GET/POST /memes		-> Comment board
	r.GET("/memes", gate, a.MemeList)
	r.POST("/memes", gate, middleware.BodySizeLimiter(1<<20), a.MemePost)
}

func newSessionStore() (session.Store, error) {
	if viper.GetString("session.backend") == "redis" {
		return session.NewRedisStore(
			viper.GetString("session.redis_addr"),
			viper.GetString("session.redis_password"),
		)
	}

	return session.NewMemoryStore(), nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
