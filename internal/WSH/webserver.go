package wsh

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"sports-stats/config"
	"sports-stats/internal/models"
	plH "sports-stats/internal/playerHandlers"
	stH "sports-stats/internal/statsHandlers"
	tmH "sports-stats/internal/teamHandlers"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	teamsPerPage   = 5
	playersPerPage = 8
	adminPerPage   = 20
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	config    *config.Config
	log       *logrus.Logger
	templates *template.Template

	teams   *tmH.Handler
	players *plH.Handler
	stats   *stH.Handler

	// now задаёт дату в метаданных PDF.
	now func() time.Time

	httpServer *http.Server
}

func NewServer(cfg *config.Config, DB *gorm.DB, log *logrus.Logger) (*Server, error) {
	if DB == nil {
		return nil, errors.New("объект базы данных не инициализирован")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	registerFormTagNames()

	mainHandler := models.Handler{DB: DB, Log: log}
	s := &Server{
		config:    cfg,
		log:       log,
		templates: tmpl,
		teams:     &tmH.Handler{Handler: mainHandler},
		players:   &plH.Handler{Handler: mainHandler},
		stats:     &stH.Handler{Handler: mainHandler},
		now:       time.Now,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Router собирает все маршруты: публичные страницы, JSON API и админку.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(s.log), gin.Recovery())
	r.SetHTMLTemplate(s.templates)

	r.GET("/", s.index)
	r.GET("/equipos", s.listTeams)
	r.GET("/jugadores", s.listPlayers)
	r.GET("/estadisticas", s.listStatistics)
	r.GET("/equipo/:id", s.showTeam)
	r.GET("/generar_pdf", s.generatePDF)

	api := r.Group("/api")
	api.GET("/health", s.health)
	api.GET("/estadisticas", s.apiStatistics)

	s.registerAdmin(r.Group("/admin"))
	return r
}

// Handler — роутер, обёрнутый в CORS.
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: s.config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", requestIDHeader},
	}).Handler(s.Router())
}

// Start блокируется до остановки сервера. После Stop возвращает nil.
func (s *Server) Start() error {
	s.log.Infof("Сервер запущен на %s", s.config.HTTPAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen %s: %w", s.config.HTTPAddr, err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Остановка HTTP-сервера")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.html", gin.H{"Title": "Error", "Mensaje": msg})
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.log.WithError(err).WithFields(logrus.Fields{
		"path":       c.Request.URL.Path,
		"request_id": c.GetString(requestIDKey),
	}).Error("Ошибка обработки запроса")
	s.renderError(c, http.StatusInternalServerError, "Error interno del servidor.")
}
