package echoapi

import (
	"context"
	"net/http"
	"os"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/smartpaperhq/smartpaper/core"
	"github.com/smartpaperhq/smartpaper/core/class"
	"github.com/smartpaperhq/smartpaper/core/exam"
	"github.com/smartpaperhq/smartpaper/core/material"
	"github.com/smartpaperhq/smartpaper/core/user"
)

type (
	// Deps holds the server's service dependencies.
	Deps struct {
		Logger      core.Logger
		UserSvc     *user.Service
		ClassSvc    *class.Service
		ExamSvc     *exam.Service
		MaterialSvc *material.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		addr     string
		shutdown chan<- os.Signal
		deps     *Deps
		app      *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(addr string, shutdown chan<- os.Signal, deps *Deps) Server {
	s := &server{
		addr:     addr,
		shutdown: shutdown,
		deps:     deps,
		app:      echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !core.Conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.signalShutdown)
	s.app.Debug = debug

	s.app.GET("/", home)

	api := s.app.Group("/api")
	appJWTConfig.SigningKey = []byte(core.Conf.SecretKey)
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerAuthAPI(api, jwt, s.deps.UserSvc)
	registerUserAPI(api, jwt, s.deps.UserSvc)
	registerClassAPI(api, jwt, s.deps.ClassSvc)
	registerExamAPI(api, jwt, s.deps.ExamSvc)
	registerStudyMaterialAPI(api, jwt, s.deps.MaterialSvc)
	registerAdminAPI(api, jwt, s.deps.UserSvc, s.deps.ClassSvc)
}

// signalShutdown asks the main goroutine to gracefully shut the server down.
func (s *server) signalShutdown() {
	if s.shutdown != nil {
		s.shutdown <- syscall.SIGTERM
	}
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to SmartPaper API!")
}
