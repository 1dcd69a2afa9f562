package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	echoapi "github.com/smartpaperhq/smartpaper/apps/api/echo"
	"github.com/smartpaperhq/smartpaper/core"
	"github.com/smartpaperhq/smartpaper/core/class"
	"github.com/smartpaperhq/smartpaper/core/exam"
	"github.com/smartpaperhq/smartpaper/core/material"
	"github.com/smartpaperhq/smartpaper/core/user"
	emailsvc "github.com/smartpaperhq/smartpaper/services/email"
	logsvc "github.com/smartpaperhq/smartpaper/services/logger"
	inmemdb "github.com/smartpaperhq/smartpaper/storage/database/inmem"
)

func main() {
	conf := core.LoadConfig()

	// set up logger
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewZapLogger(conf)
	} else {
		logger = logsvc.NewRollbarLogger(log.New(os.Stdout, "", log.LstdFlags), conf)
	}

	// set up DB & repos
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal("opening database", err)
	}
	usrRepo := inmemdb.NewUserRepository(db)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	usrSvc := user.NewService(usrRepo, mailSvc)
	clsSvc := class.NewService(inmemdb.NewClassRepository(db))
	examSvc := exam.NewService(inmemdb.NewExamRepository(db))
	mtrlSvc := material.NewService(inmemdb.NewStudyMaterialRepository(db))

	if conf.Debug {
		seedAdmin(usrSvc, logger)
	}

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		conf.Address(),
		shutdown,
		&echoapi.Deps{
			Logger:      logger,
			UserSvc:     usrSvc,
			ClassSvc:    clsSvc,
			ExamSvc:     examSvc,
			MaterialSvc: mtrlSvc,
		},
	)
	go app.Start()

	<-shutdown
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Fatal("graceful shutdown failed", err)
	}
}

// seedAdmin guarantees a known admin account in DEV mode. The store is
// memory-backed so every restart starts empty.
func seedAdmin(svc *user.Service, logger core.Logger) {
	usr, err := svc.Create(user.NewUser{
		Username: "admin",
		Password: "Adm1n-Dev!",
		Email:    "admin@localhost",
		Role:     user.RoleAdmin,
		FullName: "Dev Admin",
	})
	if err != nil {
		logger.Fatal("seeding admin user", err)
	}
	logger.Info("seeded DEV admin user", map[string]interface{}{"id": usr.ID, "username": usr.Username})
}
