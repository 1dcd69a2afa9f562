package tests

import (
	"os"
	"testing"

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

var (
	db  *inmemdb.DB
	app echoapi.Server

	usrRepo  user.Repository
	clsRepo  class.Repository
	examRepo exam.Repository
	matRepo  material.Repository
)

func TestMain(m *testing.M) {
	core.LoadConfig()
	core.Conf.Debug = false
	core.Conf.TestMode = true

	// set up DB & repos
	var err error
	if db, err = inmemdb.Open(); err != nil {
		panic(err)
	}
	usrRepo = inmemdb.NewUserRepository(db)
	clsRepo = inmemdb.NewClassRepository(db)
	examRepo = inmemdb.NewExamRepository(db)
	matRepo = inmemdb.NewStudyMaterialRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock()

	// set up server
	app = echoapi.NewServer(
		"",  /* addr */
		nil, /* shutdown */
		&echoapi.Deps{
			Logger:      logsvc.NewZapLogger(core.Conf),
			UserSvc:     user.NewService(usrRepo, mailSvc),
			ClassSvc:    class.NewService(clsRepo),
			ExamSvc:     exam.NewService(examRepo),
			MaterialSvc: material.NewService(matRepo),
		},
	)

	os.Exit(m.Run())
}

func resetDB() {
	db.Reset()
	emailsvc.ClearSentMessages()
}
