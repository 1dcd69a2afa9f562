package main

import (
	"log"
	"os"

	"github.com/smartpaperhq/smartpaper/core"
	"github.com/smartpaperhq/smartpaper/core/user"
	emailsvc "github.com/smartpaperhq/smartpaper/services/email"
	inmemdb "github.com/smartpaperhq/smartpaper/storage/database/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	core.LoadConfig()

	// set up DB
	db, err := inmemdb.Open()
	errAndDie(err)

	// start CLI
	cli := commandLine{
		usrSvc: user.NewService(inmemdb.NewUserRepository(db), emailsvc.NewConsoleService()),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
