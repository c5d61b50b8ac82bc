package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/catalog"
	"github.com/trezcool/matokeo/core/mark"
	"github.com/trezcool/matokeo/core/marksheet"
	"github.com/trezcool/matokeo/core/student"
	logsvc "github.com/trezcool/matokeo/services/logger"
	"github.com/trezcool/matokeo/storage/database/inmem"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!(conf.Debug || conf.TestMode))

	validate := validator.New()
	if err := core.InitValidators(validate, core.NewTranslator()); err != nil {
		logger.Fatal(fmt.Sprintf("initializing validators: %v", err), err)
	}

	// the store lives in memory: results are computed on the seeded demo data
	db := inmemdb.Open()
	inmemdb.Seed(db, inmemdb.SeedOptions{RandSeed: conf.Seed.RandSeed})

	catalogSvc := catalog.NewService(inmemdb.NewCatalogRepository(db))
	studentSvc := student.NewService(inmemdb.NewStudentRepository(db))
	markSvc := mark.NewService(inmemdb.NewMarkRepository(db), studentSvc, catalogSvc)

	// start CLI
	cli := commandLine{
		validate:     validate,
		marksheetSvc: marksheet.NewService(studentSvc, markSvc, catalogSvc),
		schoolName:   conf.SchoolName,
		out:          os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}
