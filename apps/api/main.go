package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/matokeo/apps/api/echo"
	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/catalog"
	"github.com/trezcool/matokeo/core/mark"
	"github.com/trezcool/matokeo/core/marksheet"
	"github.com/trezcool/matokeo/core/student"
	logsvc "github.com/trezcool/matokeo/services/logger"
	"github.com/trezcool/matokeo/storage/database/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!(conf.Debug || conf.TestMode))

	// set up DB
	db := inmemdb.Open()
	if conf.Seed.Demo {
		inmemdb.Seed(db, inmemdb.SeedOptions{RandSeed: conf.Seed.RandSeed})
		logger.Info(fmt.Sprintf("Demo data seeded : randSeed %d", conf.Seed.RandSeed))
	}

	// set up services
	catalogSvc := catalog.NewService(inmemdb.NewCatalogRepository(db))
	studentSvc := student.NewService(inmemdb.NewStudentRepository(db))
	markSvc := mark.NewService(inmemdb.NewMarkRepository(db), studentSvc, catalogSvc)
	marksheetSvc := marksheet.NewService(studentSvc, markSvc, catalogSvc)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	if err := core.InitValidators(validate, translator); err != nil {
		logger.Fatal(fmt.Sprintf("initializing validators: %v", err), err)
	}
	if err := student.InitValidators(validate, translator); err != nil {
		logger.Fatal(fmt.Sprintf("initializing student validators: %v", err), err)
	}

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:         conf,
			Logger:       logger,
			CatalogSvc:   catalogSvc,
			StudentSvc:   studentSvc,
			MarkSvc:      markSvc,
			MarksheetSvc: marksheetSvc,
			Validate:     validate,
			Translator:   translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
