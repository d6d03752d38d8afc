package main

import (
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"krishi/config"
	"krishi/database"
	"krishi/entities"
	"krishi/pkg/logger"
	"krishi/pkg/middleware"
	"krishi/pkg/validation"
	"krishi/pkg/yield"
	"krishi/router"

	// Farm inputs
	farmCtrlImp "krishi/pkg/farm/controllerImp"
	farmRepoImp "krishi/pkg/farm/repositoryImp"
	farmSvcImp "krishi/pkg/farm/serviceImp"

	// Recommendations
	recCtrlImp "krishi/pkg/recommendation/controllerImp"
	recRepoImp "krishi/pkg/recommendation/repositoryImp"
	recSvcImp "krishi/pkg/recommendation/serviceImp"

	// Contact
	contactCtrlImp "krishi/pkg/contact/controllerImp"
	contactRepoImp "krishi/pkg/contact/repositoryImp"

	// Health
	healthCtrlImp "krishi/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	if cfg.EnvFileErr != nil {
		log.Debug("no .env file loaded", "error", cfg.EnvFileErr)
	}

	// 3) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal("database", "path", cfg.DBPath, "error", err)
	}

	// 4) Yield engine; a missing or broken model leaves it rule-based
	opts := []yield.Option{yield.WithLabels(entities.DisplayLabels{})}
	if cfg.ModelPath != "" {
		forest, err := yield.LoadForest(cfg.ModelPath)
		if err != nil {
			log.Warn("estimator not loaded, using rule-based prediction", "path", cfg.ModelPath, "error", err)
		} else {
			log.Info("estimator loaded", "path", cfg.ModelPath, "name", forest.Name, "trees", len(forest.Trees))
			opts = append(opts, yield.WithEstimator(forest))
		}
	}
	if cfg.DistrictAvgXLSX != "" {
		table, err := yield.LoadDistrictAverages(cfg.DistrictAvgXLSX)
		if err != nil {
			log.Warn("district averages not loaded, using crop averages", "path", cfg.DistrictAvgXLSX, "error", err)
		} else {
			log.Info("district averages loaded", "path", cfg.DistrictAvgXLSX, "districts", len(table))
			opts = append(opts, yield.WithDistrictAverages(table))
		}
	}
	if !cfg.YieldJitter {
		opts = append(opts, yield.NoJitter())
	}
	engine := yield.NewEngine(log, opts...)

	// 5) Repos/Services/Controllers
	fSvc := farmSvcImp.NewFarmService(farmRepoImp.New(db), engine, log)
	fCtrl := farmCtrlImp.New(fSvc)

	rSvc := recSvcImp.NewRecommendationService(recRepoImp.New(db), engine, log)
	rCtrl := recCtrlImp.New(rSvc)

	cCtrl := contactCtrlImp.New(contactRepoImp.New(db), log)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, engine)

	// 6) Echo
	e := echo.New()
	e.HideBanner = true
	v, err := validation.New()
	if err != nil {
		log.Fatal("validator", "error", err)
	}
	e.Validator = v
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))

	r := router.New(e, fCtrl, rCtrl, cCtrl, hCtrl)

	// 7) Start
	log.Info("listening", "port", cfg.Port, "engine_mode", engine.Mode())
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
