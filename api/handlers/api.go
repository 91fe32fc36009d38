package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/casaverde/casa-verde-api/api"
	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	"github.com/casaverde/casa-verde-api/storage"
)

// App stores the router, db connection and config, so it can be reused
type App struct {
	Router   *mux.Router
	DB       *sql.DB
	Config   config.Config
	Uploader storage.Uploader
	Location *time.Location
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	auth := api.Auth{Secret: []byte(a.Config.JWTSecret)}

	u := AuthHandler{DB: databases.NewUserDatabase(a.DB), Secret: []byte(a.Config.JWTSecret)}
	res := Resident{DB: databases.NewResidentDatabase(a.DB)}
	dr := DailyReport{DB: databases.NewDailyReportDatabase(a.DB)}
	ne := NursingEvolution{DB: databases.NewNursingEvolutionDatabase(a.DB)}
	te := TechnicianEvolution{DB: databases.NewTechnicianEvolutionDatabase(a.DB)}
	hy := Hygiene{DB: databases.NewHygieneDatabase(a.DB)}
	feed := Feed{DB: databases.NewFeedDatabase(a.DB)}
	dash := Dashboard{DB: databases.NewDashboardDatabase(a.DB), Location: a.Location}
	arch := Archive{
		RDB:      databases.NewResidentDatabase(a.DB),
		DRDB:     databases.NewDailyReportDatabase(a.DB),
		NEDB:     databases.NewNursingEvolutionDatabase(a.DB),
		TEDB:     databases.NewTechnicianEvolutionDatabase(a.DB),
		HDB:      databases.NewHygieneDatabase(a.DB),
		Uploader: a.Uploader,
	}

	r := mux.NewRouter()
	r.Use(api.LoggingMiddleware)
	r.Use(api.TimeoutMiddleware(30 * time.Second))

	// healthchex
	r.HandleFunc("/health", api.HealthCheckHandler)

	apiCreate := r.PathPrefix("/api").Subrouter()

	// public auth routes
	apiCreate.Handle("/usuarios/registrar", http.HandlerFunc(u.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/usuarios/login", http.HandlerFunc(u.LoginHandler)).Methods("POST")

	// residents
	apiCreate.Handle("/pacientes", auth.Middleware(http.HandlerFunc(res.ListResidentsHandler))).Methods("GET")
	apiCreate.Handle("/pacientes", auth.Middleware(http.HandlerFunc(res.CreateResidentHandler))).Methods("POST")
	apiCreate.Handle("/pacientes/{id}", auth.Middleware(http.HandlerFunc(res.ResidentByIDHandler))).Methods("GET")
	apiCreate.Handle("/pacientes/{id}", auth.Middleware(http.HandlerFunc(res.UpdateResidentHandler))).Methods("PUT")
	apiCreate.Handle("/pacientes/{id}", auth.RequireAdmin(http.HandlerFunc(res.DeleteResidentHandler))).Methods("DELETE")
	apiCreate.Handle("/pacientes/{id}/arquivar", auth.RequireAdmin(http.HandlerFunc(arch.ArchiveResidentHandler))).Methods("POST")

	// per-variant reports
	apiCreate.Handle("/pacientes/{id}/relatorios", auth.Middleware(http.HandlerFunc(dr.ReportsByResidentHandler))).Methods("GET")
	apiCreate.Handle("/pacientes/{id}/relatorios", auth.Middleware(http.HandlerFunc(dr.CreateReportHandler))).Methods("POST")
	apiCreate.Handle("/pacientes/{id}/evolucoes-enfermagem", auth.Middleware(http.HandlerFunc(ne.EvolutionsByResidentHandler))).Methods("GET")
	apiCreate.Handle("/pacientes/{id}/evolucoes-enfermagem", auth.Middleware(http.HandlerFunc(ne.CreateEvolutionHandler))).Methods("POST")
	apiCreate.Handle("/pacientes/{id}/evolucao-tecnico", auth.Middleware(http.HandlerFunc(te.EvolutionsByResidentHandler))).Methods("GET")
	apiCreate.Handle("/pacientes/{id}/evolucao-tecnico", auth.Middleware(http.HandlerFunc(te.CreateEvolutionHandler))).Methods("POST")
	apiCreate.Handle("/pacientes/{id}/higiene", auth.Middleware(http.HandlerFunc(hy.LogsByResidentHandler))).Methods("GET")
	apiCreate.Handle("/pacientes/{id}/higiene", auth.Middleware(http.HandlerFunc(hy.CreateLogHandler))).Methods("POST")

	// unified feed and dashboard projections
	apiCreate.Handle("/relatorios", auth.Middleware(http.HandlerFunc(feed.FeedHandler))).Methods("GET")
	apiCreate.Handle("/dashboard/daily-status", auth.Middleware(http.HandlerFunc(dash.DailyStatusHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	db, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database handle, then kill the pod
		zap.S().With(err).Error("failed to create new database handle")
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	a.DB = db
	zap.S().Info("casa-verde-api has connected to the database")

	loc, err := time.LoadLocation(a.Config.FacilityTZ)
	if err != nil {
		zap.S().With(err).Error("invalid facility timezone")
		return err
	}
	a.Location = loc

	if a.Uploader == nil && a.Config.CloudinaryURL != "" {
		up, err := storage.NewCloudinaryUploader(a.Config.CloudinaryURL, a.Config.CloudinaryFolder)
		if err != nil {
			zap.S().With(err).Error("failed to initialize object storage")
			return err
		}
		a.Uploader = up
	}

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}
