package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/casaverde/casa-verde-api/api/handlers"
	"github.com/casaverde/casa-verde-api/api/scheduler"
	"github.com/casaverde/casa-verde-api/databases"

	"go.uber.org/zap"

	"github.com/casaverde/casa-verde-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database and router
		log.Fatal(err)
	}

	s := &scheduler.Scheduler{
		DB:       databases.NewDashboardDatabase(a.DB),
		Config:   a.Config,
		Location: a.Location,
	}
	if err := s.Start(); err != nil {
		log.Fatal(err)
	}
	defer s.Stop()

	port := a.Config.Port
	if port == "" {
		port = "3000"
	}
	zap.S().Infow("casa-verde-api is up and running",
		"port", port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
