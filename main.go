package main

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/rankworks/checkout.api/config"
	"github.com/rankworks/checkout.api/handlers"

	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "checkout.api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg)

	log.Info("Starting checkout.api service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting checkout.api service")
}
