package main

import (
	"log"
	"net/http"
	"os"

	"hadeshelper/internal/advisor"
	"hadeshelper/internal/builds"
	"hadeshelper/internal/catalog"
	"hadeshelper/internal/config"
	"hadeshelper/internal/history"
	"hadeshelper/internal/run"
	"hadeshelper/internal/session"
	"hadeshelper/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal(err)
	}
	templates, err := builds.NewDir(cfg.TemplatesDir)
	if err != nil {
		log.Fatal(err)
	}

	hub := web.NewHub()
	go hub.Run()

	srv := &web.Server{
		Advisor:   advisor.New(cat),
		Store:     session.NewMemoryStore[*run.State](),
		History:   history.Open(cfg.HistoryFile),
		Templates: templates,
		Hub:       hub,
	}

	log.Printf("listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, srv.Routes()))
}
