package main

import (
	"flag"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/youruser/kcgdeck/internal/api"
	"github.com/youruser/kcgdeck/internal/cards"
	"github.com/youruser/kcgdeck/internal/config"
	"github.com/youruser/kcgdeck/internal/store"
	"github.com/youruser/kcgdeck/internal/util"
)

func main() {
	configPath := flag.String("config", "kcgdeck.yaml", "path to config file")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	all, err := cards.LoadCardsFromDataDir(cfg.CardDir)
	if err != nil {
		log.Fatal("load card catalog", zap.Error(err))
	}
	catalog := cards.NewCatalog(all)
	log.Info("catalog loaded", zap.Int("cards", catalog.Len()))

	if err := util.EnsureDir(cfg.DataDir); err != nil {
		log.Fatal("create data dir", zap.Error(err))
	}
	decks, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatal("open deck store", zap.Error(err))
	}
	defer decks.Close()

	metrics := api.NewMetrics(prometheus.DefaultRegisterer)
	srv := api.NewServer(catalog, decks, cfg.Limits, metrics, log)

	r := gin.Default()
	srv.Register(r)

	log.Info("starting server", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil && err != http.ErrServerClosed {
		log.Fatal("server stopped", zap.Error(err))
	}
}
