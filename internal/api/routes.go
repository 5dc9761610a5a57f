package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/youruser/kcgdeck/internal/cards"
	"github.com/youruser/kcgdeck/internal/deck"
	"github.com/youruser/kcgdeck/internal/store"
)

// Server bundles the catalog, the deck store and the codec limits behind the
// HTTP surface.
type Server struct {
	catalog *cards.Catalog
	decks   *store.DeckStore
	limits  deck.Limits
	metrics *Metrics
	log     *zap.Logger
}

func NewServer(catalog *cards.Catalog, decks *store.DeckStore, limits deck.Limits, metrics *Metrics, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		catalog: catalog,
		decks:   decks,
		limits:  limits,
		metrics: metrics,
		log:     log,
	}
}

func (s *Server) Register(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/filter", s.filterHandler)

		api.POST("/deck/code", s.encodeHandler)
		api.POST("/deck/import", s.importHandler)
		api.POST("/deck/validate", s.validateHandler)

		api.GET("/decks", s.listDecks)
		api.POST("/decks", s.createDeck)
		api.GET("/decks/:id", s.getDeck)
		api.PUT("/decks/:id", s.updateDeck)
		api.DELETE("/decks/:id", s.deleteDeck)
		api.GET("/decks/:id/export", s.exportDeck)

		api.GET("/qr", s.qrHandler)
		api.POST("/deck/image", s.deckImageHandler)
	}
}
