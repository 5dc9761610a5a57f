package api

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/kcgdeck/internal/cards"
	"github.com/youruser/kcgdeck/internal/deck"
	"github.com/youruser/kcgdeck/internal/deckcode"
	imagepkg "github.com/youruser/kcgdeck/internal/image"
	"github.com/youruser/kcgdeck/internal/store"
)

// health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cards": s.catalog.Len()})
}

func (s *Server) filterHandler(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.BindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.Filter(s.catalog.All(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

// deckRequest is the wire form of a deck: ids and counts, no card metadata.
type deckRequest struct {
	Name    string `json:"name"`
	Leader  string `json:"leader"`
	Entries []struct {
		CardID string `json:"card_id"`
		Count  int    `json:"count"`
	} `json:"entries"`
}

// buildDeck resolves a deck request against the catalog and replays it
// through the mutation layer so copy and size limits hold.
func (s *Server) buildDeck(req deckRequest) (deck.Deck, error) {
	d := deck.Deck{Name: req.Name, Leader: req.Leader}
	for _, e := range req.Entries {
		card, ok := s.catalog.Find(e.CardID)
		if !ok {
			return deck.Deck{}, errors.New("unknown card: " + e.CardID)
		}
		if err := d.Apply(deck.Add{Card: card}, s.limits); err != nil {
			return deck.Deck{}, err
		}
		if e.Count != 1 {
			if err := d.Apply(deck.SetCount{ID: e.CardID, Count: e.Count}, s.limits); err != nil {
				return deck.Deck{}, err
			}
		}
	}
	return d, nil
}

// codesFor produces both shareable forms for a deck, in canonical order.
func codesFor(d *deck.Deck) (packed, simple string, err error) {
	flat := d.FlattenCards()
	deckcode.SortForEncode(flat)
	ids := deckcode.FlattenIDs(flat)
	packed, err = deckcode.EncodePacked(ids)
	if err != nil {
		return "", "", err
	}
	return packed, deckcode.EncodeSimple(ids), nil
}

func (s *Server) encodeHandler(c *gin.Context) {
	var req deckRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := s.buildDeck(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	packed, simple, err := codesFor(&d)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	s.metrics.decksEncoded.Inc()
	c.JSON(http.StatusOK, gin.H{"packed": packed, "simple": simple})
}

func (s *Server) importHandler(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		form     string
		entries  []deck.Entry
		notFound []string
	)
	if verr := deckcode.ValidateCode(req.Code); verr != nil {
		s.metrics.importsRejected.WithLabelValues(string(verr.Reason)).Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"reason": verr.Reason, "token": verr.Token})
		return
	}
	if ids, err := deckcode.DecodePacked(req.Code); err == nil {
		form = "packed"
		entries, notFound = deckcode.ResolveIDs(ids, s.catalog)
	} else {
		var derr *deckcode.DecodeError
		if errors.As(err, &derr) && derr.Reason == deckcode.ReasonMalformedBody {
			// structurally broken packed code; not a simple-form fallback
			s.metrics.importsRejected.WithLabelValues(string(derr.Reason)).Inc()
			c.JSON(http.StatusUnprocessableEntity, gin.H{"reason": derr.Reason})
			return
		}
		// no KCG- prefix: treat as the simple form
		if verr := deckcode.ValidateSimpleCode(req.Code); verr != nil {
			s.metrics.importsRejected.WithLabelValues(string(verr.Reason)).Inc()
			c.JSON(http.StatusUnprocessableEntity, gin.H{"reason": verr.Reason, "token": verr.Token})
			return
		}
		form = "simple"
		entries, notFound = deckcode.DecodeSimple(req.Code, s.catalog)
	}

	s.metrics.decksImported.Inc()
	s.metrics.cardsNotFound.Add(float64(len(notFound)))
	if entries == nil {
		entries = []deck.Entry{}
	}
	if notFound == nil {
		notFound = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"form": form, "entries": entries, "not_found": notFound})
}

func (s *Server) validateHandler(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
		Form string `json:"form"` // "simple" runs the token check too
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var verr *deckcode.ValidationError
	if req.Form == "simple" {
		verr = deckcode.ValidateSimpleCode(req.Code)
	} else {
		verr = deckcode.ValidateCode(req.Code)
	}
	if verr != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "reason": verr.Reason, "token": verr.Token})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (s *Server) listDecks(c *gin.Context) {
	out, err := s.decks.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "decks": out})
}

func (s *Server) createDeck(c *gin.Context) {
	var req deckRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := s.buildDeck(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	id, err := s.decks.Save(d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.log.Info("deck saved", zap.String("id", id), zap.String("name", d.Name), zap.Int("size", d.Size()))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) getDeck(c *gin.Context) {
	doc, err := s.decks.Get(c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) updateDeck(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.decks.Get(id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	var req deckRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := s.buildDeck(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err := s.decks.Put(id, d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) deleteDeck(c *gin.Context) {
	err := s.decks.Delete(c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// exportDeck returns the shareable artifacts for a stored deck: the text
// list and both code forms.
func (s *Server) exportDeck(c *gin.Context) {
	doc, err := s.decks.Get(c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	packed, simple, err := codesFor(&doc.Deck)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	s.metrics.decksEncoded.Inc()
	c.JSON(http.StatusOK, gin.H{
		"text":   deck.ExportText(doc.Deck),
		"packed": packed,
		"simple": simple,
	})
}

// qr endpoint returns a PNG of a QR for "text" query param
func (s *Server) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// deck image: accepts leader_url, card_urls and the deck code for the QR
func (s *Server) deckImageHandler(c *gin.Context) {
	var req struct {
		LeaderURL string   `json:"leader_url"`
		CardURLs  []string `json:"card_urls"`
		QRText    string   `json:"qr_text"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// fetch leader and cards (best-effort)
	var leaderImg image.Image
	if req.LeaderURL != "" {
		img, err := imagepkg.DownloadImage(req.LeaderURL)
		if err == nil {
			leaderImg = img
		} else {
			s.log.Warn("leader download failed", zap.String("url", req.LeaderURL), zap.Error(err))
		}
	}
	var cardImgs []image.Image
	for i, u := range req.CardURLs {
		if i >= 50 {
			break
		}
		if img, err := imagepkg.DownloadImage(u); err == nil {
			cardImgs = append(cardImgs, img)
		}
	}
	var qrImg image.Image
	if req.QRText != "" {
		if q, err := imagepkg.GenerateQRImage(req.QRText, 400); err == nil {
			qrImg = q
		}
	}

	out := imagepkg.ComposeDeckImage(leaderImg, cardImgs, qrImg)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
