package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/kcgdeck/internal/cards"
	"github.com/youruser/kcgdeck/internal/deck"
	"github.com/youruser/kcgdeck/internal/deckcode"
	"github.com/youruser/kcgdeck/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := cards.NewCatalog([]cards.Card{
		{CardID: "ST01-001", Name: "Luffy", Color: "Red", Type: "LEADER"},
		{CardID: "OP01-016", Name: "Nami", Color: "Red", Type: "CHARACTER"},
		{CardID: "OP01-025", Name: "Zoro", Color: "Red", Type: "CHARACTER"},
	})
	decks, err := store.Open(filepath.Join(t.TempDir(), "decks"))
	require.NoError(t, err)
	t.Cleanup(func() { decks.Close() })

	srv := NewServer(catalog, decks, deck.DefaultLimits, NewMetrics(nil), nil)
	r := gin.New()
	srv.Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEncodeAndImportPacked(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/deck/code", gin.H{
		"name": "red rush",
		"entries": []gin.H{
			{"card_id": "OP01-016", "count": 4},
			{"card_id": "OP01-025", "count": 2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Packed string `json:"packed"`
		Simple string `json:"simple"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "OP01-016/OP01-016/OP01-016/OP01-016/OP01-025/OP01-025", res.Simple)
	require.NotEmpty(t, res.Packed)

	w = doJSON(t, r, http.MethodPost, "/api/deck/import", gin.H{"code": res.Packed})
	require.Equal(t, http.StatusOK, w.Code)

	var imp struct {
		Form    string `json:"form"`
		Entries []struct {
			Card  cards.Card `json:"card"`
			Count int        `json:"count"`
		} `json:"entries"`
		NotFound []string `json:"not_found"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &imp))
	assert.Equal(t, "packed", imp.Form)
	require.Len(t, imp.Entries, 2)
	assert.Equal(t, "OP01-016", imp.Entries[0].Card.CardID)
	assert.Equal(t, 4, imp.Entries[0].Count)
	assert.Empty(t, imp.NotFound)
}

func TestEncodeUnknownCard(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/deck/code", gin.H{
		"entries": []gin.H{{"card_id": "ZZ-9", "count": 1}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestImportSimplePartial(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/deck/import", gin.H{"code": "OP01-016/ZZ-9"})
	require.Equal(t, http.StatusOK, w.Code)

	var imp struct {
		Form     string          `json:"form"`
		Entries  []deckEntryJSON `json:"entries"`
		NotFound []string        `json:"not_found"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &imp))
	assert.Equal(t, "simple", imp.Form)
	require.Len(t, imp.Entries, 1)
	assert.Equal(t, "OP01-016", imp.Entries[0].Card.CardID)
	assert.Equal(t, []string{"ZZ-9"}, imp.NotFound)
}

type deckEntryJSON struct {
	Card  cards.Card `json:"card"`
	Count int        `json:"count"`
}

func TestImportRejections(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name   string
		code   string
		reason string
	}{
		{"empty", "   ", "empty-code"},
		{"doubled slash", "OP01-016//OP01-025", "malformed-format"},
		{"broken packed body", "KCG-A", "malformed-body"},
		{"bad simple token", "op01-016", "invalid-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/deck/import", gin.H{"code": tc.code})
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var res struct {
				Reason string `json:"reason"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tc.reason, res.Reason)
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/deck/validate", gin.H{"code": "KCG-vWuD"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)

	w = doJSON(t, r, http.MethodPost, "/api/deck/validate", gin.H{"code": "aa-1", "form": "simple"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
	assert.Contains(t, w.Body.String(), string(deckcode.ReasonInvalidToken))
}

func TestDeckCRUD(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/decks", gin.H{
		"name":   "stored",
		"leader": "ST01-001",
		"entries": []gin.H{
			{"card_id": "OP01-016", "count": 3},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(t, r, http.MethodGet, "/api/decks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stored"`)

	w = doJSON(t, r, http.MethodGet, "/api/decks/"+created.ID+"/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), deckcode.PackedPrefix)
	assert.Contains(t, w.Body.String(), "3xOP01-016")

	w = doJSON(t, r, http.MethodGet, "/api/decks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)

	w = doJSON(t, r, http.MethodDelete, "/api/decks/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/decks/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeckLimitEnforcedOnCreate(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/decks", gin.H{
		"entries": []gin.H{{"card_id": "OP01-016", "count": 5}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
