package serve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgraf/tagwerk/tags"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()

	api := newServeAPI(tags.NewNormalizer(nil))
	r.GET("/healthz", api.ServeHealth)
	r.GET("/api/aliases", api.ServeAliases)
	r.POST("/api/normalize", api.ServeNormalize)
	r.POST("/api/similar", api.ServeSimilar)
	r.POST("/api/statistics", api.ServeStatistics)

	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))

	return w, decoded
}

func TestServeHealth(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServeNormalize(t *testing.T) {
	r := newTestRouter()

	w, decoded := postJSON(t, r, "/api/normalize", `{"tags": ["Turkey", "turk", "Spices", "spice"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"Spices", "Turkey"}, decoded["tags"])

	keys := decoded["keys"].(map[string]interface{})
	assert.Equal(t, "turkey", keys["turk"])
}

func TestServeNormalize_DoubleEncodedPayload(t *testing.T) {
	r := newTestRouter()

	w, decoded := postJSON(t, r, "/api/normalize", `{"tags": "[\"Turkey\"]"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"Turkey"}, decoded["tags"])
}

func TestServeSimilar(t *testing.T) {
	r := newTestRouter()

	w, decoded := postJSON(t, r, "/api/similar", `{"tags": ["Apple", "Banana", "Cherry"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decoded["groups"])

	w, decoded = postJSON(t, r, "/api/similar", `{"tags": ["Turkey", "turk"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	groups := decoded["groups"].([]interface{})
	require.Len(t, groups, 1)

	group := groups[0].(map[string]interface{})
	assert.Equal(t, "turkey", group["normalized"])
	assert.Equal(t, "Turkey", group["suggestion"])
}

func TestServeStatistics(t *testing.T) {
	r := newTestRouter()

	w, decoded := postJSON(t, r, "/api/statistics", `{"tags": ["Turkey", "turkish", "Rice"]}`)

	require.Equal(t, http.StatusOK, w.Code)

	stats := decoded["report"].(map[string]interface{})
	assert.Equal(t, float64(3), stats["total"])
	assert.Equal(t, float64(2), stats["unique"])

	colors := decoded["colors"].(map[string]interface{})
	require.Contains(t, colors, "turkey")
	require.Contains(t, colors, "rice")
	assert.NotEmpty(t, colors["turkey"])
}

func TestServe_BadRequest(t *testing.T) {
	r := newTestRouter()

	w, _ := postJSON(t, r, "/api/normalize", `{"tags": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
