package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musewave/musewave-api/internal/metrics"
)

func newAssetsTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cw, err := metrics.NewClient(context.Background(), "test")
	require.NoError(t, err)

	handler := NewAssetsHandler(cw)
	router := gin.New()
	router.POST("/api/assets/select", handler.Select)
	return router
}

func TestAssetsSelectReturnsAudioAndCoverArt(t *testing.T) {
	router := newAssetsTestRouter(t)

	w := postJSON(t, router, "/api/assets/select", gin.H{
		"genres":           []string{"Techno", "House"},
		"duration_seconds": 240,
		"context":          "dark warehouse energy",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Category string `json:"category"`
		Audio    struct {
			URL             string `json:"url"`
			Title           string `json:"title"`
			DurationSeconds int    `json:"duration_seconds"`
		} `json:"audio"`
		CoverArtURL string `json:"cover_art_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "electronic", resp.Category)
	assert.NotEmpty(t, resp.Audio.URL)
	assert.NotEmpty(t, resp.Audio.Title)
	assert.Greater(t, resp.Audio.DurationSeconds, 0)
	assert.NotEmpty(t, resp.CoverArtURL)
}

func TestAssetsSelectIsDeterministic(t *testing.T) {
	router := newAssetsTestRouter(t)

	body := gin.H{
		"genres":           []string{"Jazz"},
		"duration_seconds": 180,
		"context":          "smoky lounge",
	}

	first := postJSON(t, router, "/api/assets/select", body)
	second := postJSON(t, router, "/api/assets/select", body)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, stripRequestID(t, first.Body.Bytes()), stripRequestID(t, second.Body.Bytes()))
}

func TestAssetsSelectHonorsUsedURLs(t *testing.T) {
	router := newAssetsTestRouter(t)

	first := postJSON(t, router, "/api/assets/select", gin.H{
		"genres": []string{"Ambient"},
	})
	require.Equal(t, http.StatusOK, first.Code)

	var firstResp struct {
		Audio struct {
			URL string `json:"url"`
		} `json:"audio"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))

	second := postJSON(t, router, "/api/assets/select", gin.H{
		"genres":    []string{"Ambient"},
		"used_urls": []string{firstResp.Audio.URL},
	})
	require.Equal(t, http.StatusOK, second.Code)

	var secondResp struct {
		Audio struct {
			URL string `json:"url"`
		} `json:"audio"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))
	assert.NotEqual(t, firstResp.Audio.URL, secondResp.Audio.URL)
}

func TestAssetsSelectUnknownGenreFallsBackToDefault(t *testing.T) {
	router := newAssetsTestRouter(t)

	w := postJSON(t, router, "/api/assets/select", gin.H{
		"genres": []string{"Polka Metal"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "default", resp.Category)
}

// stripRequestID removes the per-request ID so two responses can be compared.
func stripRequestID(t *testing.T, body []byte) string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	delete(m, "request_id")
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}
