package stylist_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps/stylist"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/store"
)

func newTestApp(t *testing.T, analyzer stylist.Analyzer, responder stylist.ChatResponder) *fiber.App {
	t.Helper()
	plugin := stylist.New(store.NewMemoryStore(), analyzer, responder, testConfig())
	app := fiber.New()
	plugin.RegisterRoutes(app.Group("/api"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func analyzeBody(t *testing.T, imageData string) string {
	t.Helper()
	b, err := json.Marshal(stylist.AnalyzeRequest{ImageData: imageData})
	require.NoError(t, err)
	return string(b)
}

func TestAnalyzeHandler_AnalyzerFailureReturnsDefaults(t *testing.T) {
	app := newTestApp(t, &stubAnalyzer{err: errors.New("model unavailable")}, nil)

	status, body := doJSON(t, app, http.MethodPost, "/api/analyze", analyzeBody(t, "data:image/jpeg;base64,AAAA"))
	require.Equal(t, http.StatusOK, status)

	var a stylist.Analysis
	require.NoError(t, json.Unmarshal(body, &a))
	require.Equal(t, stylist.SkinToneMedium, a.SkinTone)
	require.Equal(t, stylist.UndertoneNeutral, a.Undertone)
	require.Equal(t, stylist.FaceShapeOval, a.FaceShape)
	require.Equal(t, 0.7, a.Confidence)
	require.Len(t, a.ColorPalette, 8)
}

func TestAnalyzeHandler_AnalyzerFailureWithRealImage(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("model unavailable")}
	app := newTestApp(t, analyzer, nil)

	status, body := doJSON(t, app, http.MethodPost, "/api/analyze", analyzeBody(t, pngDataURI(t)))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, analyzer.calls)

	var a stylist.Analysis
	require.NoError(t, json.Unmarshal(body, &a))
	require.Equal(t, stylist.SkinToneMedium, a.SkinTone)
	require.Equal(t, 0.7, a.Confidence)
}

func TestAnalyzeHandler_BadRequests(t *testing.T) {
	app := newTestApp(t, &stubAnalyzer{features: warmFeatures()}, nil)

	status, body := doJSON(t, app, http.MethodPost, "/api/analyze", `{"imageData":""}`)
	require.Equal(t, http.StatusBadRequest, status)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	require.True(t, e.Error)
	require.Equal(t, "Image data is required", e.Message)

	status, _ = doJSON(t, app, http.MethodPost, "/api/analyze", `{}`)
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/analyze", `{"imageData":`)
	require.Equal(t, http.StatusBadRequest, status)

	tooLarge := "data:image/jpeg;base64," + strings.Repeat("A", testConfig().MaxImageBytes)
	status, _ = doJSON(t, app, http.MethodPost, "/api/analyze", analyzeBody(t, tooLarge))
	require.Equal(t, http.StatusBadRequest, status)
}

func TestAnalysisFlow_EndToEnd(t *testing.T) {
	app := newTestApp(t, &stubAnalyzer{features: warmFeatures()}, nil)

	status, body := doJSON(t, app, http.MethodPost, "/api/analyze", analyzeBody(t, pngDataURI(t)))
	require.Equal(t, http.StatusOK, status)
	var created stylist.Analysis
	require.NoError(t, json.Unmarshal(body, &created))
	require.Equal(t, stylist.UndertoneWarm, created.Undertone)

	status, body = doJSON(t, app, http.MethodGet, "/api/analysis/"+created.ID, "")
	require.Equal(t, http.StatusOK, status)
	var fetched stylist.Analysis
	require.NoError(t, json.Unmarshal(body, &fetched))
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, created.ColorPalette, fetched.ColorPalette)
	require.True(t, created.Timestamp.Equal(fetched.Timestamp))
	require.Equal(t, created.Confidence, fetched.Confidence)

	status, body = doJSON(t, app, http.MethodGet, "/api/makeup/"+created.ID, "")
	require.Equal(t, http.StatusOK, status)
	var makeup []stylist.MakeupRecommendation
	require.NoError(t, json.Unmarshal(body, &makeup))
	require.Len(t, makeup, 4)
	require.NotContains(t, string(body), "Position")

	status, body = doJSON(t, app, http.MethodGet, "/api/outfits/"+created.ID, "")
	require.Equal(t, http.StatusOK, status)
	var outfits []stylist.OutfitRecommendation
	require.NoError(t, json.Unmarshal(body, &outfits))
	require.Len(t, outfits, 5)

	var interview *stylist.OutfitRecommendation
	for i := range outfits {
		if outfits[i].Occasion == stylist.OccasionInterview {
			interview = &outfits[i]
		}
	}
	require.NotNil(t, interview)
	require.Contains(t, interview.Colors, "#2C3E50")
	require.Contains(t, interview.Colors, "#FFFFFF")
}

func TestGetAnalysisHandler_NotFound(t *testing.T) {
	app := newTestApp(t, nil, nil)

	status, body := doJSON(t, app, http.MethodGet, "/api/analysis/does-not-exist", "")
	require.Equal(t, http.StatusNotFound, status)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	require.Equal(t, "Analysis not found", e.Message)
}

func TestRecommendationHandlers_UnknownAnalysisReturnsEmptyArray(t *testing.T) {
	app := newTestApp(t, nil, nil)

	for _, path := range []string{"/api/makeup/unknown", "/api/outfits/unknown"} {
		status, body := doJSON(t, app, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, status, path)
		require.JSONEq(t, `[]`, string(body), path)
	}
}

func TestChatHandler(t *testing.T) {
	responder := &stubResponder{reply: "Earth tones will look great."}
	app := newTestApp(t, nil, responder)

	status, body := doJSON(t, app, http.MethodPost, "/api/chat", `{"content":"What colors suit me?"}`)
	require.Equal(t, http.StatusOK, status)
	var msg stylist.ChatMessage
	require.NoError(t, json.Unmarshal(body, &msg))
	require.Equal(t, "assistant", msg.Role)
	require.Equal(t, "Earth tones will look great.", msg.Content)

	status, body = doJSON(t, app, http.MethodPost, "/api/chat", `{"content":"   "}`)
	require.Equal(t, http.StatusBadRequest, status)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	require.Equal(t, "Message content is required", e.Message)
}

func TestChatHandler_ResponderFailure(t *testing.T) {
	app := newTestApp(t, nil, &stubResponder{err: errors.New("secret upstream detail")})

	status, body := doJSON(t, app, http.MethodPost, "/api/chat", `{"content":"hi"}`)
	require.Equal(t, http.StatusInternalServerError, status)
	require.NotContains(t, string(body), "secret upstream detail")
}

func TestProfileHandler(t *testing.T) {
	app := newTestApp(t, &stubAnalyzer{features: warmFeatures()}, nil)

	status, body := doJSON(t, app, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"analyses":[],"savedPalettes":[]}`, string(body))

	for i := 0; i < 4; i++ {
		status, _ = doJSON(t, app, http.MethodPost, "/api/analyze", analyzeBody(t, pngDataURI(t)))
		require.Equal(t, http.StatusOK, status)
	}

	status, body = doJSON(t, app, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, status)
	var p stylist.UserProfile
	require.NoError(t, json.Unmarshal(body, &p))
	require.Len(t, p.Analyses, 4)
	require.Len(t, p.SavedPalettes, 3)
	for i := 1; i < len(p.Analyses); i++ {
		require.False(t, p.Analyses[i].Timestamp.After(p.Analyses[i-1].Timestamp))
	}
}
