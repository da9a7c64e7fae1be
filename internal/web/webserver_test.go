package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-while/go-grantdecks/internal/config"
	"github.com/go-while/go-grantdecks/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func newTestServer(t *testing.T) *WebServer {
	t.Helper()
	cfg := config.NewDefaultConfig().Web
	s, err := NewServer(cfg)
	require.NoError(t, err)
	return s
}

func do(s *WebServer, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// countAttr counts elements carrying the attribute key
func countAttr(t *testing.T, body, key string) int {
	t.Helper()
	root, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	count := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == key {
					count++
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return count
}

func TestDeckRoutes(t *testing.T) {
	s := newTestServer(t)
	testCases := []struct {
		path    string
		heading string
		slides  int
	}{
		{"/k99r00", "NIH BRAIN Initiative K99/R00", 6},
		{"/nsf-career", "NSF CAREER Award", 8},
		{"/mcknight-scholars", "McKnight Scholars Award", 8},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := do(s, http.MethodGet, tc.path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

			body := w.Body.String()
			assert.Contains(t, body, "<title>"+tc.heading+"</title>")
			assert.Equal(t, tc.slides, countAttr(t, body, "data-slide"))
		})
	}
}

func TestNSFCareerScenario(t *testing.T) {
	s := newTestServer(t)
	body := do(s, http.MethodGet, "/nsf-career").Body.String()

	first := strings.Index(body, "<h1")
	require.GreaterOrEqual(t, first, 0)
	assert.Contains(t, body[first:first+80], "NSF CAREER Award")
	assert.Contains(t, body, `<h1 class="text-2xl font-bold">Program Overview</h1>`)
}

func TestHomePage(t *testing.T) {
	s := newTestServer(t)
	w := do(s, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "<h1>NeuroAI Grant Slide Decks</h1>")
	assert.Contains(t, body, "Select a grant route: /k99r00, /nsf-career, or /mcknight-scholars")
	assert.Zero(t, countAttr(t, body, "data-slide"))
	assert.Zero(t, countAttr(t, body, "data-slide-label"))
	assert.Zero(t, countAttr(t, body, "data-bullet"))
	assert.Zero(t, countAttr(t, body, "data-timeline-entry"))
	assert.Equal(t, 1, countAttr(t, body, "data-home"))
}

func TestUnknownPathsRedirectHome(t *testing.T) {
	s := newTestServer(t)
	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/foo"},
		{http.MethodGet, "/k99r00/extra"},
		{http.MethodGet, "/nsf-career/slides/2"},
		{http.MethodGet, "/K99R00"},
		{http.MethodGet, "/api/v1/decks/k99r00/extra"},
		{http.MethodPost, "/k99r00"},
		{http.MethodDelete, "/"},
	}
	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(s, tc.method, tc.path)
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/", w.Header().Get("Location"))
			assert.Zero(t, countAttr(t, w.Body.String(), "data-slide"))
		})
	}
}

func TestRedirectLandsOnHome(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	var visited []string
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			visited = append(visited, req.URL.Path)
			return nil
		},
	}
	resp, err := client.Get(ts.URL + "/foo")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", resp.Request.URL.Path)
	assert.Equal(t, []string{"/"}, visited, "exactly one hop, straight to home")
	assert.Contains(t, string(body), "NeuroAI Grant Slide Decks")
	assert.Equal(t, 1, countAttr(t, string(body), "data-home"))
	assert.Zero(t, countAttr(t, string(body), "data-slide"))
}

func TestHeadRequests(t *testing.T) {
	s := newTestServer(t)
	paths := []string{
		"/", "/k99r00", "/nsf-career", "/mcknight-scholars",
		"/static/favicon.svg", "/robots.txt", "/ping",
	}
	for _, path := range paths {
		w := do(s, http.MethodHead, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, w.Header().Get("Location"), path)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/", "/k99r00", "/nsf-career", "/mcknight-scholars"} {
		first := do(s, http.MethodGet, path).Body.String()
		second := do(s, http.MethodGet, path).Body.String()
		assert.Equal(t, first, second, path)
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t)
	w := do(s, http.MethodGet, "/k99r00")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestAuxiliaryRoutes(t *testing.T) {
	s := newTestServer(t)

	w := do(s, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = do(s, http.MethodGet, "/robots.txt")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User-agent: *")

	w = do(s, http.MethodGet, "/static/favicon.svg")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))

	w = do(s, http.MethodGet, "/static/missing.css")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIListDecks(t *testing.T) {
	s := newTestServer(t)
	w := do(s, http.MethodGet, "/api/v1/decks")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Decks []models.DeckSummary `json:"decks"`
		Count int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)

	var slugs []string
	for _, d := range resp.Decks {
		slugs = append(slugs, d.Slug)
	}
	assert.Equal(t, []string{"k99r00", "nsf-career", "mcknight-scholars"}, slugs)
	assert.Equal(t, 6, resp.Decks[0].SlideCount)
}

func TestAPIGetDeck(t *testing.T) {
	s := newTestServer(t)

	w := do(s, http.MethodGet, "/api/v1/decks/nsf-career")
	require.Equal(t, http.StatusOK, w.Code)
	var deck models.Deck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deck))
	assert.Equal(t, "NSF CAREER Award", deck.Title.Heading)
	require.Len(t, deck.Slides, 7)
	assert.Equal(t, "Program Overview", deck.Slides[0].Title)

	w = do(s, http.MethodGet, "/api/v1/decks/foo")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
}

func TestAPIStats(t *testing.T) {
	s := newTestServer(t)
	w := do(s, http.MethodGet, "/api/v1/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 3, stats["total_decks"])
	assert.EqualValues(t, 22, stats["total_slides"])
	assert.Equal(t, config.AppVersion, stats["version"])
}

func TestReverseProxyMiddleware(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("X-Forwarded-Host", "decks.example.org, proxy.internal")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https", req.URL.Scheme)
	assert.Equal(t, "decks.example.org", req.Host)
}

func TestListEmbeddedFiles(t *testing.T) {
	files, err := ListEmbeddedFiles()
	require.NoError(t, err)
	assert.Contains(t, files, "static/favicon.svg")
	assert.Contains(t, files, "static/robots.txt")
}

func TestNewServerRejectsBadProxy(t *testing.T) {
	cfg := config.NewDefaultConfig().Web
	cfg.TrustedProxies = []string{"not-an-ip"}
	_, err := NewServer(cfg)
	assert.Error(t, err)
}
