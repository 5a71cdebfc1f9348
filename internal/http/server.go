package httpapp

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/upstar-club/mocksocial/internal/config"
	"github.com/upstar-club/mocksocial/internal/directory"
	"github.com/upstar-club/mocksocial/internal/metrics"
	"github.com/upstar-club/mocksocial/internal/model"
	"github.com/upstar-club/mocksocial/internal/proxy"

	_ "github.com/upstar-club/mocksocial/docs" // swagger docs

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

type Server struct {
	dir   *directory.Directory
	proxy *proxy.Forwarder
	cfg   config.Config

	// now is the clock used to resolve time windows; swapped out in
	// tests so fixture-era queries are deterministic.
	now func() time.Time
}

func NewServer(dir *directory.Directory, fwd *proxy.Forwarder, cfg config.Config) *Server {
	return &Server{dir: dir, proxy: fwd, cfg: cfg, now: time.Now}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.route(rec, r)
	metrics.Requests.WithLabelValues(routeLabel(r.URL.Path), strconv.Itoa(rec.status)).Inc()
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if strings.HasPrefix(path, "/upstar/") {
		start := time.Now()
		s.proxy.Forward(w, r, strings.TrimPrefix(path, "/upstar/"))
		metrics.ProxyDuration.Observe(time.Since(start).Seconds())
		return
	}
	if strings.HasPrefix(path, "/swagger/") {
		httpSwagger.WrapHandler.ServeHTTP(w, r)
		return
	}

	if path == "/admin/reload" {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		s.handleReload(w, r)
		return
	}
	if path == "/metrics" {
		metrics.Handler().ServeHTTP(w, r)
		return
	}

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	switch path {
	case "/":
		s.handleRoot(w, r)
	case "/check-story":
		s.handleCheckStory(w, r)
	case "/count-stories":
		s.handleCountStories(w, r)
	case "/count-posts":
		s.handleCountPosts(w, r)
	case "/daily-activity":
		s.handleDailyActivity(w, r)
	case "/latest-post":
		s.handleLatestPost(w, r)
	case "/check-comment":
		s.handleCheckComment(w, r)
	case "/check-follow":
		s.handleCheckFollow(w, r)
	case "/api/v1/tiktok/count-posts":
		s.handleCountPosts(w, r)
	case "/api/v1/tiktok/daily-activity":
		s.handleTiktokDailyActivity(w, r)
	case "/version":
		s.handleVersion(w, r)
	case "/api/openapi.json":
		s.serveOpenAPIJSON(w, r)
	default:
		notFound(w)
	}
}

// handleRoot godoc
//
//	@Summary	Liveness probe
//	@Tags		Status
//	@Produce	json
//	@Success	200	{string}	string	"Active"
//	@Router		/ [get]
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "Active")
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"version":  s.cfg.Version,
		"accounts": s.dir.Len(),
	})
}

// handleReload godoc
//
//	@Summary		Reload the account fixture
//	@Description	Re-reads the fixture file and atomically swaps the directory snapshot.
//	@Tags			Admin
//	@Produce		json
//	@Param			X-Admin-Secret	header		string	true	"Admin secret"
//	@Success		200				{object}	map[string]any
//	@Failure		401				{object}	map[string]string
//	@Router			/admin/reload [post]
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get("X-Admin-Secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.cfg.AdminSecret)) != 1 {
		writeError(w, http.StatusUnauthorized, errors.New("invalid admin secret"))
		return
	}
	if err := s.dir.Reload(); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.FixtureReloads.Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "fixture reloaded",
		"accounts": s.dir.Len(),
	})
}

func (s *Server) serveOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write([]byte(doc))
}

// guard resolves the queried account, mapping the directory's sentinel
// errors to transport status codes. Existence is reported before
// privacy; nothing downstream runs when ok is false.
func (s *Server) guard(w http.ResponseWriter, username string) (model.Account, bool) {
	account, err := s.dir.Authorize(username)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, directory.ErrPrivate):
			writeError(w, http.StatusForbidden, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return model.Account{}, false
	}
	return account, true
}

func routeLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/upstar/"):
		return "/upstar"
	case strings.HasPrefix(path, "/swagger/"):
		return "/swagger"
	}
	switch path {
	case "/", "/check-story", "/count-stories", "/count-posts",
		"/daily-activity", "/latest-post", "/check-comment", "/check-follow",
		"/api/v1/tiktok/count-posts", "/api/v1/tiktok/daily-activity",
		"/version", "/metrics", "/admin/reload", "/api/openapi.json":
		return path
	}
	return "other"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, errors.New("not found"))
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}
