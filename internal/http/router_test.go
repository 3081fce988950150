package http

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/dataset"
	"github.com/yungbote/portfolio-backend/internal/http/handlers"
	"github.com/yungbote/portfolio-backend/internal/http/middleware"
	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
	"github.com/yungbote/portfolio-backend/internal/types"
)

type stubAdmin struct {
	deleteCalls int
}

func (s *stubAdmin) DeleteEducation(context.Context, string) error   { s.deleteCalls++; return nil }
func (s *stubAdmin) DeleteExperience(context.Context, string) error  { s.deleteCalls++; return nil }
func (s *stubAdmin) DeletePublication(context.Context, string) error { s.deleteCalls++; return nil }
func (s *stubAdmin) CheckDatabase(context.Context) (int64, error)    { return 2, nil }

type stubFetcher struct {
	posts []types.BlogPost
	err   error
}

func (s *stubFetcher) FetchPosts(context.Context) ([]types.BlogPost, error) {
	return s.posts, s.err
}

type stubValidator struct {
	accept string
}

func (s *stubValidator) ValidateToken(_ context.Context, token string) error {
	if token == s.accept {
		return nil
	}
	return fmt.Errorf("invalid token")
}

func newTestRouter(t *testing.T, admin *stubAdmin, fetcher *stubFetcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New failed: %v", err)
	}
	snapshot, err := dataset.Load()
	if err != nil {
		t.Fatalf("dataset.Load failed: %v", err)
	}

	gate := middleware.NewSessionGate(log, &stubValidator{accept: "good"}, middleware.PathPrefix(AdminPrefix))

	return NewRouter(RouterConfig{
		Log:              log,
		SessionGate:      gate,
		HealthHandler:    handlers.NewHealthHandler(),
		PortfolioHandler: handlers.NewPortfolioHandler(services.NewContentService(log, snapshot)),
		BlogHandler:      handlers.NewBlogHandler(log, services.NewBlogService(log, fetcher)),
		AdminHandler:     handlers.NewAdminHandler(log, admin),
	})
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	r := newTestRouter(t, &stubAdmin{}, &stubFetcher{posts: []types.BlogPost{{ID: "1", Title: "hello"}}})

	paths := []string{"/healthcheck", "/profile", "/timeline", "/academia", "/experiences", "/tracking", "/blog", "/test-db"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(nethttp.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != nethttp.StatusOK {
				t.Fatalf("GET %s: got status %d, want 200 (body: %s)", path, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAdminDeleteEndToEnd(t *testing.T) {
	admin := &stubAdmin{}
	r := newTestRouter(t, admin, &stubFetcher{})

	// Without a token the gate rejects before dispatch.
	req := httptest.NewRequest(nethttp.MethodDelete, "/admin/publications/pub-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("ungated delete: got status %d, want 401", rec.Code)
	}
	if admin.deleteCalls != 0 {
		t.Fatalf("store called %d times before auth, want 0", admin.deleteCalls)
	}

	// With a valid session cookie the delete goes through.
	req = httptest.NewRequest(nethttp.MethodDelete, "/admin/publications/pub-1", nil)
	req.AddCookie(&nethttp.Cookie{Name: "session", Value: "good"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("authorized delete: got status %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if admin.deleteCalls != 1 {
		t.Fatalf("store called %d times, want 1", admin.deleteCalls)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["message"] != "Publication deleted successfully" {
		t.Fatalf("got message %q", body["message"])
	}
}

func TestProfileBodyComesFromSnapshot(t *testing.T) {
	r := newTestRouter(t, &stubAdmin{}, &stubFetcher{})

	req := httptest.NewRequest(nethttp.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body struct {
		Profile types.ProfileInfo `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Profile.Name == "" {
		t.Fatal("profile name missing from response")
	}
}
