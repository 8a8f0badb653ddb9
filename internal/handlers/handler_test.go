// handler_test.go provides shared helpers for handler integration
// tests. Tests are skipped if PostgreSQL is not available.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"inkwell/internal/database"
	"inkwell/internal/identity"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/store"
)

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "inkwell")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "inkwell")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens the test database and runs migrations, skipping the test
// when no database is reachable.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testHandlers wires handlers against the test database.
func testHandlers(t *testing.T) (*Posts, *Categories, *sql.DB) {
	t.Helper()
	db := testDB(t)
	posts := store.NewPostStore(db)
	categories := store.NewCategoryStore(db)
	return NewPosts(posts, categories), NewCategories(categories), db
}

func cleanPosts(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM posts WHERE slug = $1 OR slug LIKE $2", slug, slug+"-%")
	}
}

func cleanCategories(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM categories WHERE slug = $1", slug)
	}
}

// withIdentity attaches a verified identity to the request context, the
// way LoadIdentity would after verifying a credential.
func withIdentity(r *http.Request, userID, name string) *http.Request {
	id := &identity.Identity{UserID: userID, DisplayName: name}
	return r.WithContext(context.WithValue(r.Context(), middleware.IdentityKey, id))
}

// withURLParam attaches a chi route parameter to the request context so
// handlers can be exercised without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(b)
}

// envelope mirrors the response shape for decoding in assertions.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *listMeta       `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func decodePost(t *testing.T, raw json.RawMessage) models.Post {
	t.Helper()
	var p models.Post
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("decode post %q: %v", raw, err)
	}
	return p
}

// createPost drives the Create handler and returns the stored post.
func createPost(t *testing.T, h *Posts, userID, name, title, content string, categories []string) models.Post {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/posts", jsonBody(t, postCreateRequest{
		Title:      title,
		Content:    content,
		Categories: categories,
	}))
	req = withIdentity(req, userID, name)

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create post: status %d, body %s", rec.Code, rec.Body.String())
	}
	return decodePost(t, decodeEnvelope(t, rec).Data)
}
