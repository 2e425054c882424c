package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"sparepos/m/internal/backup"
	"sparepos/m/internal/config"
	"sparepos/m/internal/migrations"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)

	tmp := t.TempDir()
	backups, err := backup.NewManager(filepath.Join(tmp, "app.db"), filepath.Join(tmp, "backups"))
	if err != nil {
		t.Fatalf("backup manager: %v", err)
	}
	return New(db, config.Load(), backups)
}

func adminRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(r.Context(), ctxUserID, int64(1))
	ctx = context.WithValue(ctx, ctxRole, "admin")
	return r.WithContext(ctx)
}

// Settings reads and reloads run on separate request goroutines; run them
// together so the race detector can see the handler's locking.
func TestSettingsReloadConcurrentWithReads(t *testing.T) {
	h := newTestHandler(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				w := httptest.NewRecorder()
				h.getSettings(w, adminRequest(http.MethodGet, "/settings"))
				if w.Code != http.StatusOK {
					t.Errorf("getSettings status = %d", w.Code)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				w := httptest.NewRecorder()
				h.reloadSettings(w, adminRequest(http.MethodPost, "/settings/reload"))
				if w.Code != http.StatusOK {
					t.Errorf("reloadSettings status = %d", w.Code)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestReloadSettingsAppliesNewValues(t *testing.T) {
	h := newTestHandler(t)

	t.Setenv("CURRENCY", "EUR")
	w := httptest.NewRecorder()
	h.reloadSettings(w, adminRequest(http.MethodPost, "/settings/reload"))
	if w.Code != http.StatusOK {
		t.Fatalf("reloadSettings status = %d", w.Code)
	}
	if got := h.config().Currency; got != "EUR" {
		t.Errorf("currency after reload = %q, want EUR", got)
	}
}

func TestReloadSettingsRequiresAdmin(t *testing.T) {
	h := newTestHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/settings/reload", nil)
	ctx := context.WithValue(r.Context(), ctxUserID, int64(2))
	ctx = context.WithValue(ctx, ctxRole, "staff")
	w := httptest.NewRecorder()
	h.reloadSettings(w, r.WithContext(ctx))
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}
