package newsletter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agrotech/core/internal/database"
	"github.com/agrotech/core/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	noop := func(c *gin.Context) { c.Next() }
	NewHandler(db).RegisterRoutes(r.Group("/api/v1"), noop)
	return r, db
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribe(t *testing.T) {
	r, db := newTestRouter(t)

	w := postJSON(r, "/api/v1/newsletter/subscribe", `{"email":"Reader@Example.COM"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var sub models.NewsletterSubscriberModel
	if err := db.First(&sub, "email = ?", "reader@example.com").Error; err != nil {
		t.Fatalf("address not normalized/stored: %v", err)
	}
	if !sub.IsActive.Bool() {
		t.Error("new subscriber inactive")
	}
}

func TestSubscribeIsIdempotent(t *testing.T) {
	r, db := newTestRouter(t)

	for i := 0; i < 3; i++ {
		if w := postJSON(r, "/api/v1/newsletter/subscribe", `{"email":"a@b.co"}`); w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d", i, w.Code)
		}
	}

	var count int64
	if err := db.Model(&models.NewsletterSubscriberModel{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("subscriber rows = %d, want 1", count)
	}
}

func TestUnsubscribeThenResubscribe(t *testing.T) {
	r, db := newTestRouter(t)

	postJSON(r, "/api/v1/newsletter/subscribe", `{"email":"a@b.co"}`)
	if w := postJSON(r, "/api/v1/newsletter/unsubscribe", `{"email":"a@b.co"}`); w.Code != http.StatusOK {
		t.Fatalf("unsubscribe status = %d", w.Code)
	}

	var sub models.NewsletterSubscriberModel
	if err := db.First(&sub, "email = ?", "a@b.co").Error; err != nil {
		t.Fatal(err)
	}
	if sub.IsActive.Bool() {
		t.Error("still active after unsubscribe")
	}

	// resubscribing reactivates the same row
	postJSON(r, "/api/v1/newsletter/subscribe", `{"email":"a@b.co"}`)
	if err := db.First(&sub, "email = ?", "a@b.co").Error; err != nil {
		t.Fatal(err)
	}
	if !sub.IsActive.Bool() {
		t.Error("resubscribe did not reactivate")
	}
}

func TestUnsubscribeUnknown(t *testing.T) {
	r, _ := newTestRouter(t)
	if w := postJSON(r, "/api/v1/newsletter/unsubscribe", `{"email":"ghost@b.co"}`); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	r, _ := newTestRouter(t)
	if w := postJSON(r, "/api/v1/newsletter/subscribe", `{"email":"not-an-email"}`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
