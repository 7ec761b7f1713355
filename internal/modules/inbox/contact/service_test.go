package contact

import (
	"testing"

	"github.com/agrotech/core/internal/database"
	"github.com/agrotech/core/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func TestCreateStartsUnread(t *testing.T) {
	s := NewService(newTestDB(t))

	msg, err := s.Create(&CreateContactDTO{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Subject: "Pricing",
		Message: "How much for the dairy plan?",
	})
	if err != nil {
		t.Fatal(err)
	}
	if msg.Status != models.ContactStatusUnread {
		t.Errorf("status = %q, want unread", msg.Status)
	}
	if msg.ID == "" {
		t.Error("missing generated ID")
	}
}

func TestGetMarksReadOnce(t *testing.T) {
	s := NewService(newTestDB(t))
	msg, err := s.Create(&CreateContactDTO{Name: "A", Email: "a@b.co", Message: "hi"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(msg.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.ContactStatusRead {
		t.Errorf("first view status = %q, want read", got.Status)
	}

	// second view stays read, never flips back
	got, err = s.Get(msg.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.ContactStatusRead {
		t.Errorf("second view status = %q, want read", got.Status)
	}
}

func TestGetMissing(t *testing.T) {
	s := NewService(newTestDB(t))
	got, err := s.Get("nope")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("expected nil for missing message")
	}
}

func TestListStatusFilterAndUnreadCount(t *testing.T) {
	s := NewService(newTestDB(t))
	for i := 0; i < 3; i++ {
		if _, err := s.Create(&CreateContactDTO{Name: "N", Email: "n@e.co", Message: "m"}); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}

	if _, err := s.Get(all[0].ID); err != nil {
		t.Fatal(err)
	}

	unread, err := s.List(models.ContactStatusUnread)
	if err != nil {
		t.Fatal(err)
	}
	if len(unread) != 2 {
		t.Errorf("len(unread) = %d, want 2", len(unread))
	}

	count, err := s.UnreadCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("UnreadCount = %d, want 2", count)
	}
}

func TestDelete(t *testing.T) {
	s := NewService(newTestDB(t))
	msg, err := s.Create(&CreateContactDTO{Name: "N", Email: "n@e.co", Message: "m"})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(msg.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(msg.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("second delete: got %v, want ErrRecordNotFound", err)
	}
}
