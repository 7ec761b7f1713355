package auth

import (
	"errors"
	"testing"

	"github.com/agrotech/core/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
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
	return NewService(db)
}

func TestRegisterFirstOwnerOnly(t *testing.T) {
	s := newTestService(t)

	user, err := s.Register("owner", "supersecret", "Owner", "owner@agro.in")
	if err != nil {
		t.Fatal(err)
	}
	if user.Password == "supersecret" {
		t.Error("password stored in plaintext")
	}

	if _, err := s.Register("second", "supersecret", "", ""); !errors.Is(err, ErrUserExists) {
		t.Errorf("second register: got %v, want ErrUserExists", err)
	}
}

func TestLoginIssuesSessionToken(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Register("owner", "supersecret", "", ""); err != nil {
		t.Fatal(err)
	}

	token, user, err := s.Login("owner", "supersecret", "1.2.3.4", "tests")
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Error("empty token")
	}
	if user.LastLoginIP != "1.2.3.4" {
		t.Errorf("last login ip = %q", user.LastLoginIP)
	}
	if user.LastLoginTime == nil {
		t.Error("last login time not set")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Register("owner", "supersecret", "", ""); err != nil {
		t.Fatal(err)
	}

	// same error for wrong password and unknown user
	if _, _, err := s.Login("owner", "wrong", "", ""); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, _, err := s.Login("ghost", "supersecret", "", ""); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown user: got %v", err)
	}
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	s := newTestService(t)
	user, err := s.Register("owner", "supersecret", "", "")
	if err != nil {
		t.Fatal(err)
	}

	newPass := "evenmoresecret"
	if _, err := s.UpdateProfile(user.ID, nil, nil, nil, &newPass); err != nil {
		t.Fatal(err)
	}

	if _, _, err := s.Login("owner", "supersecret", "", ""); !errors.Is(err, ErrBadCredentials) {
		t.Error("old password still accepted")
	}
	if _, _, err := s.Login("owner", "evenmoresecret", "", ""); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}
