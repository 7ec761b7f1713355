package service

import (
	"errors"
	"testing"

	"github.com/agrotech/core/internal/database"
	"github.com/agrotech/core/internal/models"
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

func boolLikePtr(v bool) *models.BoolLike {
	b := models.BoolLike(v)
	return &b
}

func TestCreateDerivesSlugAndKeepsNumbers(t *testing.T) {
	s := newTestService(t)
	svc, err := s.Create(&CreateServiceDTO{
		Title:         "Organic Farming",
		Category:      models.ServiceCategoryFarming,
		MinInvestment: 25000.50,
		MaxInvestment: 500000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if svc.Slug != "organic-farming" {
		t.Errorf("slug = %q, want organic-farming", svc.Slug)
	}
	if svc.MinInvestment != 25000.50 {
		t.Errorf("min investment = %v, want 25000.50", svc.MinInvestment)
	}
	if !svc.Status.Bool() {
		t.Error("new service should default to active")
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(&CreateServiceDTO{Title: "X", Category: "mining"}); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("got %v, want ErrInvalidCategory", err)
	}
}

func TestCreateDuplicateTitleProbesSlug(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(&CreateServiceDTO{Title: "Dairy", Category: "livestock"}); err != nil {
		t.Fatal(err)
	}
	second, err := s.Create(&CreateServiceDTO{Title: "Dairy", Category: "livestock"})
	if err != nil {
		t.Fatal(err)
	}
	if second.Slug != "dairy-2" {
		t.Errorf("slug = %q, want dairy-2", second.Slug)
	}
}

func TestInactiveHiddenFromPublic(t *testing.T) {
	s := newTestService(t)
	svc, err := s.Create(&CreateServiceDTO{
		Title:    "Paused Offering",
		Category: "technology",
		Status:   boolLikePtr(false),
	})
	if err != nil {
		t.Fatal(err)
	}

	// public list and detail both hide it
	list, err := s.List(ListFilter{}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("public list sees %d inactive services", len(list))
	}
	got, err := s.GetByIDOrSlug(svc.Slug, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("public detail sees inactive service")
	}

	// admin sees everything
	list, err = s.List(ListFilter{}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("admin list = %d services, want 1", len(list))
	}
}

func TestListFilters(t *testing.T) {
	s := newTestService(t)
	seedServices := []CreateServiceDTO{
		{Title: "Organic Farming", Category: "farming", Featured: boolLikePtr(true)},
		{Title: "Goat Rearing", Category: "livestock"},
		{Title: "Drone Monitoring", Category: "technology", Featured: boolLikePtr(true)},
	}
	for i := range seedServices {
		if _, err := s.Create(&seedServices[i]); err != nil {
			t.Fatal(err)
		}
	}

	byCategory, err := s.List(ListFilter{Category: "livestock"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(byCategory) != 1 || byCategory[0].Title != "Goat Rearing" {
		t.Errorf("category filter: %+v", byCategory)
	}

	featured := true
	byFeatured, err := s.List(ListFilter{Featured: &featured}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(byFeatured) != 2 {
		t.Errorf("featured filter = %d, want 2", len(byFeatured))
	}

	bySearch, err := s.List(ListFilter{Search: "drone"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(bySearch) != 1 || bySearch[0].Title != "Drone Monitoring" {
		t.Errorf("search filter: %+v", bySearch)
	}
}

func TestUpdateSlugConflict(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Create(&CreateServiceDTO{Title: "First", Category: "farming"}); err != nil {
		t.Fatal(err)
	}
	second, err := s.Create(&CreateServiceDTO{Title: "Second", Category: "farming"})
	if err != nil {
		t.Fatal(err)
	}

	first := "first"
	if _, err := s.Update(second.ID, &UpdateServiceDTO{Slug: &first}); !errors.Is(err, ErrSlugTaken) {
		t.Errorf("got %v, want ErrSlugTaken", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	s := newTestService(t)
	svc, err := s.Create(&CreateServiceDTO{Title: "Keep Me", Category: "farming", MinInvestment: 100})
	if err != nil {
		t.Fatal(err)
	}

	newMin := 250.0
	updated, err := s.Update(svc.ID, &UpdateServiceDTO{MinInvestment: &newMin})
	if err != nil {
		t.Fatal(err)
	}
	if updated.MinInvestment != 250 {
		t.Errorf("min investment = %v, want 250", updated.MinInvestment)
	}
	if updated.Title != "Keep Me" || updated.Slug != "keep-me" {
		t.Error("untouched fields changed")
	}
}

func TestUpdateEmptySlugKeepsExisting(t *testing.T) {
	s := newTestService(t)
	svc, err := s.Create(&CreateServiceDTO{Title: "Organic Farming", Category: "farming"})
	if err != nil {
		t.Fatal(err)
	}

	empty := ""
	updated, err := s.Update(svc.ID, &UpdateServiceDTO{Slug: &empty})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Slug != "organic-farming" {
		t.Errorf("slug = %q, want organic-farming kept", updated.Slug)
	}

	// stored row keeps it too, and slug lookup still works
	got, err := s.GetByIDOrSlug("organic-farming", false)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != svc.ID {
		t.Error("slug lookup broken after empty-slug update")
	}
}

func TestUpdateEmptySlugRederivesFromNewTitle(t *testing.T) {
	s := newTestService(t)
	svc, err := s.Create(&CreateServiceDTO{Title: "Old Name", Category: "farming"})
	if err != nil {
		t.Fatal(err)
	}

	empty := ""
	title := "New Name"
	updated, err := s.Update(svc.ID, &UpdateServiceDTO{Title: &title, Slug: &empty})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Slug != "new-name" {
		t.Errorf("slug = %q, want new-name", updated.Slug)
	}
}

func TestDeleteMissing(t *testing.T) {
	s := newTestService(t)
	if err := s.Delete("nope"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("got %v, want ErrRecordNotFound", err)
	}
}
