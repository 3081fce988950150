package repos

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/types"
)

// The production schema leans on Postgres uuid defaults, so the test schema
// is created by hand; ids are supplied explicitly.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	ddl := []string{
		`CREATE TABLE education (
			id TEXT PRIMARY KEY,
			institution TEXT NOT NULL,
			degree TEXT NOT NULL,
			field TEXT,
			start_year TEXT,
			end_year TEXT,
			description TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE industry_experience (
			id TEXT PRIMARY KEY,
			company TEXT NOT NULL,
			role TEXT NOT NULL,
			start_date TEXT,
			end_date TEXT,
			summary TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE publication (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			venue TEXT,
			year TEXT,
			authors TEXT,
			url TEXT,
			abstract TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New failed: %v", err)
	}
	return log
}

func TestEducationDeleteByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewEducationRepo(db, newTestLogger(t))
	ctx := context.Background()

	rows := []*types.Education{
		{ID: "edu-1", Institution: "University of Waterloo", Degree: "B.Sc."},
		{ID: "edu-2", Institution: "University of Toronto", Degree: "M.Sc."},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed rows: %v", err)
	}

	if err := repo.DeleteByID(ctx, nil, "edu-1"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}

	// Repeated delete of the same id must surface a distinguishable
	// not-found outcome, not a generic failure.
	err := repo.DeleteByID(ctx, nil, "edu-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}

	count, err := repo.CountAll(ctx, nil)
	if err != nil {
		t.Fatalf("CountAll failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("got count %d, want 1", count)
	}
}

func TestExperienceDeleteByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewExperienceRepo(db, newTestLogger(t))
	ctx := context.Background()

	row := &types.IndustryExperience{ID: "exp-1", Company: "Northseed", Role: "ML Engineer"}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("seed row: %v", err)
	}

	if err := repo.DeleteByID(ctx, nil, "exp-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.DeleteByID(ctx, nil, "exp-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestPublicationDeleteByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPublicationRepo(db, newTestLogger(t))
	ctx := context.Background()

	row := &types.Publication{ID: "pub-1", Title: "Offline Evaluation Pitfalls"}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("seed row: %v", err)
	}

	if err := repo.DeleteByID(ctx, nil, "pub-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.DeleteByID(ctx, nil, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete of unknown id: got %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesExactlyOneRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewPublicationRepo(db, newTestLogger(t))
	ctx := context.Background()

	rows := []*types.Publication{
		{ID: "pub-1", Title: "first"},
		{ID: "pub-2", Title: "second"},
		{ID: "pub-3", Title: "third"},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed rows: %v", err)
	}

	if err := repo.DeleteByID(ctx, nil, "pub-2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var remaining int64
	if err := db.Model(&types.Publication{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 2 {
		t.Fatalf("got %d remaining rows, want 2", remaining)
	}
}
