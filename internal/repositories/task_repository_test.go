package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-matrix-system.com/task-matrix/internal/constants"
	model "task-matrix-system.com/task-matrix/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func mustCreate(t *testing.T, repo *TaskRepository, task model.Task) model.Task {
	t.Helper()

	if err := repo.Create(context.Background(), &task); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return task
}

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

func assertOrder(t *testing.T, tasks []model.Task, want ...string) {
	t.Helper()

	got := titles(tasks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %v", len(want), got)
	}
	for n := range want {
		if got[n] != want[n] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestListDefaultOrderByQuadrant(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Created in reverse so insertion order cannot mask the sort.
	mustCreate(t, repo, model.Task{Title: "q4", Urgency: constants.UrgencyNotUrgent, Importance: constants.ImportanceNotImportant, CreatedAt: base})
	mustCreate(t, repo, model.Task{Title: "q3", Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceNotImportant, CreatedAt: base})
	mustCreate(t, repo, model.Task{Title: "q2", Urgency: constants.UrgencyNotUrgent, Importance: constants.ImportanceImportant, CreatedAt: base})
	mustCreate(t, repo, model.Task{Title: "q1", Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceImportant, CreatedAt: base})

	tasks, err := repo.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	// Urgency outranks importance, so both urgent quadrants come first.
	assertOrder(t, tasks, "q1", "q3", "q2", "q4")
}

func TestListDefaultOrderWithinQuadrant(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	soon := base.Add(24 * time.Hour)
	later := base.Add(72 * time.Hour)

	mustCreate(t, repo, model.Task{Title: "no due, older", Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceImportant, CreatedAt: base})
	mustCreate(t, repo, model.Task{Title: "no due, newer", Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceImportant, CreatedAt: base.Add(time.Hour)})
	mustCreate(t, repo, model.Task{Title: "due later", Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceImportant, DueDate: &later, CreatedAt: base})
	mustCreate(t, repo, model.Task{Title: "due soon", Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceImportant, DueDate: &soon, CreatedAt: base})

	tasks, err := repo.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	// Dated tasks ascending, then undated, newest created first.
	assertOrder(t, tasks, "due soon", "due later", "no due, newer", "no due, older")
}

func TestListFilters(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))

	mustCreate(t, repo, model.Task{Title: "open q1", Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceImportant})
	mustCreate(t, repo, model.Task{Title: "done q1", Completed: true, Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceImportant})
	mustCreate(t, repo, model.Task{Title: "open q2", Urgency: constants.UrgencyNotUrgent, Importance: constants.ImportanceImportant})
	mustCreate(t, repo, model.Task{Title: "open q4", Urgency: constants.UrgencyNotUrgent, Importance: constants.ImportanceNotImportant})

	ctx := context.Background()

	completed := true
	tasks, err := repo.List(ctx, ListFilter{Completed: &completed})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	assertOrder(t, tasks, "done q1")

	tasks, _ = repo.List(ctx, ListFilter{Urgency: constants.UrgencyUrgent})
	if len(tasks) != 2 {
		t.Errorf("urgency filter: expected 2 tasks, got %d", len(tasks))
	}

	tasks, _ = repo.List(ctx, ListFilter{Importance: constants.ImportanceImportant})
	if len(tasks) != 3 {
		t.Errorf("importance filter: expected 3 tasks, got %d", len(tasks))
	}

	tasks, _ = repo.List(ctx, ListFilter{Quadrant: 2})
	assertOrder(t, tasks, "open q2")

	// Conjunctive filters.
	open := false
	tasks, _ = repo.List(ctx, ListFilter{Completed: &open, Quadrant: 1})
	assertOrder(t, tasks, "open q1")

	// An out-of-range quadrant applies no filter.
	tasks, _ = repo.List(ctx, ListFilter{Quadrant: 9})
	if len(tasks) != 4 {
		t.Errorf("invalid quadrant: expected all 4 tasks, got %d", len(tasks))
	}
}

func TestListSortPresets(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	soon := base.Add(24 * time.Hour)
	later := base.Add(72 * time.Hour)

	mustCreate(t, repo, model.Task{Title: "a", Urgency: constants.UrgencyNotUrgent, Importance: constants.ImportanceImportant, DueDate: &later, CreatedAt: base})
	mustCreate(t, repo, model.Task{Title: "b", Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceNotImportant, DueDate: &soon, CreatedAt: base.Add(time.Hour)})
	mustCreate(t, repo, model.Task{Title: "c", Urgency: constants.UrgencyNotUrgent, Importance: constants.ImportanceNotImportant, CreatedAt: base.Add(2 * time.Hour)})

	ctx := context.Background()

	tasks, _ := repo.List(ctx, ListFilter{Sort: "urgency"})
	assertOrder(t, tasks, "b", "a", "c")

	tasks, _ = repo.List(ctx, ListFilter{Sort: "importance"})
	assertOrder(t, tasks, "a", "b", "c")

	tasks, _ = repo.List(ctx, ListFilter{Sort: "eisenhower"})
	assertOrder(t, tasks, "b", "a", "c")

	// Undated tasks go last.
	tasks, _ = repo.List(ctx, ListFilter{Sort: "due_date"})
	assertOrder(t, tasks, "b", "a", "c")

	tasks, _ = repo.List(ctx, ListFilter{Sort: "created_at"})
	assertOrder(t, tasks, "c", "b", "a")
}

func TestCountOpenInQuadrant(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))

	mustCreate(t, repo, model.Task{Title: "open 1", Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceImportant})
	mustCreate(t, repo, model.Task{Title: "open 2", Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceImportant})
	mustCreate(t, repo, model.Task{Title: "done", Completed: true, Urgency: constants.UrgencyUrgent, Importance: constants.ImportanceImportant})
	mustCreate(t, repo, model.Task{Title: "other quadrant", Urgency: constants.UrgencyNotUrgent, Importance: constants.ImportanceImportant})

	count, err := repo.CountOpenInQuadrant(context.Background(), constants.UrgencyUrgent, constants.ImportanceImportant)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 open tasks in quadrant, got %d", count)
	}
}

func TestUpdateOptimisticLock(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	created := mustCreate(t, repo, model.Task{Title: "contended", Urgency: constants.UrgencyNotUrgent, Importance: constants.ImportanceNotImportant})

	first, _ := repo.FindByID(ctx, created.ID)
	second, _ := repo.FindByID(ctx, created.ID)

	first.Title = "winner"
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	second.Title = "loser"
	if err := repo.Update(ctx, second); !errors.Is(err, ErrOptimisticLock) {
		t.Fatalf("expected ErrOptimisticLock, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	created := mustCreate(t, repo, model.Task{Title: "doomed"})

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, created.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}

	if err := repo.Delete(ctx, created.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleting twice should report not found, got %v", err)
	}
}
