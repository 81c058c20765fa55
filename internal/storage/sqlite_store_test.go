package storage

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"focusdeck/internal/core/model"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSQLiteStoreSetUpsertsYAML(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	fixed := time.Date(2026, 5, 6, 7, 8, 9, 0, time.FixedZone("X", 3600))
	store := NewSQLiteStore(db)
	store.now = func() time.Time { return fixed }

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv")).
		WithArgs(KeyCoffee, "4\n", fixed.UTC()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Set(KeyCoffee, 4); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLiteStoreGetMissingKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs(KeyTodos).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	var todos []model.Todo
	found, err := NewSQLiteStore(db).Get(KeyTodos, &todos)
	if err != nil || found {
		t.Fatalf("expected missing key, got found=%v err=%v", found, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLiteStoreGetDecodes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv")).
		WithArgs(KeyStats).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("total_sessions: 7\ntotal_focus_minutes: 175\n"))

	var stats model.Stats
	found, err := NewSQLiteStore(db).Get(KeyStats, &stats)
	if err != nil || !found {
		t.Fatalf("expected value, got found=%v err=%v", found, err)
	}
	if stats.TotalSessions != 7 || stats.TotalFocusMinutes != 175 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestSQLiteStorePropagatesQueryErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	boom := errors.New("disk I/O error")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv")).
		WithArgs(KeyConfig).
		WillReturnError(boom)

	var config model.Config
	if _, err := NewSQLiteStore(db).Get(KeyConfig, &config); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestSQLiteStoreRoundTripOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", databaseFileName)
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}

	todos := []model.Todo{{ID: "a", Text: "plan"}, {ID: "b", Text: "ship", Completed: true}}
	if err := store.Set(KeyTodos, todos); err != nil {
		t.Fatalf("Set todos: %v", err)
	}
	todos[0].Text = "plan sprint"
	if err := store.Set(KeyTodos, todos); err != nil {
		t.Fatalf("overwrite todos: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	loaded, err := Value(reopened, KeyTodos, []model.Todo(nil))
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Text != "plan sprint" || !loaded[1].Completed {
		t.Fatalf("unexpected todos: %+v", loaded)
	}
}
