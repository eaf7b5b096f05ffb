package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
)

type fakeDB struct {
	rows     [][]any
	queries  []string
	args     [][]any
	execSQL  []string
	queryErr error
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	db.queries = append(db.queries, sql)
	db.args = append(db.args, args)
	if db.queryErr != nil {
		return nil, db.queryErr
	}
	return &fakeRows{rows: db.rows}, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) Row {
	panic("not used")
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) error {
	db.execSQL = append(db.execSQL, sql)
	return nil
}

func (db *fakeDB) Begin(ctx context.Context) (Tx, error) {
	panic("not used")
}

func (db *fakeDB) Close() {}

type fakeRows struct {
	rows [][]any
	pos  int
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	*(dest[0].(*string)) = row[0].(string)
	*(dest[1].(*int)) = row[1].(int)
	return nil
}

func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Close()     {}

func TestPopularItemsForwardsRoleAndScansRows(t *testing.T) {
	db := &fakeDB{rows: [][]any{
		{"Unknown Name", 1},
		{"Orange Chicken", 7},
	}}
	repo := NewReportRepository(db)

	start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 4)

	rows, err := repo.PopularItems(context.Background(), start, end, domain.RoleMain)
	if err != nil {
		t.Fatalf("PopularItems: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Name != "Unknown Name" || rows[0].Quantity != 1 {
		t.Errorf("first row = %+v, want Unknown Name/1", rows[0])
	}

	if len(db.args) != 1 || len(db.args[0]) != 3 {
		t.Fatalf("query args = %v, want start, end, role", db.args)
	}
	if db.args[0][2] != domain.RoleMain {
		t.Errorf("role arg = %v, want %v", db.args[0][2], domain.RoleMain)
	}
}

func TestPopularSizesEmptyResultIsEmptySlice(t *testing.T) {
	repo := NewReportRepository(&fakeDB{})

	rows, err := repo.PopularSizes(context.Background(), time.Now(), time.Now())
	if err != nil {
		t.Fatalf("PopularSizes: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("rows = %v, want empty non-nil slice", rows)
	}
}

func TestMigrateAppliesFilesInOrder(t *testing.T) {
	db := &fakeDB{}

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	if len(db.execSQL) < 2 {
		t.Fatalf("applied %d migrations, want at least 2", len(db.execSQL))
	}
	// Schema must land before the size seed data referencing it.
	if !strings.Contains(db.execSQL[0], "CREATE TABLE") {
		t.Errorf("first migration should create the schema: %.60s", db.execSQL[0])
	}
	if !strings.Contains(db.execSQL[1], "INSERT INTO sizes") {
		t.Errorf("second migration should seed sizes: %.60s", db.execSQL[1])
	}
}
