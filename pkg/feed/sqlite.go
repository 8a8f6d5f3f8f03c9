package feed

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"
)

// Item is a row of the items table.
type Item struct {
	ID    int64
	Title string
}

func (i Item) String() string {
	return fmt.Sprintf("#%d %s", i.ID, i.Title)
}

const schema = `CREATE TABLE IF NOT EXISTS items (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteSource pages through the items table with keyset pagination:
// the cursor is the last id served.
type SQLiteSource struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the database at path and ensures
// the schema exists.
func OpenSQLite(ctx context.Context, path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", buildDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps writes serialized.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteSource{db: db, path: path}, nil
}

func buildDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
}

// Path returns the database path.
func (s *SQLiteSource) Path() string {
	return s.path
}

// Fetch returns up to limit rows with id greater than cursor.
func (s *SQLiteSource) Fetch(ctx context.Context, cursor string, limit int) (Page[Item], error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	var after int64
	if cursor != "" {
		n, err := strconv.ParseInt(cursor, 10, 64)
		if err != nil || n < 0 {
			return Page[Item]{}, fmt.Errorf("%w: %q", ErrBadCursor, cursor)
		}
		after = n
	}

	// One extra row tells whether another page follows.
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title FROM items WHERE id > ? ORDER BY id LIMIT ?`, after, limit+1)
	if err != nil {
		return Page[Item]{}, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0, limit)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Title); err != nil {
			return Page[Item]{}, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return Page[Item]{}, fmt.Errorf("failed to read items: %w", err)
	}

	page := Page[Item]{Done: len(items) <= limit, Next: cursor}
	if !page.Done {
		items = items[:limit]
	}
	page.Items = items
	if len(items) > 0 {
		page.Next = strconv.FormatInt(items[len(items)-1].ID, 10)
	}
	return page, nil
}

// Insert appends rows with the given titles and returns them.
func (s *SQLiteSource) Insert(ctx context.Context, titles ...string) ([]Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items (title) VALUES (?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	out := make([]Item, 0, len(titles))
	for _, title := range titles {
		res, err := stmt.ExecContext(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("failed to insert %q: %w", title, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read id: %w", err)
		}
		out = append(out, Item{ID: id, Title: title})
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return out, nil
}

// Seed inserts n rows titled "<prefix> <k>" continuing from the current count.
func (s *SQLiteSource) Seed(ctx context.Context, n int, prefix string) (int, error) {
	start, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	titles := make([]string, n)
	for i := range titles {
		titles[i] = fmt.Sprintf("%s %d", prefix, start+i+1)
	}
	items, err := s.Insert(ctx, titles...)
	return len(items), err
}

// Count returns the number of rows.
func (s *SQLiteSource) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return n, nil
}

// Close closes the database.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
