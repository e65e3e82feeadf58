// Package sqlite renders a weekly schedule as a SQLite database snapshot.
//
// This renderer uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. The database is built in a temporary file and its bytes are
// then copied to the output writer.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
	"github.com/custodia-labs/coursesched/internal/renderers/sqlite/migrations"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer writes a courses table holding every record.
type Renderer struct {
	// TempDir is where the working database is created; empty uses os.TempDir.
	TempDir string
}

// New creates a SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the format name.
func (r *Renderer) Name() string { return "sqlite" }

// Extension returns the file extension.
func (r *Renderer) Extension() string { return ".db" }

// Render builds the database and streams it to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, schedule *domain.WeeklySchedule) error {
	dir, err := os.MkdirTemp(r.TempDir, "coursesched-*")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	dbPath := filepath.Join(dir, "schedule.db")
	if err := build(ctx, dbPath, schedule); err != nil {
		return err
	}

	f, err := os.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("copying database: %w", err)
	}
	return nil
}

func build(ctx context.Context, dbPath string, schedule *domain.WeeklySchedule) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := migrate(ctx, db, migrations.FS); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if err := insertAll(ctx, db, schedule); err != nil {
		return err
	}
	return db.Close()
}

// migrate runs every *.up.sql file in version order.
func migrate(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}
	return nil
}

func insertAll(ctx context.Context, db *sql.DB, schedule *domain.WeeklySchedule) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO courses (
			id, day, day_position, position, course_code, course_name, day_time,
			professor, theory_units, practical_units, total_units, class_name,
			section, class_code, exam, place, source
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for dayPos, day := range schedule.Days() {
		for pos := range day.Courses {
			c := &day.Courses[pos]
			_, err := stmt.ExecContext(ctx,
				c.ID, day.Name, dayPos, pos, c.CourseCode, c.CourseName, c.DayTime,
				c.Professor, c.TheoryUnits, c.PracticalUnits, c.TotalUnits, c.ClassName,
				c.Section, c.ClassCode, c.Exam, c.Place, c.Source,
			)
			if err != nil {
				return fmt.Errorf("inserting course %s: %w", c.CourseCode, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing courses: %w", err)
	}
	return nil
}
