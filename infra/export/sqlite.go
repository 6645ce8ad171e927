package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/kilianp07/naukma-schedule/core/factory"
	"github.com/kilianp07/naukma-schedule/core/schedule"
)

func init() {
	_ = Register("sqlite", func(conf map[string]any) (Exporter, error) {
		var c fileConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Path == "" || c.Path == Stdout {
			return nil, fmt.Errorf("sqlite export needs a file path")
		}
		return &SQLiteExporter{Path: c.Path}, nil
	})
}

const lessonsSchema = `CREATE TABLE lessons (
        faculty TEXT NOT NULL,
        speciality TEXT NOT NULL,
        discipline TEXT NOT NULL,
        day TEXT NOT NULL,
        time TEXT NOT NULL,
        group_name TEXT NOT NULL,
        weeks TEXT NOT NULL,
        auditorium TEXT NOT NULL,
        PRIMARY KEY(faculty, speciality, discipline, day, time, group_name, weeks, auditorium)
    );`

// SQLiteExporter writes the flattened schedule into the lessons table of a
// SQLite file. The table is recreated on every export.
type SQLiteExporter struct {
	Path string
}

func (e *SQLiteExporter) Export(ctx context.Context, s *schedule.Schedule) (err error) {
	db, err := sql.Open("sqlite", e.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DROP TABLE IF EXISTS lessons`); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, lessonsSchema); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO lessons
        (faculty, speciality, discipline, day, time, group_name, weeks, auditorium)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()
	for _, l := range s.Lessons() {
		if _, err = stmt.ExecContext(ctx, l.Faculty, l.Speciality, l.Discipline, l.Day, l.Time, l.Group, l.Weeks, l.Auditorium); err != nil {
			return fmt.Errorf("insert %s/%s: %w", l.Faculty, l.Discipline, err)
		}
	}
	return tx.Commit()
}
