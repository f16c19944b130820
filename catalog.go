package puzzler

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog records every successful cut in a SQLite database.
type Catalog struct {
	db *sql.DB
}

// Run is a cut as recorded in the catalog.
type Run struct {
	Dir         string
	Source      string
	SourceSHA1  string
	Orientation string
	Created     time.Time
	Pieces      int
}

// OpenCatalog opens, and if necessary creates, the catalog stored in file.
func OpenCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS run (id INTEGER PRIMARY KEY NOT NULL, dir TEXT NOT NULL UNIQUE, source TEXT NOT NULL, sha1 TEXT NOT NULL, orientation TEXT NOT NULL, created INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS piece (run_id INTEGER NOT NULL, name TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, UNIQUE(run_id, name), FOREIGN KEY(run_id) REFERENCES run(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record stores the result of a cut and all of its pieces.
func (c *Catalog) Record(r *Result) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}

	if err := record(tx, r, time.Now()); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func record(tx *sql.Tx, r *Result, now time.Time) error {
	result, err := tx.Exec("INSERT INTO run (dir, source, sha1, orientation, created) VALUES (?, ?, ?, ?, ?)", r.Dir, r.Source, r.SourceSHA1, r.Orientation.String(), now.UnixNano())
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for _, p := range r.Pieces {
		if _, err := tx.Exec("INSERT INTO piece (run_id, name, width, height) VALUES (?, ?, ?, ?)", id, p.Name, p.Bounds.Dx(), p.Bounds.Dy()); err != nil {
			return err
		}
	}

	return nil
}

// Runs returns every recorded cut, newest first.
func (c *Catalog) Runs() ([]Run, error) {
	rows, err := c.db.Query("SELECT r.dir, r.source, r.sha1, r.orientation, r.created, COUNT(p.name) FROM run AS r LEFT JOIN piece AS p ON p.run_id = r.id GROUP BY r.id ORDER BY r.created DESC, r.id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var created int64
		if err := rows.Scan(&run.Dir, &run.Source, &run.SourceSHA1, &run.Orientation, &created, &run.Pieces); err != nil {
			return nil, err
		}
		run.Created = time.Unix(0, created)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Pieces returns the names and sizes of the pieces written to dir.
func (c *Catalog) Pieces(dir string) ([]Piece, error) {
	rows, err := c.db.Query("SELECT p.name, p.width, p.height FROM piece AS p JOIN run AS r ON p.run_id = r.id WHERE r.dir = ? ORDER BY p.name", dir)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pieces []Piece
	for rows.Next() {
		var p Piece
		var width, height int
		if err := rows.Scan(&p.Name, &width, &height); err != nil {
			return nil, err
		}
		p.Bounds.Max.X, p.Bounds.Max.Y = width, height
		p.Path = pieceFile(dir, p.Name)
		pieces = append(pieces, p)
	}

	return pieces, rows.Err()
}
