package leveltool

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// BuildDB records the input checksum of every compiled level so a rescan
// can skip levels whose inputs have not changed.
type BuildDB struct {
	db *sql.DB
}

func NewBuildDB(file string) (*BuildDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS build (id INTEGER PRIMARY KEY NOT NULL, spec TEXT NOT NULL UNIQUE, crc TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	return &BuildDB{
		db: db,
	}, nil
}

func (db *BuildDB) Close() error {
	return db.db.Close()
}

// UpToDate reports whether spec was last built from inputs with this crc.
func (db *BuildDB) UpToDate(spec, crc string) (bool, error) {
	var stored string
	switch err := db.db.QueryRow("SELECT crc FROM build WHERE spec = ?", spec).Scan(&stored); err {
	case sql.ErrNoRows:
		return false, nil
	case nil:
		return stored == crc, nil
	default:
		return false, err
	}
}

// Record stores the input crc for spec, replacing any previous build.
func (db *BuildDB) Record(spec, crc string) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO build (spec, crc) VALUES (?, ?)", spec, crc); err != nil {
		return err
	}
	return nil
}
