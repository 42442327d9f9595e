package bundle

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrSchemaOutOfDate = errors.New("database schema is not up to date")

// OpenBundle opens the bundle at dbPath and brings its schema up to date.
// A file that did not exist before is migrated automatically; an existing
// file with an old schema is only migrated when allowMigrate is set.
// Progress notices are written to notices.
func OpenBundle(dbPath string, allowMigrate bool, notices io.Writer) (*Bundler, error) {
	_, err := os.Stat(dbPath)
	fileExists := err == nil

	b, err := NewBundler(dbPath)
	if err != nil {
		return nil, err
	}

	upToDate, err := b.CheckMigration()
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to check migration status: %w", err)
	}
	if upToDate {
		return b, nil
	}

	if fileExists && !allowMigrate {
		b.Close()
		return nil, ErrSchemaOutOfDate
	}
	if err := b.Migrate(); err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if fileExists {
		fmt.Fprintf(notices, "Database migration completed successfully.\n")
	} else {
		fmt.Fprintf(notices, "Database initialized successfully.\n")
	}
	return b, nil
}
