package bundle

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ChainRecord represents a named chain stored in the bundle.
type ChainRecord struct {
	Name string `gorm:"primaryKey"`
	Size int
}

// LinkRecord represents one node of a stored chain.
type LinkRecord struct {
	ChainName string `gorm:"primaryKey;index"`
	Position  int    `gorm:"primaryKey;autoIncrement:false"`
	Value     string
	Type      string
}

// getMigrations returns the list of migrations for the bundle database.
func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202610150001",
			Migrate: func(tx *gorm.DB) error {
				// Create initial schema.
				return tx.AutoMigrate(
					&ChainRecord{},
					&LinkRecord{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				// Drop all tables.
				return tx.Migrator().DropTable(
					&LinkRecord{},
					&ChainRecord{},
				)
			},
		},
	}
}

// Migrate performs database migrations using gormigrate.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, getMigrations())
	return m.Migrate()
}

// CheckMigration checks if the database schema is up to date.
func CheckMigration(db *gorm.DB) (bool, error) {
	// A missing migrations table means nothing has been applied yet.
	// Use a silent logger to avoid spurious warnings on fresh databases.
	var lastMigration string
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Table(gormigrate.DefaultOptions.TableName).
		Select("id").
		Order("id DESC").
		Limit(1).
		Scan(&lastMigration).Error

	if err != nil {
		return false, nil
	}

	migrations := getMigrations()
	if len(migrations) == 0 {
		return true, nil
	}

	// The last migration in our list should match the last applied migration.
	expectedLastID := migrations[len(migrations)-1].ID
	return lastMigration == expectedLastID, nil
}
