package bundle

import (
	"errors"
	"fmt"

	"github.com/spicery/chainlist/pkg/common"
	"github.com/spicery/chainlist/pkg/linkedlist"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	ErrChainNotFound = errors.New("chain not found")
	ErrCorruptChain  = errors.New("corrupt chain")
)

// Bundler stores chains in a SQLite bundle file.
type Bundler struct {
	db *gorm.DB
}

// NewBundler opens (or creates) the bundle at dbPath.
func NewBundler(dbPath string) (*Bundler, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Bundler{db: db}, nil
}

// Migrate performs database migrations.
func (b *Bundler) Migrate() error {
	return Migrate(b.db)
}

// CheckMigration checks if the database schema is up to date.
func (b *Bundler) CheckMigration() (bool, error) {
	return CheckMigration(b.db)
}

// SaveChain replaces any stored chain of the same name.
func (b *Bundler) SaveChain(chain *common.Chain) error {
	if err := chain.Validate(); err != nil {
		return fmt.Errorf("failed to save chain: %w", err)
	}

	return b.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("chain_name = ?", chain.Name).Delete(&LinkRecord{})
		if result.Error != nil {
			return fmt.Errorf("failed to clear old links: %w", result.Error)
		}

		// Save would INSERT for the empty name, which is a zero primary key.
		record := ChainRecord{Name: chain.Name, Size: chain.Size}
		result = tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record)
		if result.Error != nil {
			return fmt.Errorf("failed to save chain record: %w", result.Error)
		}

		if len(chain.Links) == 0 {
			return nil
		}
		links := make([]LinkRecord, 0, len(chain.Links))
		for _, link := range chain.Links {
			links = append(links, LinkRecord{
				ChainName: chain.Name,
				Position:  link.Position,
				Value:     link.Value,
				Type:      link.Type,
			})
		}
		result = tx.Create(&links)
		if result.Error != nil {
			return fmt.Errorf("failed to save links: %w", result.Error)
		}
		return nil
	})
}

// LoadChain reads a stored chain back, checking its size against its links.
func (b *Bundler) LoadChain(name string) (*common.Chain, error) {
	var record ChainRecord
	result := b.db.Where("name = ?", name).Limit(1).Find(&record)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load chain record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChainNotFound, name)
	}

	var links []LinkRecord
	result = b.db.Where("chain_name = ?", name).Order("position").Find(&links)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load links: %w", result.Error)
	}

	chain := &common.Chain{
		Name:  record.Name,
		Size:  record.Size,
		Links: make([]*common.Link, 0, len(links)),
	}
	for _, link := range links {
		chain.Links = append(chain.Links, &common.Link{
			Position: link.Position,
			Value:    link.Value,
			Type:     link.Type,
		})
	}
	if err := chain.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptChain, err)
	}
	return chain, nil
}

// LoadList loads a stored chain and rebuilds it as a list of printed values.
func (b *Bundler) LoadList(name string) (*linkedlist.LinkedList[string], error) {
	chain, err := b.LoadChain(name)
	if err != nil {
		return nil, err
	}
	return chain.ToList(), nil
}

// ChainNames returns the names of all stored chains, sorted.
func (b *Bundler) ChainNames() ([]string, error) {
	var names []string
	result := b.db.Model(&ChainRecord{}).Order("name").Pluck("name", &names)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list chains: %w", result.Error)
	}
	return names, nil
}

// Close closes the database connection.
func (b *Bundler) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
