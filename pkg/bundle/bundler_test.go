package bundle

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spicery/chainlist/pkg/common"
	"github.com/spicery/chainlist/pkg/linkedlist"
)

func newTestBundler(t *testing.T) *Bundler {
	t.Helper()
	b, err := NewBundler(filepath.Join(t.TempDir(), "bundle.db"))
	if err != nil {
		t.Fatalf("NewBundler failed: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	if err := b.Migrate(); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	return b
}

func TestCheckMigration(t *testing.T) {
	b, err := NewBundler(filepath.Join(t.TempDir(), "fresh.db"))
	if err != nil {
		t.Fatalf("NewBundler failed: %v", err)
	}
	defer b.Close()

	upToDate, err := b.CheckMigration()
	if err != nil {
		t.Fatalf("CheckMigration failed: %v", err)
	}
	if upToDate {
		t.Errorf("Expected fresh database to need migration")
	}

	if err := b.Migrate(); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	upToDate, err = b.CheckMigration()
	if err != nil {
		t.Fatalf("CheckMigration failed: %v", err)
	}
	if !upToDate {
		t.Errorf("Expected migrated database to be up to date")
	}
}

func TestSaveAndLoadChain(t *testing.T) {
	b := newTestBundler(t)

	l := linkedlist.New[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)
	if err := b.SaveChain(common.FromList("xs", l)); err != nil {
		t.Fatalf("SaveChain failed: %v", err)
	}

	chain, err := b.LoadChain("xs")
	if err != nil {
		t.Fatalf("LoadChain failed: %v", err)
	}
	if chain.Size != 3 {
		t.Errorf("Expected size 3, got %d", chain.Size)
	}
	if chain.Links[0].Type != "int" {
		t.Errorf("Expected type 'int', got '%s'", chain.Links[0].Type)
	}

	list, err := b.LoadList("xs")
	if err != nil {
		t.Fatalf("LoadList failed: %v", err)
	}
	if !slices.Equal(list.Values(), []string{"1", "2", "3"}) {
		t.Errorf("Expected [1 2 3], got %v", list.Values())
	}
	if list.Size() != 3 {
		t.Errorf("Expected size 3, got %d", list.Size())
	}
}

func TestSaveEmptyChain(t *testing.T) {
	b := newTestBundler(t)

	if err := b.SaveChain(common.FromList("empty", linkedlist.New[string]())); err != nil {
		t.Fatalf("SaveChain failed: %v", err)
	}
	list, err := b.LoadList("empty")
	if err != nil {
		t.Fatalf("LoadList failed: %v", err)
	}
	if list.Size() != 0 || list.Head() != nil {
		t.Errorf("Expected empty list, got size %d", list.Size())
	}
}

func TestSaveChainReplaces(t *testing.T) {
	b := newTestBundler(t)

	long := linkedlist.New[string]()
	long.Append("a")
	long.Append("b")
	long.Append("c")
	if err := b.SaveChain(common.FromList("xs", long)); err != nil {
		t.Fatalf("SaveChain failed: %v", err)
	}

	short := linkedlist.New[string]()
	short.Append("z")
	if err := b.SaveChain(common.FromList("xs", short)); err != nil {
		t.Fatalf("SaveChain failed: %v", err)
	}

	list, err := b.LoadList("xs")
	if err != nil {
		t.Fatalf("LoadList failed: %v", err)
	}
	if !slices.Equal(list.Values(), []string{"z"}) {
		t.Errorf("Expected [z], got %v", list.Values())
	}
}

func TestSaveUnnamedChainTwice(t *testing.T) {
	b := newTestBundler(t)

	first := linkedlist.New[string]()
	first.Append("a")
	if err := b.SaveChain(common.FromList("", first)); err != nil {
		t.Fatalf("First SaveChain failed: %v", err)
	}

	second := linkedlist.New[string]()
	second.Append("b")
	second.Append("c")
	if err := b.SaveChain(common.FromList("", second)); err != nil {
		t.Fatalf("Second SaveChain failed: %v", err)
	}

	chain, err := b.LoadChain("")
	if err != nil {
		t.Fatalf("LoadChain failed: %v", err)
	}
	if chain.Size != 2 {
		t.Errorf("Expected size 2, got %d", chain.Size)
	}
	if !slices.Equal(chain.ToList().Values(), []string{"b", "c"}) {
		t.Errorf("Expected [b c], got %v", chain.ToList().Values())
	}

	names, err := b.ChainNames()
	if err != nil {
		t.Fatalf("ChainNames failed: %v", err)
	}
	if !slices.Equal(names, []string{""}) {
		t.Errorf("Expected a single unnamed chain, got %q", names)
	}
}

func TestSaveInvalidChain(t *testing.T) {
	b := newTestBundler(t)

	bad := &common.Chain{Name: "bad", Size: 5}
	if err := b.SaveChain(bad); err == nil {
		t.Errorf("Expected invalid chain to be rejected")
	}
	if _, err := b.LoadChain("bad"); !errors.Is(err, ErrChainNotFound) {
		t.Errorf("Expected rejected chain not to be stored, got %v", err)
	}
}

func TestLoadMissingChain(t *testing.T) {
	b := newTestBundler(t)

	_, err := b.LoadChain("nope")
	if !errors.Is(err, ErrChainNotFound) {
		t.Errorf("Expected ErrChainNotFound, got %v", err)
	}
}

func TestLoadCorruptChain(t *testing.T) {
	b := newTestBundler(t)

	if err := b.db.Create(&ChainRecord{Name: "broken", Size: 2}).Error; err != nil {
		t.Fatalf("Failed to seed chain record: %v", err)
	}
	if err := b.db.Create(&LinkRecord{ChainName: "broken", Position: 0, Value: "only"}).Error; err != nil {
		t.Fatalf("Failed to seed link record: %v", err)
	}

	_, err := b.LoadChain("broken")
	if !errors.Is(err, ErrCorruptChain) {
		t.Errorf("Expected ErrCorruptChain, got %v", err)
	}
}

func TestChainNames(t *testing.T) {
	b := newTestBundler(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := b.SaveChain(common.FromList(name, linkedlist.New[int]())); err != nil {
			t.Fatalf("SaveChain failed: %v", err)
		}
	}
	names, err := b.ChainNames()
	if err != nil {
		t.Fatalf("ChainNames failed: %v", err)
	}
	if !slices.Equal(names, []string{"alpha", "mid", "zeta"}) {
		t.Errorf("Expected sorted names, got %v", names)
	}
}
