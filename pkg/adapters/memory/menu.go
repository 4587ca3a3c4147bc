package memory

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/orderbot/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Menu implements ports.MenuService over a fixed list.
type Menu struct {
	items []domain.MenuItem
}

// NewMenu creates a menu that serves items in the given order.
func NewMenu(items ...domain.MenuItem) *Menu {
	return &Menu{items: append([]domain.MenuItem(nil), items...)}
}

// NewMenuFromNames numbers names from 1, which is handy for tests and demos.
func NewMenuFromNames(names ...string) *Menu {
	items := make([]domain.MenuItem, 0, len(names))
	for i, n := range names {
		items = append(items, domain.MenuItem{ID: i + 1, Name: n})
	}
	return &Menu{items: items}
}

// DefaultMenu mirrors the pizzas served by the public demo API.
func DefaultMenu() *Menu {
	return NewMenuFromNames("Margherita", "Salami", "Funghi", "Quattro Formaggi", "Tonno")
}

// LoadMenuFile reads a YAML list of {id, name} records.
func LoadMenuFile(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var items []domain.MenuItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse menu file %s: %w", path, err)
	}
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if it.Name == "" {
			return nil, fmt.Errorf("menu file %s: item %d has no name", path, i)
		}
		if seen[it.Name] {
			return nil, fmt.Errorf("menu file %s: duplicate item %q", path, it.Name)
		}
		seen[it.Name] = true
	}
	return NewMenu(items...), nil
}

// ListItems returns a copy of the menu.
func (m *Menu) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.MenuItem(nil), m.items...), nil
}
