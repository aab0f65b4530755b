package providers

import (
	"context"
	"fmt"
	"sort"

	"treeboard/core/tree"
	"treeboard/core/utils"

	"gorm.io/gorm"
)

// Database reads the emulator catalog and produces one root per item type
// with the items as children. Items missing a name are flagged with a
// warning status so they surface at the top of their group.
type Database struct {
	db *gorm.DB
}

// NewDatabase creates a database-backed provider.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// Name identifies the provider.
func (p *Database) Name() string {
	return "database"
}

// FetchPartialTree scans items_base and groups items by type.
func (p *Database) FetchPartialTree(ctx context.Context) (*tree.Tree, error) {
	// Scan into maps: MySQL drivers return []byte for text columns and the
	// column set varies between emulator schemas, so typed structs don't fit.
	var rows []map[string]interface{}
	err := p.db.WithContext(ctx).
		Table("items_base").
		Select("id", "item_name", "type").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog rows: %w", err)
	}

	groups := make(map[string][]*tree.Node)
	for _, row := range rows {
		id := utils.ToInt(row["id"])
		name := utils.ToString(row["item_name"])
		itemType := utils.ToString(row["type"])
		if itemType == "" {
			itemType = "untyped"
		}

		status := tree.StatusOK
		title := name
		if name == "" {
			status = tree.StatusWarning
			title = fmt.Sprintf("item %d", id)
		}

		groups[itemType] = append(groups[itemType], &tree.Node{
			ID:     fmt.Sprintf("db:%s:%d", itemType, id),
			Title:  title,
			Status: status,
			Source: p.Name(),
		})
	}

	// Deterministic root order; the assembler re-sorts everything anyway.
	types := make([]string, 0, len(groups))
	for itemType := range groups {
		types = append(types, itemType)
	}
	sort.Strings(types)

	forest := &tree.Tree{}
	for _, itemType := range types {
		forest.Roots = append(forest.Roots, &tree.Node{
			ID:       "db:" + itemType,
			Title:    itemType,
			Status:   groupStatus(groups[itemType]),
			Source:   p.Name(),
			Children: groups[itemType],
		})
	}
	return forest, nil
}

// groupStatus is the worst status among the children.
func groupStatus(children []*tree.Node) string {
	status := tree.StatusOK
	for _, c := range children {
		switch c.Status {
		case tree.StatusError:
			return tree.StatusError
		case tree.StatusWarning:
			status = tree.StatusWarning
		}
	}
	return status
}
