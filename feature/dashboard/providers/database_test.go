package providers

import (
	"context"
	"errors"
	"testing"

	"treeboard/core/tree"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestDatabase_FetchPartialTree(t *testing.T) {
	t.Run("GroupsItemsByType", func(t *testing.T) {
		db, mock := setupMockDB(t)
		// Drivers hand back []byte for text columns; both forms must work.
		mock.ExpectQuery("SELECT (.+) FROM `items_base`").WillReturnRows(
			sqlmock.NewRows([]string{"id", "item_name", "type"}).
				AddRow(1, "throne", "furniture").
				AddRow(2, []byte("club_sofa"), "furniture").
				AddRow(3, "poster_42", "wall"),
		)

		forest, err := NewDatabase(db).FetchPartialTree(context.Background())
		require.NoError(t, err)
		require.Len(t, forest.Roots, 2)

		furniture := forest.Roots[0]
		assert.Equal(t, "furniture", furniture.Title)
		assert.Equal(t, "db:furniture", furniture.ID)
		assert.Equal(t, tree.StatusOK, furniture.Status)
		require.Len(t, furniture.Children, 2)
		assert.Equal(t, "db:furniture:1", furniture.Children[0].ID)
		assert.Equal(t, "throne", furniture.Children[0].Title)
		assert.Equal(t, "club_sofa", furniture.Children[1].Title)

		wall := forest.Roots[1]
		assert.Equal(t, "wall", wall.Title)
		require.Len(t, wall.Children, 1)
	})

	t.Run("NamelessItemsGetWarning", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM `items_base`").WillReturnRows(
			sqlmock.NewRows([]string{"id", "item_name", "type"}).
				AddRow(7, "", "furniture"),
		)

		forest, err := NewDatabase(db).FetchPartialTree(context.Background())
		require.NoError(t, err)
		require.Len(t, forest.Roots, 1)

		assert.Equal(t, tree.StatusWarning, forest.Roots[0].Status)
		require.Len(t, forest.Roots[0].Children, 1)
		assert.Equal(t, tree.StatusWarning, forest.Roots[0].Children[0].Status)
		assert.Equal(t, "item 7", forest.Roots[0].Children[0].Title)
	})

	t.Run("UntypedItemsGrouped", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM `items_base`").WillReturnRows(
			sqlmock.NewRows([]string{"id", "item_name", "type"}).
				AddRow(9, "mystery", ""),
		)

		forest, err := NewDatabase(db).FetchPartialTree(context.Background())
		require.NoError(t, err)
		require.Len(t, forest.Roots, 1)
		assert.Equal(t, "untyped", forest.Roots[0].Title)
	})

	t.Run("QueryErrorIsWrapped", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM `items_base`").
			WillReturnError(errors.New("table gone"))

		forest, err := NewDatabase(db).FetchPartialTree(context.Background())
		assert.Nil(t, forest)
		assert.ErrorContains(t, err, "failed to load catalog rows")
	})
}
