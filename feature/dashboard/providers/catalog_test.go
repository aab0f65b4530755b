package providers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"treeboard/core/storage/mocks"
	"treeboard/core/tree"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objectChannel(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return ch
}

func TestCatalog_FetchPartialTree(t *testing.T) {
	t.Run("GroupsObjectsByPrefix", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(objectChannel(
			minio.ObjectInfo{Key: "bundled/furniture/throne.nitro", Size: 10},
			minio.ObjectInfo{Key: "bundled/furniture/sofa.nitro", Size: 20},
			minio.ObjectInfo{Key: "gamedata/FurnitureData.json", Size: 30},
			minio.ObjectInfo{Key: "README.txt", Size: 5},
		))

		forest, err := NewCatalog(client, "assets").FetchPartialTree(context.Background())
		require.NoError(t, err)
		require.Len(t, forest.Roots, 3)

		assert.Equal(t, "bundled", forest.Roots[0].Title)
		require.Len(t, forest.Roots[0].Children, 2)
		assert.Equal(t, "throne.nitro", forest.Roots[0].Children[0].Title)
		assert.Equal(t, "storage:bundled/furniture/throne.nitro", forest.Roots[0].Children[0].ID)

		assert.Equal(t, "gamedata", forest.Roots[1].Title)
		assert.Equal(t, "(root)", forest.Roots[2].Title)
	})

	t.Run("EmptyObjectsGetWarning", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(objectChannel(
			minio.ObjectInfo{Key: "bundled/empty.nitro", Size: 0},
			minio.ObjectInfo{Key: "bundled/fine.nitro", Size: 1},
		))

		forest, err := NewCatalog(client, "assets").FetchPartialTree(context.Background())
		require.NoError(t, err)
		require.Len(t, forest.Roots, 1)
		assert.Equal(t, tree.StatusWarning, forest.Roots[0].Status)
		assert.Equal(t, tree.StatusWarning, forest.Roots[0].Children[0].Status)
		assert.Equal(t, tree.StatusOK, forest.Roots[0].Children[1].Status)
	})

	t.Run("SlowDownMapsToQuotaExceeded", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(objectChannel(
			minio.ObjectInfo{Err: minio.ErrorResponse{Code: "SlowDown", StatusCode: http.StatusServiceUnavailable}},
		))

		forest, err := NewCatalog(client, "assets").FetchPartialTree(context.Background())
		assert.Nil(t, forest)
		assert.True(t, IsQuotaExceeded(err))
	})

	t.Run("GenericListErrorIsWrapped", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(objectChannel(
			minio.ObjectInfo{Err: errors.New("network unreachable")},
		))

		forest, err := NewCatalog(client, "assets").FetchPartialTree(context.Background())
		assert.Nil(t, forest)
		assert.False(t, IsQuotaExceeded(err))
		assert.ErrorContains(t, err, "failed to list bucket assets")
	})

	t.Run("HonorsCancellationBetweenObjects", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(objectChannel(
			minio.ObjectInfo{Key: "bundled/a.nitro", Size: 1},
			minio.ObjectInfo{Key: "bundled/b.nitro", Size: 1},
		))

		forest, err := NewCatalog(client, "assets").FetchPartialTree(ctx)
		assert.Nil(t, forest)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
