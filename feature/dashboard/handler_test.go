package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"treeboard/core/tree"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(svc *Service) *fiber.App {
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func failFetch(ctx context.Context) (*tree.Tree, error) {
	return nil, errors.New("upstream exploded")
}

func TestHandler_Tree(t *testing.T) {
	svc := newTestService(nil, staticProvider("one", "B", "A"))
	app := setupTestApp(svc)

	t.Run("EmptyBeforeFirstRefresh", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/tree", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Contains(t, body, "tree")
		assert.Empty(t, body["meta"])
	})

	t.Run("PopulatedAfterRefresh", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/tree/refresh", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var refresh map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&refresh))
		assert.Equal(t, "refreshed", refresh["status"])
		assert.EqualValues(t, 2, refresh["roots"])

		resp, err = app.Test(httptest.NewRequest("GET", "/tree", nil))
		require.NoError(t, err)

		var body struct {
			Tree struct {
				Roots []struct {
					Title string `json:"title"`
				} `json:"roots"`
			} `json:"tree"`
			Meta map[string]interface{} `json:"meta"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Tree.Roots, 2)
		assert.Equal(t, "A", body.Tree.Roots[0].Title)
		assert.Equal(t, "B", body.Tree.Roots[1].Title)
		assert.Contains(t, body.Meta, "last_load_time")
	})
}

func TestHandler_Meta(t *testing.T) {
	svc := newTestService(nil, staticProvider("one", "A"))
	app := setupTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/tree/meta", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var before map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&before))
	assert.NotContains(t, before, "last_load_time")

	_, err = app.Test(httptest.NewRequest("POST", "/tree/refresh?force=true", nil))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("GET", "/tree/meta", nil))
	require.NoError(t, err)

	var after map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&after))
	assert.Contains(t, after, "last_load_time")
	assert.Contains(t, after, "last_load_duration_ms")
}

func TestHandler_RefreshNeverFails(t *testing.T) {
	// A provider failure still answers 200 with the previous (empty) tree.
	svc := newTestService(nil, &stubProvider{name: "broken", fetch: failFetch})
	app := setupTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("POST", "/tree/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 0, body["roots"])
}
