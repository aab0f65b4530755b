package providers

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"treeboard/core/storage"
	"treeboard/core/tree"

	"github.com/minio/minio-go/v7"
)

// Catalog lists the asset bucket and produces one root per top-level
// prefix with the contained objects as children. Zero-byte objects are
// flagged with a warning status.
type Catalog struct {
	client storage.Client
	bucket string
}

// NewCatalog creates a storage-backed provider.
func NewCatalog(client storage.Client, bucket string) *Catalog {
	return &Catalog{client: client, bucket: bucket}
}

// Name identifies the provider.
func (p *Catalog) Name() string {
	return "storage"
}

// FetchPartialTree performs one recursive listing of the bucket.
func (p *Catalog) FetchPartialTree(ctx context.Context) (*tree.Tree, error) {
	objects := p.client.ListObjects(ctx, p.bucket, minio.ListObjectsOptions{Recursive: true})

	groups := make(map[string][]*tree.Node)
	var order []string

	for obj := range objects {
		if obj.Err != nil {
			return nil, p.wrapListError(obj.Err)
		}
		// Cancellation check between objects; the listing in flight is
		// not aborted, its remaining results are discarded.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prefix := topLevelPrefix(obj.Key)
		if _, seen := groups[prefix]; !seen {
			order = append(order, prefix)
		}

		status := tree.StatusOK
		if obj.Size == 0 {
			status = tree.StatusWarning
		}
		groups[prefix] = append(groups[prefix], &tree.Node{
			ID:     "storage:" + obj.Key,
			Title:  path.Base(obj.Key),
			Status: status,
			Source: p.Name(),
		})
	}

	forest := &tree.Tree{}
	for _, prefix := range order {
		forest.Roots = append(forest.Roots, &tree.Node{
			ID:       "storage:" + prefix,
			Title:    prefix,
			Status:   groupStatus(groups[prefix]),
			Source:   p.Name(),
			Children: groups[prefix],
		})
	}
	return forest, nil
}

// wrapListError maps S3 throttling responses onto ErrQuotaExceeded so the
// coordinator can fall back instead of reporting a failure.
func (p *Catalog) wrapListError(err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "SlowDown" ||
		resp.StatusCode == http.StatusTooManyRequests ||
		resp.StatusCode == http.StatusServiceUnavailable {
		return fmt.Errorf("failed to list bucket %s: %w", p.bucket, ErrQuotaExceeded)
	}
	return fmt.Errorf("failed to list bucket %s: %w", p.bucket, err)
}

func topLevelPrefix(key string) string {
	if i := strings.IndexByte(key, '/'); i > 0 {
		return key[:i]
	}
	return "(root)"
}
