package treecache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"treeboard/core/storage"
	"treeboard/core/tree"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Store reads and writes a single serialized tree snapshot in object storage.
type Store struct {
	client storage.Client
	cfg    Config
	logger *zap.Logger
}

// NewStore creates a new tree cache store.
func NewStore(client storage.Client, cfg Config, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Read returns the cached tree, or nil if nothing usable is cached.
// Absence, read failures, and corrupt payloads are all reported as a miss.
func (s *Store) Read(ctx context.Context) *tree.Tree {
	obj, err := s.client.GetObject(ctx, s.cfg.Bucket, s.cfg.Object, minio.GetObjectOptions{})
	if err != nil {
		s.logger.Debug("tree cache read failed", zap.Error(err))
		return nil
	}
	defer obj.Close()

	// Minio opens objects lazily, so a missing object surfaces here.
	data, err := io.ReadAll(obj)
	if err != nil {
		s.logger.Debug("tree cache read failed", zap.Error(err))
		return nil
	}

	var t tree.Tree
	if err := json.Unmarshal(data, &t); err != nil {
		s.logger.Warn("tree cache payload is corrupt, treating as miss", zap.Error(err))
		return nil
	}

	s.logger.Debug("tree cache hit", zap.Int("nodes", t.NodeCount()))
	return &t
}

// Write stores the tree snapshot, replacing any previous one.
func (s *Store) Write(ctx context.Context, t *tree.Tree) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to serialize tree: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.cfg.Bucket, s.cfg.Object,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to store tree cache object: %w", err)
	}

	s.logger.Debug("tree cache written", zap.Int("bytes", len(data)))
	return nil
}
