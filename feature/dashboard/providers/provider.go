package providers

import (
	"context"
	"errors"

	"treeboard/core/tree"
)

// ErrQuotaExceeded marks an upstream rate-limit rejection. The coordinator
// treats it as "no update occurred" and keeps serving the previous tree.
var ErrQuotaExceeded = errors.New("upstream quota exceeded")

// IsQuotaExceeded reports whether err is (or wraps) a quota rejection.
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}

// Provider produces one partial inventory forest from a single upstream
// source. FetchPartialTree must return promptly after ctx is cancelled;
// in-flight upstream calls are not forcibly aborted, their results are
// simply discarded.
type Provider interface {
	// Name identifies the provider in logs and node sources.
	Name() string
	// FetchPartialTree fetches a fresh partial forest.
	FetchPartialTree(ctx context.Context) (*tree.Tree, error)
}
