package dashboard

import (
	"sync"

	"go.uber.org/zap"
)

// notifier is the registry of tree-change subscribers. Handlers take no
// payload; they re-read the current tree themselves. Invocation order is
// unspecified and a panicking handler never prevents the others from
// running.
type notifier struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func()
	logger   *zap.Logger
}

func newNotifier(logger *zap.Logger) *notifier {
	return &notifier{
		handlers: make(map[int]func()),
		logger:   logger,
	}
}

// subscribe registers a handler and returns its subscription id.
func (n *notifier) subscribe(fn func()) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	n.handlers[n.nextID] = fn
	return n.nextID
}

// unsubscribe removes the handler with the given id, if registered.
func (n *notifier) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.handlers, id)
}

// publish invokes every registered handler once.
func (n *notifier) publish() {
	n.mu.Lock()
	handlers := make([]func(), 0, len(n.handlers))
	for _, fn := range n.handlers {
		handlers = append(handlers, fn)
	}
	n.mu.Unlock()

	for _, fn := range handlers {
		n.invoke(fn)
	}
}

func (n *notifier) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("tree change handler panicked", zap.Any("panic", r))
		}
	}()
	fn()
}
