package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex
)

// Enqueuer is the subset of *asynq.Client used for publishing.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// GetClient returns the global Client set with SetClient. It's safe for
// concurrent use.
func GetClient() *asynq.Client {
	globalMu.RLock()
	defer globalMu.RUnlock()

	return globalClient
}

// SetClient replaces the global Client, and returns a
// function to restore the original value. It's safe for concurrent use.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}
