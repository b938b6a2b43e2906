package lambda

import (
	"context"
	"sync"

	"todo-serverless-api/internal/config"
	"todo-serverless-api/pkg/server"
)

// ConnectionManager owns the per-process dependency container for Lambda
// functions. The container (and with it the connection pool) is built on
// the first invocation that needs it and reused for as long as the process
// lives; there is no explicit teardown during normal operation.
type ConnectionManager struct {
	mu        sync.Mutex
	container *server.Container
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the process-wide connection manager.
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// GetContainer returns the shared container, building it on first use. A
// failed build is not latched: the next invocation retries, so a transient
// configuration problem does not poison the process.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return cm.container, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	container, err := server.NewContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cm.container = container
	return cm.container, nil
}

// Reset tears down the container so the next invocation rebuilds it. Never
// called during normal operation; the pool lives as long as the process.
func (cm *ConnectionManager) Reset() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		_ = cm.container.Close()
		cm.container = nil
	}
}
