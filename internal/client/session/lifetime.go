package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/teamconsole/internal/common"
)

// Lifetime is one storage location for a session.
type Lifetime interface {
	Name() string
	// Load returns empty values when nothing is stored.
	Load(ctx context.Context) (token string, user []byte, err error)
	// Save stores token and user together.
	Save(ctx context.Context, token string, user []byte) error
	// Erase removes token and user; erasing an empty lifetime succeeds.
	Erase(ctx context.Context) error
}

// MemoryLifetime keeps the session in process memory.
type MemoryLifetime struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryLifetime() *MemoryLifetime {
	return &MemoryLifetime{values: make(map[string][]byte)}
}

func (m *MemoryLifetime) Name() string { return "ephemeral" }

func (m *MemoryLifetime) Load(ctx context.Context) (string, []byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user := m.values[common.UserKey]
	return string(m.values[common.TokenKey]), append([]byte(nil), user...), nil
}

func (m *MemoryLifetime) Save(ctx context.Context, token string, user []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[common.TokenKey] = []byte(token)
	m.values[common.UserKey] = append([]byte(nil), user...)
	return nil
}

func (m *MemoryLifetime) Erase(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, common.TokenKey)
	delete(m.values, common.UserKey)
	return nil
}
