package authenticating

import (
	"sync"
	"time"
)

// RevocationList guarda os jti de sessões encerradas até a expiração natural
// do token. Depois disso o próprio JWT já é rejeitado e a entrada pode sair.
type RevocationList struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{entries: make(map[string]time.Time)}
}

func (l *RevocationList) Revoke(id string, until time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[id] = until
}

func (l *RevocationList) IsRevoked(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.entries[id]
	return ok
}

// Purge remove as entradas já expiradas em now e retorna quantas saíram
func (l *RevocationList) Purge(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, until := range l.entries {
		if !until.After(now) {
			delete(l.entries, id)
			removed++
		}
	}
	return removed
}

func (l *RevocationList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}
