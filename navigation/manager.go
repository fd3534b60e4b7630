package navigation

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Manager hands out one Machine per UI session. Sessions never share state;
// two browser tabs with different session ids get independent cameras.
type Manager struct {
	// sessionID -> machine for that session
	sessions  map[string]*Machine
	mutex     sync.Mutex
	observers []Observer
}

// NewManager creates a session manager. Observers are attached to every
// machine it creates.
func NewManager(observers ...Observer) *Manager {
	return &Manager{
		sessions:  make(map[string]*Machine),
		observers: observers,
	}
}

// Session returns the machine for a session id, creating it at the solar
// stage on first use.
func (mgr *Manager) Session(sessionID string) *Machine {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	if m, ok := mgr.sessions[sessionID]; ok {
		return m
	}

	log.WithField("session", sessionID).Debug("starting navigation session")
	m := NewMachine(sessionID, mgr.observers...)
	mgr.sessions[sessionID] = m
	return m
}

// Drop forgets a session's machine, e.g. when its websocket goes away.
func (mgr *Manager) Drop(sessionID string) {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()
	delete(mgr.sessions, sessionID)
}

// Count returns the number of live sessions.
func (mgr *Manager) Count() int {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()
	return len(mgr.sessions)
}
