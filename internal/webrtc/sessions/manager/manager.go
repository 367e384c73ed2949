// Package manager implements the concurrent registry of viewer sessions.
package manager

import (
	"hash/fnv"
	"log"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/sessions/whep"
)

// Setup prepares the process-wide session registry.
func Setup() {
	log.Println("SessionManager.Setup")
	Sessions = New()
}

// New creates an empty registry.
func New() *SessionManager {
	manager := &SessionManager{}
	for i := range manager.shards {
		manager.shards[i].sessions = make(map[string]*whep.Session)
	}

	return manager
}

func (manager *SessionManager) shardFor(sessionID string) *sessionShard {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(sessionID))

	return &manager.shards[hash.Sum32()%shardCount]
}

// Add registers a session under its id. Ids are generated fresh per session;
// if one were ever reused the latest insert wins.
func (manager *SessionManager) Add(session *whep.Session) {
	shard := manager.shardFor(session.ID)

	shard.lock.Lock()
	shard.sessions[session.ID] = session
	shard.lock.Unlock()
}

// Remove deletes and returns the session with the given id. Exactly one of
// any number of concurrent Remove calls for the same id succeeds; the rest
// report false.
func (manager *SessionManager) Remove(sessionID string) (*whep.Session, bool) {
	shard := manager.shardFor(sessionID)

	shard.lock.Lock()
	defer shard.lock.Unlock()

	session, ok := shard.sessions[sessionID]
	if !ok {
		return nil, false
	}

	delete(shard.sessions, sessionID)
	return session, true
}

// Get returns the session with the given id.
func (manager *SessionManager) Get(sessionID string) (*whep.Session, bool) {
	shard := manager.shardFor(sessionID)

	shard.lock.RLock()
	defer shard.lock.RUnlock()

	session, ok := shard.sessions[sessionID]
	return session, ok
}

// Count returns the number of registered sessions.
func (manager *SessionManager) Count() (count int) {
	for i := range manager.shards {
		shard := &manager.shards[i]

		shard.lock.RLock()
		count += len(shard.sessions)
		shard.lock.RUnlock()
	}

	return count
}

// GetSessionStates returns the current state of every registered session.
func (manager *SessionManager) GetSessionStates() (result []whep.SessionStateDTO) {
	for i := range manager.shards {
		shard := &manager.shards[i]

		shard.lock.RLock()
		for _, session := range shard.sessions {
			result = append(result, session.GetSessionStatus())
		}
		shard.lock.RUnlock()
	}

	return result
}
