package manager

import (
	"sync"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/sessions/whep"
)

// Sessions is the process-wide registry, initialized by Setup.
var Sessions *SessionManager

const shardCount = 8

// SessionManager maps session id to live viewer session. The map is sharded
// so that one session's teardown cannot stall another session's creation.
type SessionManager struct {
	shards [shardCount]sessionShard
}

type sessionShard struct {
	lock     sync.RWMutex
	sessions map[string]*whep.Session
}
