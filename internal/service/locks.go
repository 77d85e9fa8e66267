package service

import "sync"

// Sessions are single-writer: every mutation runs under the session's
// mutex so the load-mutate-persist cycle is atomic per session. Locks are
// never evicted; a finished session leaves one idle mutex behind, which
// is cheap next to its database row.
var sessionLocks sync.Map // session key -> *sync.Mutex

func lockSession(key string) func() {
	v, _ := sessionLocks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
