package repository

import (
    "strconv"
    "sync"
    "time"
)

var (
    idMu   sync.Mutex
    lastID int64
)

// NewID returns a millisecond-timestamp identifier as a decimal string.
// When two creates land in the same millisecond the second id is bumped to
// the next unused millisecond, so ids stay unique within the process even
// under rapid sequential creation.
func NewID() string {
    idMu.Lock()
    defer idMu.Unlock()
    now := time.Now().UnixMilli()
    if now <= lastID {
        now = lastID + 1
    }
    lastID = now
    return strconv.FormatInt(now, 10)
}
