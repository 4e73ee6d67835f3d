// Package store holds the in-memory working copies of the task collections
// for the running service.  Every screen reads from here; mutations are
// applied optimistically after the corresponding backend call succeeds.  The
// store is plain injected state, not a global, so tests can build isolated
// instances.
package store

import (
    "sync"

    "helpdesk/internal/model"
)

// Store keeps insertion-ordered slices per collection plus a busy flag that
// is raised while the initial load or a manual refresh is in flight.  All
// lookups are linear id scans; the collections are small enough that keyed
// maps would only complicate the ordering guarantee.
type Store struct {
    mu      sync.RWMutex
    repairs []model.RepairTask
    works   []model.WorkTask
    busy    bool
}

func New() *Store {
    return &Store{
        repairs: []model.RepairTask{},
        works:   []model.WorkTask{},
    }
}

// SetBusy raises or clears the busy flag.
func (s *Store) SetBusy(v bool) {
    s.mu.Lock()
    s.busy = v
    s.mu.Unlock()
}

// Busy reports whether a load or refresh is currently in flight.
func (s *Store) Busy() bool {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return s.busy
}

// RepairTasks returns a copy of the repair collection.
func (s *Store) RepairTasks() []model.RepairTask {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.RepairTask, len(s.repairs))
    copy(out, s.repairs)
    return out
}

// WorkTasks returns a copy of the work collection.
func (s *Store) WorkTasks() []model.WorkTask {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.WorkTask, len(s.works))
    copy(out, s.works)
    return out
}

// ReplaceRepairTasks swaps the whole repair collection.  Used by the initial
// load and manual refresh; any unconfirmed optimistic mutation made since the
// fetch started is overwritten.
func (s *Store) ReplaceRepairTasks(tasks []model.RepairTask) {
    s.mu.Lock()
    s.repairs = append([]model.RepairTask{}, tasks...)
    s.mu.Unlock()
}

// ReplaceWorkTasks swaps the whole work collection.
func (s *Store) ReplaceWorkTasks(tasks []model.WorkTask) {
    s.mu.Lock()
    s.works = append([]model.WorkTask{}, tasks...)
    s.mu.Unlock()
}

// AppendRepairTask appends one task, preserving insertion order.
func (s *Store) AppendRepairTask(t model.RepairTask) {
    s.mu.Lock()
    s.repairs = append(s.repairs, t)
    s.mu.Unlock()
}

// AppendWorkTask appends one task, preserving insertion order.
func (s *Store) AppendWorkTask(t model.WorkTask) {
    s.mu.Lock()
    s.works = append(s.works, t)
    s.mu.Unlock()
}

// PatchRepairTask merges the given record into the first task with a
// matching id.  No-op when the id is absent; returns whether a task was
// patched.
func (s *Store) PatchRepairTask(id string, t model.RepairTask) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    for i := range s.repairs {
        if s.repairs[i].ID == id {
            t.ID = id
            s.repairs[i] = t
            return true
        }
    }
    return false
}

// PatchWorkTask merges the given record into the first task with a matching
// id.  No-op when the id is absent.
func (s *Store) PatchWorkTask(id string, t model.WorkTask) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    for i := range s.works {
        if s.works[i].ID == id {
            t.ID = id
            s.works[i] = t
            return true
        }
    }
    return false
}

// RemoveRepairTask filters out the task with the given id; returns whether
// anything was removed.
func (s *Store) RemoveRepairTask(id string) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    for i := range s.repairs {
        if s.repairs[i].ID == id {
            s.repairs = append(s.repairs[:i], s.repairs[i+1:]...)
            return true
        }
    }
    return false
}

// RemoveWorkTask filters out the task with the given id.
func (s *Store) RemoveWorkTask(id string) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    for i := range s.works {
        if s.works[i].ID == id {
            s.works = append(s.works[:i], s.works[i+1:]...)
            return true
        }
    }
    return false
}
