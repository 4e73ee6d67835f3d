// Package service orchestrates work that spans repositories and the state
// store: the startup data load, the manual refresh, and event publishing.
package service

import (
    "context"
    "log"

    "golang.org/x/sync/errgroup"

    "helpdesk/internal/model"
    "helpdesk/internal/store"
)

// RepairLister and WorkLister are the slices of the repositories the loader
// needs; the indirection lets tests feed in fakes with controlled latency.
type RepairLister interface {
    List(ctx context.Context) ([]model.RepairTask, error)
}

type WorkLister interface {
    List(ctx context.Context) ([]model.WorkTask, error)
}

// Loader populates the state store from the spreadsheet backend.  Both task
// collections are fetched concurrently; a failure in one branch is logged
// and does not keep the other branch's result from being applied.  The busy
// flag is raised before the first request goes out and cleared after both
// branches have settled, success or not.
type Loader struct {
    Repairs RepairLister
    Works   WorkLister
    Store   *store.Store
}

func NewLoader(repairs RepairLister, works WorkLister, st *store.Store) *Loader {
    return &Loader{Repairs: repairs, Works: works, Store: st}
}

// Load runs the parallel dual-collection fetch and replaces each collection
// for which the fetch succeeded.
func (l *Loader) Load(ctx context.Context) {
    l.Store.SetBusy(true)
    defer l.Store.SetBusy(false)

    // A plain Group, not WithContext: one branch failing must not cancel
    // the other.
    var g errgroup.Group
    g.Go(func() error {
        tasks, err := l.Repairs.List(ctx)
        if err != nil {
            log.Printf("sync: repair task fetch failed: %v", err)
            return nil
        }
        l.Store.ReplaceRepairTasks(tasks)
        log.Printf("sync: loaded %d repair tasks", len(tasks))
        return nil
    })
    g.Go(func() error {
        tasks, err := l.Works.List(ctx)
        if err != nil {
            log.Printf("sync: work task fetch failed: %v", err)
            return nil
        }
        l.Store.ReplaceWorkTasks(tasks)
        log.Printf("sync: loaded %d work tasks", len(tasks))
        return nil
    })
    _ = g.Wait()
}

// Refresh repeats the load sequence on demand.  It replaces collections
// wholesale: an optimistic local mutation whose backend write raced the
// refresh's fetch is silently reverted until the next refresh.
func (l *Loader) Refresh(ctx context.Context) {
    l.Load(ctx)
}
