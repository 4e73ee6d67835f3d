package service

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "helpdesk/internal/model"
    "helpdesk/internal/store"
)

type stubRepairs struct {
    tasks []model.RepairTask
    err   error
    delay time.Duration
    gate  chan struct{}
}

func (s *stubRepairs) List(ctx context.Context) ([]model.RepairTask, error) {
    if s.gate != nil {
        <-s.gate
    }
    time.Sleep(s.delay)
    return s.tasks, s.err
}

type stubWorks struct {
    tasks []model.WorkTask
    err   error
}

func (s *stubWorks) List(ctx context.Context) ([]model.WorkTask, error) {
    return s.tasks, s.err
}

func TestLoadPopulatesBothCollections(t *testing.T) {
    st := store.New()
    l := NewLoader(
        &stubRepairs{tasks: []model.RepairTask{{ID: "r1"}, {ID: "r2"}}},
        &stubWorks{tasks: []model.WorkTask{{ID: "w1"}}},
        st,
    )

    l.Load(context.Background())

    assert.Len(t, st.RepairTasks(), 2)
    assert.Len(t, st.WorkTasks(), 1)
    assert.False(t, st.Busy(), "busy cleared after both branches settle")
}

func TestLoadOneBranchFailingDoesNotBlockTheOther(t *testing.T) {
    st := store.New()
    l := NewLoader(
        &stubRepairs{err: errors.New("backend down")},
        &stubWorks{tasks: []model.WorkTask{{ID: "w1"}}},
        st,
    )

    l.Load(context.Background())

    assert.Empty(t, st.RepairTasks(), "failed branch leaves its collection alone")
    assert.Len(t, st.WorkTasks(), 1, "healthy branch still applied")
    assert.False(t, st.Busy())
}

func TestBusyHeldWhileAnyFetchPending(t *testing.T) {
    st := store.New()
    gate := make(chan struct{})
    l := NewLoader(
        &stubRepairs{tasks: []model.RepairTask{{ID: "r1"}}, gate: gate},
        &stubWorks{tasks: []model.WorkTask{{ID: "w1"}}},
        st,
    )

    done := make(chan struct{})
    go func() {
        l.Load(context.Background())
        close(done)
    }()

    // The work branch finishes immediately; busy must hold until the gated
    // repair branch is released too.
    require.Eventually(t, st.Busy, time.Second, time.Millisecond)
    assert.True(t, st.Busy())

    close(gate)
    <-done
    assert.False(t, st.Busy())
    assert.Len(t, st.RepairTasks(), 1)
}

func TestRefreshReplacesOptimisticState(t *testing.T) {
    st := store.New()
    st.AppendRepairTask(model.RepairTask{ID: "local-only"})
    l := NewLoader(
        &stubRepairs{tasks: []model.RepairTask{{ID: "r1"}}},
        &stubWorks{},
        st,
    )

    l.Refresh(context.Background())

    tasks := st.RepairTasks()
    require.Len(t, tasks, 1)
    assert.Equal(t, "r1", tasks[0].ID)
}
