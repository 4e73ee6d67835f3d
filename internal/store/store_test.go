package store

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "helpdesk/internal/model"
)

func seeded(ids ...string) *Store {
    s := New()
    for _, id := range ids {
        s.AppendRepairTask(model.RepairTask{ID: id, Equipment: "eq-" + id})
    }
    return s
}

func TestAppendPreservesOrder(t *testing.T) {
    s := seeded("1", "2", "3")
    tasks := s.RepairTasks()
    require.Len(t, tasks, 3)
    assert.Equal(t, "1", tasks[0].ID)
    assert.Equal(t, "3", tasks[2].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
    s := seeded("1")
    snap := s.RepairTasks()
    snap[0].Equipment = "mutated"
    assert.Equal(t, "eq-1", s.RepairTasks()[0].Equipment)
}

func TestPatchMatchingTask(t *testing.T) {
    s := seeded("1", "2")
    ok := s.PatchRepairTask("2", model.RepairTask{Equipment: "replaced", Status: model.RepairStatusCompleted})
    assert.True(t, ok)

    tasks := s.RepairTasks()
    assert.Equal(t, "2", tasks[1].ID, "patch keeps the id")
    assert.Equal(t, "replaced", tasks[1].Equipment)
    assert.Equal(t, "eq-1", tasks[0].Equipment, "other tasks untouched")
}

func TestPatchAbsentIDIsNoOp(t *testing.T) {
    s := seeded("1")
    ok := s.PatchRepairTask("missing", model.RepairTask{Equipment: "x"})
    assert.False(t, ok)
    assert.Equal(t, "eq-1", s.RepairTasks()[0].Equipment)
}

func TestRemoveExactlyOne(t *testing.T) {
    s := seeded("1", "2", "3")
    assert.True(t, s.RemoveRepairTask("2"))

    tasks := s.RepairTasks()
    require.Len(t, tasks, 2)
    assert.Equal(t, "1", tasks[0].ID)
    assert.Equal(t, "3", tasks[1].ID)

    assert.False(t, s.RemoveRepairTask("2"), "already gone")
}

func TestReplaceOverwritesOptimisticState(t *testing.T) {
    s := seeded("1", "2")
    s.ReplaceRepairTasks([]model.RepairTask{{ID: "9"}})

    tasks := s.RepairTasks()
    require.Len(t, tasks, 1)
    assert.Equal(t, "9", tasks[0].ID)
}

func TestWorkTasksIndependentOfRepairs(t *testing.T) {
    s := New()
    s.AppendWorkTask(model.WorkTask{ID: "w1", Title: "patch servers"})
    s.AppendRepairTask(model.RepairTask{ID: "r1"})

    assert.Len(t, s.WorkTasks(), 1)
    assert.Len(t, s.RepairTasks(), 1)
    assert.True(t, s.RemoveWorkTask("w1"))
    assert.Empty(t, s.WorkTasks())
    assert.Len(t, s.RepairTasks(), 1)
}

func TestBusyFlag(t *testing.T) {
    s := New()
    assert.False(t, s.Busy())
    s.SetBusy(true)
    assert.True(t, s.Busy())
    s.SetBusy(false)
    assert.False(t, s.Busy())
}
