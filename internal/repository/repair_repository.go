// Package repository exposes one repo per sheet-backed collection.  Each repo
// hides the id→row translation behind id-addressed operations and returns
// typed errors from the sheets package instead of empty results.
package repository

import (
    "context"
    "encoding/json"
    "time"

    "helpdesk/internal/model"
    "helpdesk/internal/sheets"
)

const repairSheet = "RepairTasks"

type RepairTaskRepo struct{ Sheets *sheets.Client }

func NewRepairTaskRepo(s *sheets.Client) *RepairTaskRepo { return &RepairTaskRepo{Sheets: s} }

// List fetches every repair task on the sheet.
func (r *RepairTaskRepo) List(ctx context.Context) ([]model.RepairTask, error) {
    raw, err := r.Sheets.FetchAll(ctx, repairSheet)
    if err != nil {
        return nil, err
    }
    tasks := []model.RepairTask{}
    if len(raw) == 0 {
        return tasks, nil
    }
    if err := json.Unmarshal(raw, &tasks); err != nil {
        return nil, &sheets.BackendError{Action: "getData", Message: "invalid repair task data: " + err.Error()}
    }
    return tasks, nil
}

// Create assigns an id and creation date, inserts the row and returns the
// constructed task.  The returned value is optimistic: it is not re-fetched
// from the backend after the insert.
func (r *RepairTaskRepo) Create(ctx context.Context, t model.RepairTask) (model.RepairTask, error) {
    t.ID = NewID()
    if t.Date == "" {
        t.Date = time.Now().UTC().Format("2006-01-02")
    }
    if err := r.Sheets.Insert(ctx, repairSheet, t); err != nil {
        return model.RepairTask{}, err
    }
    return t, nil
}

// UpdateByID resolves the id to a row position and overwrites the row.  The
// returned task is the submitted record with the id re-attached, not a
// re-fetched authoritative copy.
func (r *RepairTaskRepo) UpdateByID(ctx context.Context, id string, t model.RepairTask) (model.RepairTask, error) {
    row, err := r.Sheets.FindRowIndexByID(ctx, repairSheet, id)
    if err != nil {
        return model.RepairTask{}, err
    }
    t.ID = id
    if err := r.Sheets.UpdateAt(ctx, repairSheet, row, t); err != nil {
        return model.RepairTask{}, err
    }
    return t, nil
}

// DeleteByID resolves the id to a row position and removes the row.
func (r *RepairTaskRepo) DeleteByID(ctx context.Context, id string) error {
    row, err := r.Sheets.FindRowIndexByID(ctx, repairSheet, id)
    if err != nil {
        return err
    }
    return r.Sheets.DeleteAt(ctx, repairSheet, row)
}
