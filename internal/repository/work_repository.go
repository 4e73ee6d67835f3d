package repository

import (
    "context"
    "encoding/json"
    "time"

    "helpdesk/internal/model"
    "helpdesk/internal/sheets"
)

const workSheet = "WorkTasks"

type WorkTaskRepo struct{ Sheets *sheets.Client }

func NewWorkTaskRepo(s *sheets.Client) *WorkTaskRepo { return &WorkTaskRepo{Sheets: s} }

// List fetches every work task on the sheet.
func (r *WorkTaskRepo) List(ctx context.Context) ([]model.WorkTask, error) {
    raw, err := r.Sheets.FetchAll(ctx, workSheet)
    if err != nil {
        return nil, err
    }
    tasks := []model.WorkTask{}
    if len(raw) == 0 {
        return tasks, nil
    }
    if err := json.Unmarshal(raw, &tasks); err != nil {
        return nil, &sheets.BackendError{Action: "getData", Message: "invalid work task data: " + err.Error()}
    }
    return tasks, nil
}

// Create assigns an id and creation date, inserts the row and returns the
// constructed task without re-fetching it.
func (r *WorkTaskRepo) Create(ctx context.Context, t model.WorkTask) (model.WorkTask, error) {
    t.ID = NewID()
    if t.Date == "" {
        t.Date = time.Now().UTC().Format("2006-01-02")
    }
    if err := r.Sheets.Insert(ctx, workSheet, t); err != nil {
        return model.WorkTask{}, err
    }
    return t, nil
}

// UpdateByID resolves the id to a row position and overwrites the row.
func (r *WorkTaskRepo) UpdateByID(ctx context.Context, id string, t model.WorkTask) (model.WorkTask, error) {
    row, err := r.Sheets.FindRowIndexByID(ctx, workSheet, id)
    if err != nil {
        return model.WorkTask{}, err
    }
    t.ID = id
    if err := r.Sheets.UpdateAt(ctx, workSheet, row, t); err != nil {
        return model.WorkTask{}, err
    }
    return t, nil
}

// DeleteByID resolves the id to a row position and removes the row.
func (r *WorkTaskRepo) DeleteByID(ctx context.Context, id string) error {
    row, err := r.Sheets.FindRowIndexByID(ctx, workSheet, id)
    if err != nil {
        return err
    }
    return r.Sheets.DeleteAt(ctx, workSheet, row)
}
