package repository

import (
    "context"
    "encoding/json"
    "time"

    "helpdesk/internal/auth"
    "helpdesk/internal/model"
    "helpdesk/internal/sheets"
)

const userSheet = "Users"

type UserRepo struct {
    Sheets     *sheets.Client
    BcryptCost int
}

func NewUserRepo(s *sheets.Client, bcryptCost int) *UserRepo {
    return &UserRepo{Sheets: s, BcryptCost: bcryptCost}
}

// userRecord is the registration payload.  It carries the bcrypt hash in the
// password column; model.User itself never holds a password.
type userRecord struct {
    model.User
    Password string `json:"password"`
}

// List fetches every account row.  Rows written by older versions of the
// sheet may have empty role or status cells; those are normalized to
// "user"/"active" so downstream rank checks always see a known value.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
    raw, err := r.Sheets.FetchAll(ctx, userSheet)
    if err != nil {
        return nil, err
    }
    users := []model.User{}
    if len(raw) == 0 {
        return users, nil
    }
    if err := json.Unmarshal(raw, &users); err != nil {
        return nil, &sheets.BackendError{Action: "getData", Message: "invalid user data: " + err.Error()}
    }
    for i := range users {
        if users[i].Role == "" {
            users[i].Role = model.RoleUser
        }
        if users[i].Status == "" {
            users[i].Status = model.UserStatusActive
        }
    }
    return users, nil
}

// Create registers a new account.  The password is bcrypt-hashed before it
// leaves the process and the row is written through the backend's
// registration action rather than a plain insert.  The returned user is the
// optimistic client-side construction.
func (r *UserRepo) Create(ctx context.Context, u model.User, password string) (model.User, error) {
    hash, err := auth.HashPassword(password, r.BcryptCost)
    if err != nil {
        return model.User{}, err
    }
    u.ID = NewID()
    u.CreatedAt = time.Now().UTC().Format(time.RFC3339)
    if u.Role == "" {
        u.Role = model.RoleUser
    }
    if u.Status == "" {
        u.Status = model.UserStatusActive
    }
    if err := r.Sheets.Register(ctx, userRecord{User: u, Password: hash}); err != nil {
        return model.User{}, err
    }
    return u, nil
}

// UserPatch carries the mutable profile columns.  Username never appears
// here because it is immutable after creation, and the password column is
// only reachable through ResetPassword.  Empty fields are omitted from the
// payload so the backend leaves those columns alone.
type UserPatch struct {
    FullName   string `json:"fullName,omitempty"`
    Email      string `json:"email,omitempty"`
    Role       string `json:"role,omitempty"`
    Department string `json:"department,omitempty"`
    Status     string `json:"status,omitempty"`
}

// UpdateByID overwrites the submitted profile columns of one account row.
// The returned value is the patch merged with the id, not a re-fetched
// authoritative record.
func (r *UserRepo) UpdateByID(ctx context.Context, id string, p UserPatch) (model.User, error) {
    row, err := r.Sheets.FindRowIndexByID(ctx, userSheet, id)
    if err != nil {
        return model.User{}, err
    }
    if err := r.Sheets.UpdateAt(ctx, userSheet, row, p); err != nil {
        return model.User{}, err
    }
    return model.User{
        ID:         id,
        FullName:   p.FullName,
        Email:      p.Email,
        Role:       p.Role,
        Department: p.Department,
        Status:     p.Status,
    }, nil
}

// DeleteByID removes one account row.
func (r *UserRepo) DeleteByID(ctx context.Context, id string) error {
    row, err := r.Sheets.FindRowIndexByID(ctx, userSheet, id)
    if err != nil {
        return err
    }
    return r.Sheets.DeleteAt(ctx, userSheet, row)
}

// ResetPassword hashes the new password and rewrites the password column of
// the given account.
func (r *UserRepo) ResetPassword(ctx context.Context, id, password string) error {
    hash, err := auth.HashPassword(password, r.BcryptCost)
    if err != nil {
        return err
    }
    if _, err := r.Sheets.FindRowIndexByID(ctx, userSheet, id); err != nil {
        return err
    }
    return r.Sheets.ResetPassword(ctx, id, hash)
}
