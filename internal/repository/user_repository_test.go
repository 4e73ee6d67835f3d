package repository

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"

    "helpdesk/internal/model"
)

func TestUserCreateHashesPassword(t *testing.T) {
    fake := newFakeSheets(t)
    repo := NewUserRepo(fake.client(), bcrypt.MinCost)

    created, err := repo.Create(context.Background(), model.User{
        Username: "somying",
        FullName: "Somying K.",
        Email:    "somying@example.com",
    }, "secret123")
    require.NoError(t, err)
    assert.Equal(t, model.RoleUser, created.Role, "role defaults to user")
    assert.Equal(t, model.UserStatusActive, created.Status)
    assert.NotEmpty(t, created.CreatedAt)

    rows := fake.rows(userSheet)
    require.Len(t, rows, 1)
    stored, _ := rows[0]["password"].(string)
    require.NotEmpty(t, stored)
    assert.NotEqual(t, "secret123", stored, "plaintext never reaches the sheet")
    assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("secret123")))
}

func TestUserListNormalizesBlankRoleAndStatus(t *testing.T) {
    fake := newFakeSheets(t)
    fake.seed(userSheet,
        map[string]interface{}{"id": "1", "username": "old-row"},
        map[string]interface{}{"id": "2", "username": "tech", "role": "technician", "status": "inactive"},
    )
    repo := NewUserRepo(fake.client(), bcrypt.MinCost)

    users, err := repo.List(context.Background())
    require.NoError(t, err)
    require.Len(t, users, 2)
    assert.Equal(t, model.RoleUser, users[0].Role)
    assert.Equal(t, model.UserStatusActive, users[0].Status)
    assert.Equal(t, model.RoleTechnician, users[1].Role)
    assert.Equal(t, model.UserStatusInactive, users[1].Status)
}

func TestUserUpdateLeavesUnsetColumnsAlone(t *testing.T) {
    fake := newFakeSheets(t)
    fake.seed(userSheet, map[string]interface{}{
        "id": "7", "username": "arthit", "fullName": "Arthit P.", "role": "user", "department": "IT",
    })
    repo := NewUserRepo(fake.client(), bcrypt.MinCost)

    updated, err := repo.UpdateByID(context.Background(), "7", UserPatch{Role: "technician"})
    require.NoError(t, err)
    assert.Equal(t, "7", updated.ID)
    assert.Equal(t, "technician", updated.Role)

    rows := fake.rows(userSheet)
    require.Len(t, rows, 1)
    assert.Equal(t, "technician", rows[0]["role"])
    assert.Equal(t, "Arthit P.", rows[0]["fullName"], "omitted patch fields do not clear columns")
    assert.Equal(t, "arthit", rows[0]["username"], "username is never patched")
}
