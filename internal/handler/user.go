package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "helpdesk/internal/model"
    "helpdesk/internal/repository"
)

// UserHandler serves the admin-only user management screen.  User records
// are not mirrored into the state store; the screen is rare enough that
// every list goes to the backend.
type UserHandler struct {
    Repo *repository.UserRepo
}

func NewUserHandler(repo *repository.UserRepo) *UserHandler { return &UserHandler{Repo: repo} }

type createUserReq struct {
    Username   string `json:"username" validate:"required,min=3"`
    Password   string `json:"password" validate:"required,min=6"`
    FullName   string `json:"fullName" validate:"required,min=2"`
    Email      string `json:"email" validate:"required,email"`
    Role       string `json:"role" validate:"required,oneof=admin technician user"`
    Department string `json:"department" validate:"required,min=2"`
    Status     string `json:"status" validate:"required,oneof=active inactive"`
}

type updateUserReq struct {
    FullName   string `json:"fullName" validate:"required,min=2"`
    Email      string `json:"email" validate:"required,email"`
    Role       string `json:"role" validate:"required,oneof=admin technician user"`
    Department string `json:"department" validate:"required,min=2"`
    Status     string `json:"status" validate:"required,oneof=active inactive"`
}

type resetPasswordReq struct {
    Password string `json:"password" validate:"required,min=6"`
}

// List handles GET /v1/users.
func (h *UserHandler) List(c echo.Context) error {
    users, err := h.Repo.List(c.Request().Context())
    if err != nil {
        return writeSheetsError(c, err)
    }
    return c.JSON(http.StatusOK, users)
}

// Create handles POST /v1/users.  The password travels to the repository
// and no further; the response carries the created user without it.
func (h *UserHandler) Create(c echo.Context) error {
    var req createUserReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Username = strings.TrimSpace(req.Username)
    if err := c.Validate(&req); err != nil {
        return err
    }
    u := model.User{
        Username:   req.Username,
        FullName:   req.FullName,
        Email:      req.Email,
        Role:       req.Role,
        Department: req.Department,
        Status:     req.Status,
    }
    created, err := h.Repo.Create(c.Request().Context(), u, req.Password)
    if err != nil {
        return writeSheetsError(c, err)
    }
    publishChange(c, "Users", "create", created.ID, "account "+created.Username)
    return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/users/:id.  Username is immutable and absent from
// the request shape.
func (h *UserHandler) Update(c echo.Context) error {
    id := c.Param("id")
    var req updateUserReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    updated, err := h.Repo.UpdateByID(c.Request().Context(), id, repository.UserPatch{
        FullName:   req.FullName,
        Email:      req.Email,
        Role:       req.Role,
        Department: req.Department,
        Status:     req.Status,
    })
    if err != nil {
        return writeSheetsError(c, err)
    }
    publishChange(c, "Users", "update", id, "account profile updated")
    return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
    id := c.Param("id")
    if err := h.Repo.DeleteByID(c.Request().Context(), id); err != nil {
        return writeSheetsError(c, err)
    }
    publishChange(c, "Users", "delete", id, "account removed")
    return c.NoContent(http.StatusNoContent)
}

// ResetPassword handles POST /v1/users/:id/reset-password.
func (h *UserHandler) ResetPassword(c echo.Context) error {
    id := c.Param("id")
    var req resetPasswordReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    if err := h.Repo.ResetPassword(c.Request().Context(), id, req.Password); err != nil {
        return writeSheetsError(c, err)
    }
    publishChange(c, "Users", "update", id, "password reset")
    return c.NoContent(http.StatusNoContent)
}
