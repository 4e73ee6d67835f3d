package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "helpdesk/internal/model"
    "helpdesk/internal/repository"
    "helpdesk/internal/store"
)

// WorkHandler serves the general work-task screens, same read/mutate split
// as RepairHandler.
type WorkHandler struct {
    Repo  *repository.WorkTaskRepo
    Store *store.Store
}

func NewWorkHandler(repo *repository.WorkTaskRepo, st *store.Store) *WorkHandler {
    return &WorkHandler{Repo: repo, Store: st}
}

type workReq struct {
    Date        string `json:"date"`
    Title       string `json:"title" validate:"required,min=3"`
    Description string `json:"description" validate:"required,min=10"`
    AssignedTo  string `json:"assignedTo" validate:"required,min=2"`
    Status      string `json:"status" validate:"required,oneof=todo in-progress done"`
    Priority    string `json:"priority" validate:"required,oneof=low medium high"`
    DueDate     string `json:"dueDate"`
    Notes       string `json:"notes"`
}

func (r workReq) toModel() model.WorkTask {
    return model.WorkTask{
        Date:        r.Date,
        Title:       r.Title,
        Description: r.Description,
        AssignedTo:  r.AssignedTo,
        Status:      r.Status,
        Priority:    r.Priority,
        DueDate:     r.DueDate,
        Notes:       r.Notes,
    }
}

// List handles GET /v1/tasks.
func (h *WorkHandler) List(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Store.WorkTasks())
}

// Create handles POST /v1/tasks.
func (h *WorkHandler) Create(c echo.Context) error {
    var req workReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    created, err := h.Repo.Create(c.Request().Context(), req.toModel())
    if err != nil {
        return writeSheetsError(c, err)
    }
    h.Store.AppendWorkTask(created)
    publishChange(c, "WorkTasks", "create", created.ID, created.Title)
    return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/tasks/:id.
func (h *WorkHandler) Update(c echo.Context) error {
    id := c.Param("id")
    var req workReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    updated, err := h.Repo.UpdateByID(c.Request().Context(), id, req.toModel())
    if err != nil {
        return writeSheetsError(c, err)
    }
    h.Store.PatchWorkTask(id, updated)
    publishChange(c, "WorkTasks", "update", id, updated.Title+" -> "+updated.Status)
    return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/tasks/:id.
func (h *WorkHandler) Delete(c echo.Context) error {
    id := c.Param("id")
    if err := h.Repo.DeleteByID(c.Request().Context(), id); err != nil {
        return writeSheetsError(c, err)
    }
    h.Store.RemoveWorkTask(id)
    publishChange(c, "WorkTasks", "delete", id, "work task removed")
    return c.NoContent(http.StatusNoContent)
}
