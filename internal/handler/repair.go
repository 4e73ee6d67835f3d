package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "helpdesk/internal/model"
    "helpdesk/internal/repository"
    "helpdesk/internal/store"
)

// RepairHandler serves the repair-task screens.  Reads come from the state
// store; mutations go through the repository first and are mirrored into the
// store only after the backend call succeeded.
type RepairHandler struct {
    Repo  *repository.RepairTaskRepo
    Store *store.Store
}

func NewRepairHandler(repo *repository.RepairTaskRepo, st *store.Store) *RepairHandler {
    return &RepairHandler{Repo: repo, Store: st}
}

type repairReq struct {
    Date       string `json:"date"`
    ReportDate string `json:"reportDate"`
    Equipment  string `json:"equipment" validate:"required,min=2"`
    Issue      string `json:"issue" validate:"required,min=5"`
    Solution   string `json:"solution" validate:"omitempty,min=5"`
    Technician string `json:"technician" validate:"required,min=2"`
    Reporter   string `json:"reporter"`
    Status     string `json:"status" validate:"required,oneof=pending in-progress completed cancelled"`
    Priority   string `json:"priority" validate:"required,oneof=low medium high"`
    Notes      string `json:"notes"`
}

func (r repairReq) toModel() model.RepairTask {
    return model.RepairTask{
        Date:       r.Date,
        ReportDate: r.ReportDate,
        Equipment:  r.Equipment,
        Issue:      r.Issue,
        Solution:   r.Solution,
        Technician: r.Technician,
        Reporter:   r.Reporter,
        Status:     r.Status,
        Priority:   r.Priority,
        Notes:      r.Notes,
    }
}

// List handles GET /v1/repairs and returns the store's current snapshot.
func (h *RepairHandler) List(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Store.RepairTasks())
}

// Create handles POST /v1/repairs.
func (h *RepairHandler) Create(c echo.Context) error {
    var req repairReq
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
    h.Store.AppendRepairTask(created)
    publishChange(c, "RepairTasks", "create", created.ID, created.Equipment+": "+created.Issue)
    return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/repairs/:id.
func (h *RepairHandler) Update(c echo.Context) error {
    id := c.Param("id")
    var req repairReq
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
    h.Store.PatchRepairTask(id, updated)
    publishChange(c, "RepairTasks", "update", id, updated.Equipment+" -> "+updated.Status)
    return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/repairs/:id.
func (h *RepairHandler) Delete(c echo.Context) error {
    id := c.Param("id")
    if err := h.Repo.DeleteByID(c.Request().Context(), id); err != nil {
        return writeSheetsError(c, err)
    }
    h.Store.RemoveRepairTask(id)
    publishChange(c, "RepairTasks", "delete", id, "repair task removed")
    return c.NoContent(http.StatusNoContent)
}
