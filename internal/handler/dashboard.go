package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "helpdesk/internal/model"
    "helpdesk/internal/store"
)

// DashboardHandler computes the landing-page summary from the state store.
type DashboardHandler struct {
    Store *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler { return &DashboardHandler{Store: st} }

type dashboardStats struct {
    RepairTotal    int                `json:"repairTotal"`
    RepairByStatus map[string]int     `json:"repairByStatus"`
    WorkTotal      int                `json:"workTotal"`
    WorkByStatus   map[string]int     `json:"workByStatus"`
    RecentRepairs  []model.RepairTask `json:"recentRepairs"`
    RecentWork     []model.WorkTask   `json:"recentWork"`
}

const recentCount = 5

// Stats handles GET /v1/dashboard/stats.
func (h *DashboardHandler) Stats(c echo.Context) error {
    repairs := h.Store.RepairTasks()
    works := h.Store.WorkTasks()

    stats := dashboardStats{
        RepairTotal:    len(repairs),
        RepairByStatus: map[string]int{},
        WorkTotal:      len(works),
        WorkByStatus:   map[string]int{},
        RecentRepairs:  lastRepairs(repairs, recentCount),
        RecentWork:     lastWork(works, recentCount),
    }
    for _, t := range repairs {
        stats.RepairByStatus[t.Status]++
    }
    for _, t := range works {
        stats.WorkByStatus[t.Status]++
    }
    return c.JSON(http.StatusOK, stats)
}

// lastRepairs returns up to n most recently added repair tasks, newest first.
func lastRepairs(tasks []model.RepairTask, n int) []model.RepairTask {
    out := []model.RepairTask{}
    for i := len(tasks) - 1; i >= 0 && len(out) < n; i-- {
        out = append(out, tasks[i])
    }
    return out
}

func lastWork(tasks []model.WorkTask, n int) []model.WorkTask {
    out := []model.WorkTask{}
    for i := len(tasks) - 1; i >= 0 && len(out) < n; i-- {
        out = append(out, tasks[i])
    }
    return out
}
