package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "helpdesk/internal/service"
    "helpdesk/internal/store"
)

// SyncHandler exposes the manual refresh.  The refresh replaces both
// collections wholesale from the backend, so local mutations whose backend
// write had not landed when the fetch ran are reverted.
type SyncHandler struct {
    Loader *service.Loader
    Store  *store.Store
}

func NewSyncHandler(loader *service.Loader, st *store.Store) *SyncHandler {
    return &SyncHandler{Loader: loader, Store: st}
}

// Refresh handles POST /v1/refresh.  It blocks until both fetches settle
// and reports the resulting collection sizes.
func (h *SyncHandler) Refresh(c echo.Context) error {
    h.Loader.Refresh(c.Request().Context())
    return c.JSON(http.StatusOK, echo.Map{
        "repairTasks": len(h.Store.RepairTasks()),
        "workTasks":   len(h.Store.WorkTasks()),
    })
}
