package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "helpdesk/internal/middleware"
    "helpdesk/internal/queue"
    "helpdesk/internal/service"
    "helpdesk/internal/sheets"
)

// writeSheetsError maps sheets-layer failures onto HTTP responses: a missed
// id scan is 404, everything else is a bad gateway carrying the backend's
// message so the operator can tell an outage from a missing record.
func writeSheetsError(c echo.Context, err error) error {
    if errors.Is(err, sheets.ErrNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "record not found"})
    }
    var be *sheets.BackendError
    if errors.As(err, &be) {
        return c.JSON(http.StatusBadGateway, echo.Map{"error": be.Message})
    }
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

// publishChange fires a task-change audit event without blocking the request
// or caring whether the broker is up.
func publishChange(c echo.Context, collection, action, entityID, summary string) {
    ev := queue.TaskChangedEvent{
        Collection: collection,
        Action:     action,
        EntityID:   entityID,
        Summary:    summary,
        Actor:      middleware.UserID(c),
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()
        _ = service.PublishTaskChanged(ctx, ev)
    }()
}
