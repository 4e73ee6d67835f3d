package handler

import (
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "helpdesk/internal/export"
    "helpdesk/internal/store"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler turns the current store contents into downloadable reports.
type ReportHandler struct {
    Store *store.Store
}

func NewReportHandler(st *store.Store) *ReportHandler { return &ReportHandler{Store: st} }

// RepairExcel handles GET /v1/repairs/export/excel.
func (h *ReportHandler) RepairExcel(c echo.Context) error {
    buf, err := export.RepairTasksExcel(h.Store.RepairTasks())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
    }
    attachName(c, fmt.Sprintf("repair-report-%s.xlsx", time.Now().Format("2006-01-02")))
    return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

// WorkExcel handles GET /v1/tasks/export/excel.
func (h *ReportHandler) WorkExcel(c echo.Context) error {
    buf, err := export.WorkTasksExcel(h.Store.WorkTasks())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
    }
    attachName(c, fmt.Sprintf("work-report-%s.xlsx", time.Now().Format("2006-01-02")))
    return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

// RepairPrint handles GET /v1/repairs/export/print and returns a printable
// HTML page for the browser's print-to-PDF flow.
func (h *ReportHandler) RepairPrint(c echo.Context) error {
    page, err := export.RepairTasksPrint(h.Store.RepairTasks())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
    }
    return c.HTMLBlob(http.StatusOK, page)
}

// WorkPrint handles GET /v1/tasks/export/print.
func (h *ReportHandler) WorkPrint(c echo.Context) error {
    page, err := export.WorkTasksPrint(h.Store.WorkTasks())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
    }
    return c.HTMLBlob(http.StatusOK, page)
}

func attachName(c echo.Context, name string) {
    c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
}
