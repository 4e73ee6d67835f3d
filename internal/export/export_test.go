package export

import (
    "bytes"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "github.com/xuri/excelize/v2"

    "helpdesk/internal/model"
)

var sampleRepairs = []model.RepairTask{
    {ID: "1", Date: "2026-08-01", Equipment: "Printer HP-401", Issue: "paper jam", Solution: "cleared tray 2", Technician: "somchai", Status: "completed", Priority: "high"},
    {ID: "2", Date: "2026-08-02", Equipment: "Router", Issue: "intermittent drops", Technician: "arthit", Status: "pending", Priority: "medium"},
}

func TestRepairTasksExcel(t *testing.T) {
    buf, err := RepairTasksExcel(sampleRepairs)
    require.NoError(t, err)
    require.NotZero(t, buf.Len())

    f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
    require.NoError(t, err)
    defer f.Close()

    got, err := f.GetCellValue("Repair Report", "B1")
    require.NoError(t, err)
    assert.Equal(t, "Equipment", got)

    got, err = f.GetCellValue("Repair Report", "B3")
    require.NoError(t, err)
    assert.Equal(t, "Router", got)

    w, err := f.GetColWidth("Repair Report", "C")
    require.NoError(t, err)
    assert.InDelta(t, 30, w, 1)
}

func TestWorkTasksExcelEmpty(t *testing.T) {
    buf, err := WorkTasksExcel(nil)
    require.NoError(t, err)

    f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
    require.NoError(t, err)
    defer f.Close()

    got, err := f.GetCellValue("Work Report", "A1")
    require.NoError(t, err)
    assert.Equal(t, "Date", got, "header row present even with no data")
}

func TestRepairTasksPrint(t *testing.T) {
    out, err := RepairTasksPrint(sampleRepairs)
    require.NoError(t, err)

    html := string(out)
    assert.Contains(t, html, "Repair Report")
    assert.Contains(t, html, "Printer HP-401")
    assert.Contains(t, html, "2 records")
}

func TestPrintEscapesMarkup(t *testing.T) {
    out, err := WorkTasksPrint([]model.WorkTask{{Title: "<script>alert(1)</script>"}})
    require.NoError(t, err)
    assert.NotContains(t, string(out), "<script>alert(1)</script>")
}
