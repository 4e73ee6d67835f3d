// Package export renders the current task collections as downloadable
// artifacts: an Excel workbook and a print-formatted HTML document.  Both
// are pure projections of the data they are handed; nothing is persisted.
package export

import (
    "bytes"
    "fmt"

    "github.com/xuri/excelize/v2"

    "helpdesk/internal/model"
)

const (
    repairSheetName = "Repair Report"
    workSheetName   = "Work Report"
)

// RepairTasksExcel builds an xlsx workbook with one row per repair task.
// Column set and widths follow the dashboard's export layout.
func RepairTasksExcel(tasks []model.RepairTask) (*bytes.Buffer, error) {
    f := excelize.NewFile()
    defer f.Close()
    f.SetSheetName("Sheet1", repairSheetName)

    headers := []string{"Date", "Equipment", "Issue", "Solution", "Technician", "Status", "Priority"}
    widths := []float64{12, 20, 30, 30, 15, 15, 12}
    if err := writeHeader(f, repairSheetName, headers, widths); err != nil {
        return nil, err
    }

    for i, t := range tasks {
        row := i + 2
        cells := []interface{}{t.Date, t.Equipment, t.Issue, t.Solution, t.Technician, t.Status, t.Priority}
        if err := writeRow(f, repairSheetName, row, cells); err != nil {
            return nil, err
        }
    }
    return f.WriteToBuffer()
}

// WorkTasksExcel builds an xlsx workbook with one row per work task.
func WorkTasksExcel(tasks []model.WorkTask) (*bytes.Buffer, error) {
    f := excelize.NewFile()
    defer f.Close()
    f.SetSheetName("Sheet1", workSheetName)

    headers := []string{"Date", "Title", "Description", "Assigned To", "Status", "Due Date"}
    widths := []float64{12, 25, 35, 15, 15, 12}
    if err := writeHeader(f, workSheetName, headers, widths); err != nil {
        return nil, err
    }

    for i, t := range tasks {
        row := i + 2
        cells := []interface{}{t.Date, t.Title, t.Description, t.AssignedTo, t.Status, t.DueDate}
        if err := writeRow(f, workSheetName, row, cells); err != nil {
            return nil, err
        }
    }
    return f.WriteToBuffer()
}

func writeHeader(f *excelize.File, sheet string, headers []string, widths []float64) error {
    for i, h := range headers {
        col, err := excelize.ColumnNumberToName(i + 1)
        if err != nil {
            return err
        }
        if err := f.SetCellValue(sheet, fmt.Sprintf("%s1", col), h); err != nil {
            return err
        }
        if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
            return err
        }
    }
    return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
    for i, v := range cells {
        col, err := excelize.ColumnNumberToName(i + 1)
        if err != nil {
            return err
        }
        if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v); err != nil {
            return err
        }
    }
    return nil
}
