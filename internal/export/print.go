package export

import (
    "bytes"
    "html/template"
    "time"

    "helpdesk/internal/model"
)

// The print documents are self-contained HTML pages meant for the browser's
// print-to-PDF path, so styling stays inline and minimal.
const printPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 24px; }
h1 { font-size: 18px; }
p.meta { color: #555; font-size: 12px; }
table { border-collapse: collapse; width: 100%; font-size: 12px; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
th { background: #eee; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Generated {{.GeneratedAt}} - {{.Count}} records</p>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`

var printTmpl = template.Must(template.New("print").Parse(printPage))

type printData struct {
    Title       string
    GeneratedAt string
    Count       int
    Headers     []string
    Rows        [][]string
}

// RepairTasksPrint renders the repair collection as a printable HTML report.
func RepairTasksPrint(tasks []model.RepairTask) ([]byte, error) {
    rows := make([][]string, 0, len(tasks))
    for _, t := range tasks {
        rows = append(rows, []string{t.Date, t.Equipment, t.Issue, t.Solution, t.Technician, t.Status, t.Priority})
    }
    return renderPrint(printData{
        Title:       "Repair Report",
        GeneratedAt: time.Now().Format("2006-01-02 15:04"),
        Count:       len(tasks),
        Headers:     []string{"Date", "Equipment", "Issue", "Solution", "Technician", "Status", "Priority"},
        Rows:        rows,
    })
}

// WorkTasksPrint renders the work collection as a printable HTML report.
func WorkTasksPrint(tasks []model.WorkTask) ([]byte, error) {
    rows := make([][]string, 0, len(tasks))
    for _, t := range tasks {
        rows = append(rows, []string{t.Date, t.Title, t.Description, t.AssignedTo, t.Status, t.DueDate})
    }
    return renderPrint(printData{
        Title:       "Work Report",
        GeneratedAt: time.Now().Format("2006-01-02 15:04"),
        Count:       len(tasks),
        Headers:     []string{"Date", "Title", "Description", "Assigned To", "Status", "Due Date"},
        Rows:        rows,
    })
}

func renderPrint(d printData) ([]byte, error) {
    var buf bytes.Buffer
    if err := printTmpl.Execute(&buf, d); err != nil {
        return nil, err
    }
    return buf.Bytes(), nil
}
