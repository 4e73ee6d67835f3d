package model

// Task status and priority values mirror the fixed dropdown choices of the
// dashboard forms.  They are stored verbatim in the spreadsheet, so the
// strings here must not change without migrating the sheet contents.
const (
    RepairStatusPending    = "pending"
    RepairStatusInProgress = "in-progress"
    RepairStatusCompleted  = "completed"
    RepairStatusCancelled  = "cancelled"

    WorkStatusTodo       = "todo"
    WorkStatusInProgress = "in-progress"
    WorkStatusDone       = "done"

    PriorityLow    = "low"
    PriorityMedium = "medium"
    PriorityHigh   = "high"
)

// RepairTask represents one equipment repair record as stored on the
// RepairTasks sheet.  All fields are strings because the sheet has no column
// types; dates are kept in the ISO form the forms submit.
//
// Fields:
//  ID         – timestamp-derived identifier assigned at creation.
//  Date       – creation date of the record.
//  ReportDate – date the problem was reported.
//  Equipment  – name of the equipment being repaired.
//  Issue      – description of the problem.
//  Solution   – how it was fixed; empty until resolved.
//  Technician – technician handling the repair.
//  Reporter   – person who reported the problem.
//  Status     – pending | in-progress | completed | cancelled.
//  Priority   – low | medium | high.
//  Notes      – free-form remarks, optional.
type RepairTask struct {
    ID         string `json:"id"`
    Date       string `json:"date"`
    ReportDate string `json:"reportDate"`
    Equipment  string `json:"equipment"`
    Issue      string `json:"issue"`
    Solution   string `json:"solution"`
    Technician string `json:"technician"`
    Reporter   string `json:"reporter"`
    Status     string `json:"status"`
    Priority   string `json:"priority"`
    Notes      string `json:"notes,omitempty"`
}

// WorkTask represents one general work item on the WorkTasks sheet.
type WorkTask struct {
    ID          string `json:"id"`
    Date        string `json:"date"`
    Title       string `json:"title"`
    Description string `json:"description"`
    AssignedTo  string `json:"assignedTo"`
    Status      string `json:"status"`
    Priority    string `json:"priority"`
    DueDate     string `json:"dueDate"`
    Notes       string `json:"notes,omitempty"`
}
