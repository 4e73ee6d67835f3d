// Package sheets talks to the spreadsheet web-app endpoint that backs every
// collection.  The backend addresses records by sheet row position, not by
// entity id, so this package also owns the id→row translation.  Errors are
// returned as typed values instead of being collapsed into empty results so
// callers can tell an unreachable backend from a legitimately empty sheet.
package sheets

import (
    "errors"
    "fmt"
)

// ErrNotFound is returned when an id scan finds no matching row.  Handlers
// should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// BackendError wraps an error envelope or transport failure reported while
// executing a backend action.  The Message is the backend's own wording and
// is safe to surface to the operator verbatim.
type BackendError struct {
    Action  string // backend action that failed (getData, insertData, ...)
    Message string // backend-reported or transport error text
}

func (e *BackendError) Error() string {
    return fmt.Sprintf("sheets: %s failed: %s", e.Action, e.Message)
}
