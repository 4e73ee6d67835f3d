package repository

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "sync"
    "testing"

    "helpdesk/internal/sheets"
)

// fakeSheets is a stateful stand-in for the spreadsheet web app.  It keeps
// rows per sheet in insertion order so row positions behave like the real
// backend: the first record sits at row 2.
type fakeSheets struct {
    mu     sync.Mutex
    sheets map[string][]map[string]interface{}
    srv    *httptest.Server
}

func newFakeSheets(t *testing.T) *fakeSheets {
    t.Helper()
    f := &fakeSheets{sheets: map[string][]map[string]interface{}{}}
    f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
    t.Cleanup(f.srv.Close)
    return f
}

func (f *fakeSheets) client() *sheets.Client {
    return sheets.New(f.srv.URL, "test-key")
}

func (f *fakeSheets) rows(sheet string) []map[string]interface{} {
    f.mu.Lock()
    defer f.mu.Unlock()
    return append([]map[string]interface{}{}, f.sheets[sheet]...)
}

func (f *fakeSheets) seed(sheet string, rows ...map[string]interface{}) {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.sheets[sheet] = append(f.sheets[sheet], rows...)
}

func (f *fakeSheets) handle(w http.ResponseWriter, r *http.Request) {
    var req struct {
        Action   string                 `json:"action"`
        Sheet    string                 `json:"sheet"`
        RowIndex int                    `json:"rowIndex"`
        Record   map[string]interface{} `json:"record"`
    }
    if r.Method == http.MethodPost {
        if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
            writeEnvelope(w, nil, "bad request body")
            return
        }
    } else {
        req.Action = r.URL.Query().Get("action")
    }

    f.mu.Lock()
    defer f.mu.Unlock()

    switch req.Action {
    case "getData":
        writeEnvelope(w, f.sheets[req.Sheet], "")
    case "insertData":
        f.sheets[req.Sheet] = append(f.sheets[req.Sheet], req.Record)
        writeEnvelope(w, nil, "")
    case "registerUser":
        f.sheets["Users"] = append(f.sheets["Users"], req.Record)
        writeEnvelope(w, nil, "")
    case "updateData":
        i := req.RowIndex - 2
        rows := f.sheets[req.Sheet]
        if i < 0 || i >= len(rows) {
            writeEnvelope(w, nil, "row out of range")
            return
        }
        for k, v := range req.Record {
            rows[i][k] = v
        }
        writeEnvelope(w, nil, "")
    case "deleteData":
        i := req.RowIndex - 2
        rows := f.sheets[req.Sheet]
        if i < 0 || i >= len(rows) {
            writeEnvelope(w, nil, "row out of range")
            return
        }
        f.sheets[req.Sheet] = append(rows[:i], rows[i+1:]...)
        writeEnvelope(w, nil, "")
    case "resetPassword":
        writeEnvelope(w, nil, "")
    default:
        writeEnvelope(w, nil, "unknown action: "+req.Action)
    }
}

func writeEnvelope(w http.ResponseWriter, data interface{}, errMsg string) {
    w.Header().Set("Content-Type", "application/json")
    if errMsg != "" {
        _ = json.NewEncoder(w).Encode(map[string]interface{}{"status": "error", "message": errMsg})
        return
    }
    resp := map[string]interface{}{"status": "success"}
    if data != nil {
        resp["data"] = data
    }
    _ = json.NewEncoder(w).Encode(resp)
}
