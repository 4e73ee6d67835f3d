package handler

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "sync"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "helpdesk/internal/model"
    "helpdesk/internal/repository"
    "helpdesk/internal/sheets"
    "helpdesk/internal/store"
)

// taskBackend is a minimal stateful spreadsheet stand-in for handler tests.
// Rows live in a single sheet; row positions start at 2 like the real thing.
type taskBackend struct {
    mu   sync.Mutex
    rows []map[string]interface{}
    srv  *httptest.Server
}

func newTaskBackend(t *testing.T, rows ...map[string]interface{}) *taskBackend {
    t.Helper()
    b := &taskBackend{rows: rows}
    b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        var req struct {
            Action   string                 `json:"action"`
            RowIndex int                    `json:"rowIndex"`
            Record   map[string]interface{} `json:"record"`
        }
        _ = json.NewDecoder(r.Body).Decode(&req)

        b.mu.Lock()
        defer b.mu.Unlock()
        w.Header().Set("Content-Type", "application/json")
        switch req.Action {
        case "getData":
            _ = json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "data": b.rows})
        case "insertData":
            b.rows = append(b.rows, req.Record)
            _, _ = w.Write([]byte(`{"status":"success"}`))
        case "updateData":
            i := req.RowIndex - 2
            if i < 0 || i >= len(b.rows) {
                _, _ = w.Write([]byte(`{"status":"error","message":"row out of range"}`))
                return
            }
            for k, v := range req.Record {
                b.rows[i][k] = v
            }
            _, _ = w.Write([]byte(`{"status":"success"}`))
        case "deleteData":
            i := req.RowIndex - 2
            if i < 0 || i >= len(b.rows) {
                _, _ = w.Write([]byte(`{"status":"error","message":"row out of range"}`))
                return
            }
            b.rows = append(b.rows[:i], b.rows[i+1:]...)
            _, _ = w.Write([]byte(`{"status":"success"}`))
        default:
            _, _ = w.Write([]byte(`{"status":"error","message":"unknown action"}`))
        }
    }))
    t.Cleanup(b.srv.Close)
    return b
}

func (b *taskBackend) count() int {
    b.mu.Lock()
    defer b.mu.Unlock()
    return len(b.rows)
}

func newRepairFixture(t *testing.T, rows ...map[string]interface{}) (*RepairHandler, *store.Store, *taskBackend) {
    t.Helper()
    backend := newTaskBackend(t, rows...)
    st := store.New()
    h := NewRepairHandler(repository.NewRepairTaskRepo(sheets.New(backend.srv.URL, "k")), st)
    return h, st, backend
}

func doJSON(t *testing.T, method, path, body string, params map[string]string, h echo.HandlerFunc) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    e.Validator = NewValidator()
    req := httptest.NewRequest(method, path, strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    for k, v := range params {
        c.SetParamNames(k)
        c.SetParamValues(v)
    }
    if err := h(c); err != nil {
        e.HTTPErrorHandler(err, c)
    }
    return rec
}

const validRepairBody = `{
    "equipment": "Printer HP-401",
    "issue": "paper jam in tray 2",
    "technician": "somchai",
    "status": "pending",
    "priority": "high"
}`

func TestRepairCreateMirrorsIntoStore(t *testing.T) {
    h, st, backend := newRepairFixture(t)

    rec := doJSON(t, http.MethodPost, "/v1/repairs", validRepairBody, nil, h.Create)
    require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

    var created model.RepairTask
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
    assert.NotEmpty(t, created.ID)

    tasks := st.RepairTasks()
    require.Len(t, tasks, 1)
    assert.Equal(t, created.ID, tasks[0].ID)
    assert.Equal(t, 1, backend.count(), "row written to the backend")
}

func TestRepairCreateValidationFailureTouchesNothing(t *testing.T) {
    h, st, backend := newRepairFixture(t)

    rec := doJSON(t, http.MethodPost, "/v1/repairs", `{"equipment":"P","issue":"x","status":"pending","priority":"high"}`, nil, h.Create)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Empty(t, st.RepairTasks())
    assert.Equal(t, 0, backend.count())
}

func TestRepairCreateRejectsUnknownStatus(t *testing.T) {
    h, _, _ := newRepairFixture(t)
    body := strings.Replace(validRepairBody, `"pending"`, `"resolved"`, 1)
    rec := doJSON(t, http.MethodPost, "/v1/repairs", body, nil, h.Create)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRepairListServesStoreSnapshot(t *testing.T) {
    h, st, _ := newRepairFixture(t)
    st.AppendRepairTask(model.RepairTask{ID: "1", Equipment: "Router"})

    rec := doJSON(t, http.MethodGet, "/v1/repairs", "", nil, h.List)
    require.Equal(t, http.StatusOK, rec.Code)

    var tasks []model.RepairTask
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
    require.Len(t, tasks, 1)
    assert.Equal(t, "Router", tasks[0].Equipment)
}

func TestRepairUpdateUnknownIDIs404(t *testing.T) {
    h, _, _ := newRepairFixture(t, map[string]interface{}{"id": "100"})

    rec := doJSON(t, http.MethodPut, "/v1/repairs/999", validRepairBody, map[string]string{"id": "999"}, h.Update)
    assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRepairUpdatePatchesStore(t *testing.T) {
    h, st, _ := newRepairFixture(t, map[string]interface{}{"id": "100", "equipment": "Printer HP-401", "status": "pending"})
    st.AppendRepairTask(model.RepairTask{ID: "100", Equipment: "Printer HP-401", Status: "pending"})

    body := strings.Replace(validRepairBody, `"pending"`, `"completed"`, 1)
    rec := doJSON(t, http.MethodPut, "/v1/repairs/100", body, map[string]string{"id": "100"}, h.Update)
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

    tasks := st.RepairTasks()
    require.Len(t, tasks, 1)
    assert.Equal(t, "completed", tasks[0].Status)
    assert.Equal(t, "100", tasks[0].ID)
}

func TestRepairDeleteRemovesEverywhere(t *testing.T) {
    h, st, backend := newRepairFixture(t,
        map[string]interface{}{"id": "100"},
        map[string]interface{}{"id": "200"},
    )
    st.ReplaceRepairTasks([]model.RepairTask{{ID: "100"}, {ID: "200"}})

    rec := doJSON(t, http.MethodDelete, "/v1/repairs/100", "", map[string]string{"id": "100"}, h.Delete)
    assert.Equal(t, http.StatusNoContent, rec.Code)

    assert.Equal(t, 1, backend.count())
    tasks := st.RepairTasks()
    require.Len(t, tasks, 1)
    assert.Equal(t, "200", tasks[0].ID)
}
