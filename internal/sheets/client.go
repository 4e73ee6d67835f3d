package sheets

import (
    "bytes"
    "context"
    "encoding/json"
    "net/http"
    "net/url"
    "time"
)

// firstDataRow is the sheet row number of the first record.  Row 1 holds the
// column headers, so a record found at scan position i lives at sheet row i+2.
const firstDataRow = 2

// Client issues action-parameterized requests against one spreadsheet
// web-app endpoint.  CRUD actions are POSTed as JSON; the auth actions use
// GET with query parameters, matching what the backend script expects.
// Row positions handed out by FindRowIndexByID are only valid for the
// instant they were read: the backend has no locking, so a concurrent
// mutation from another session can invalidate a position between the scan
// and the write.
type Client struct {
    apiURL   string
    sheetKey string
    http     *http.Client
}

// New builds a Client for the given endpoint and spreadsheet key.  The
// transport timeout is the only deadline the backend calls get beyond the
// caller's context.
func New(apiURL, sheetKey string) *Client {
    return &Client{
        apiURL:   apiURL,
        sheetKey: sheetKey,
        http:     &http.Client{Timeout: 15 * time.Second},
    }
}

// envelope is the JSON shape of every backend response.
type envelope struct {
    Status  string          `json:"status"`
    Data    json.RawMessage `json:"data"`
    Message string          `json:"message"`
}

// crudRequest is the POST body for row-oriented CRUD actions.
type crudRequest struct {
    Action   string      `json:"action"`
    SheetKey string      `json:"sheetKey"`
    Sheet    string      `json:"sheet"`
    RowIndex int         `json:"rowIndex,omitempty"`
    Record   interface{} `json:"record,omitempty"`
}

// post executes a CRUD action and unwraps the response envelope.
func (c *Client) post(ctx context.Context, req crudRequest) (json.RawMessage, error) {
    req.SheetKey = c.sheetKey
    body, err := json.Marshal(req)
    if err != nil {
        return nil, &BackendError{Action: req.Action, Message: err.Error()}
    }
    httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
    if err != nil {
        return nil, &BackendError{Action: req.Action, Message: err.Error()}
    }
    httpReq.Header.Set("Content-Type", "application/json")
    return c.do(httpReq, req.Action)
}

// get executes a query-parameter action (login and friends).
func (c *Client) get(ctx context.Context, action string, params map[string]string) (json.RawMessage, error) {
    q := url.Values{}
    q.Set("action", action)
    q.Set("sheetKey", c.sheetKey)
    for k, v := range params {
        q.Set(k, v)
    }
    httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+q.Encode(), nil)
    if err != nil {
        return nil, &BackendError{Action: action, Message: err.Error()}
    }
    return c.do(httpReq, action)
}

func (c *Client) do(req *http.Request, action string) (json.RawMessage, error) {
    resp, err := c.http.Do(req)
    if err != nil {
        return nil, &BackendError{Action: action, Message: err.Error()}
    }
    defer resp.Body.Close()

    var env envelope
    if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
        return nil, &BackendError{Action: action, Message: "invalid response: " + err.Error()}
    }
    if env.Status != "success" {
        msg := env.Message
        if msg == "" {
            msg = "backend reported an error"
        }
        return nil, &BackendError{Action: action, Message: msg}
    }
    return env.Data, nil
}

// FetchAll returns the raw records of a sheet.  Callers unmarshal the result
// into their own types.
func (c *Client) FetchAll(ctx context.Context, sheet string) (json.RawMessage, error) {
    return c.post(ctx, crudRequest{Action: "getData", Sheet: sheet})
}

// Insert appends one record to the sheet.  Retrying after a timeout is not
// safe: the first attempt may have landed, and a retry duplicates the row.
func (c *Client) Insert(ctx context.Context, sheet string, record interface{}) error {
    _, err := c.post(ctx, crudRequest{Action: "insertData", Sheet: sheet, Record: record})
    return err
}

// UpdateAt overwrites fields of the row at the given sheet position.
func (c *Client) UpdateAt(ctx context.Context, sheet string, rowIndex int, record interface{}) error {
    _, err := c.post(ctx, crudRequest{Action: "updateData", Sheet: sheet, RowIndex: rowIndex, Record: record})
    return err
}

// DeleteAt removes the row at the given sheet position.
func (c *Client) DeleteAt(ctx context.Context, sheet string, rowIndex int) error {
    _, err := c.post(ctx, crudRequest{Action: "deleteData", Sheet: sheet, RowIndex: rowIndex})
    return err
}

// FindRowIndexByID fetches the full sheet and scans for the first record
// whose id field matches.  It returns the backend row position, ErrNotFound
// when no record matches, or the fetch's BackendError.  The scan is the one
// place the system maps logical ids onto row positions; swap this method out
// if the backend ever grows id-addressed mutations.
func (c *Client) FindRowIndexByID(ctx context.Context, sheet, id string) (int, error) {
    raw, err := c.FetchAll(ctx, sheet)
    if err != nil {
        return 0, err
    }
    // A success envelope may omit data entirely when the sheet is empty.
    if len(raw) == 0 {
        return 0, ErrNotFound
    }
    var rows []struct {
        ID string `json:"id"`
    }
    if err := json.Unmarshal(raw, &rows); err != nil {
        return 0, &BackendError{Action: "getData", Message: "invalid data: " + err.Error()}
    }
    for i, row := range rows {
        if row.ID == id {
            return i + firstDataRow, nil
        }
    }
    return 0, ErrNotFound
}

// Login asks the backend to validate credentials and returns the raw user
// record on success.  Failure messages come back verbatim in a BackendError.
func (c *Client) Login(ctx context.Context, username, password string) (json.RawMessage, error) {
    return c.get(ctx, "login", map[string]string{
        "username": username,
        "password": password,
    })
}

// GetUserByUsername fetches a single raw user record by login name.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (json.RawMessage, error) {
    return c.get(ctx, "getUserByUsername", map[string]string{"username": username})
}

// UpdateLastLogin stamps the user's last-login column.
func (c *Client) UpdateLastLogin(ctx context.Context, userID string) error {
    _, err := c.get(ctx, "updateLastLogin", map[string]string{"userId": userID})
    return err
}

// Register creates a user account through the backend's registration action,
// which also writes the password column.  Plain inserts never carry
// passwords.
func (c *Client) Register(ctx context.Context, record interface{}) error {
    _, err := c.post(ctx, crudRequest{Action: "registerUser", Sheet: "Users", Record: record})
    return err
}

// ResetPassword rewrites the password column of one user row.
func (c *Client) ResetPassword(ctx context.Context, userID, passwordHash string) error {
    _, err := c.get(ctx, "resetPassword", map[string]string{
        "userId":   userID,
        "password": passwordHash,
    })
    return err
}
