package handler

import (
    "context"
    "encoding/json"
    "errors"
    "log"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "helpdesk/internal/auth"
    "helpdesk/internal/config"
    "helpdesk/internal/middleware"
    "helpdesk/internal/model"
    "helpdesk/internal/sheets"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
    Cfg      config.Config
    Sheets   *sheets.Client
    Sessions auth.SessionStore
}

func NewAuthHandler(cfg config.Config, s *sheets.Client, sessions auth.SessionStore) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Sheets: s, Sessions: sessions}
}

// ----- DTOs -----

type loginReq struct {
    Username string `json:"username" validate:"required,min=3"`
    Password string `json:"password" validate:"required,min=6"`
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}
type authResp struct {
    User   model.User `json:"user"`
    Access tokenPart  `json:"access"`
}

// Login validates credentials against the spreadsheet backend, persists a
// session record and returns the user with a signed access token.  A failed
// login leaves no session behind; the backend's failure message is passed
// through verbatim.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Username = strings.TrimSpace(req.Username)
    if err := c.Validate(&req); err != nil {
        return err
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
    defer cancel()

    raw, err := h.Sheets.Login(ctx, req.Username, req.Password)
    if err != nil {
        var be *sheets.BackendError
        if errors.As(err, &be) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": be.Message})
        }
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login failed"})
    }

    var u model.User
    if err := json.Unmarshal(raw, &u); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "invalid user record"})
    }
    if u.Role == "" {
        u.Role = model.RoleUser
    }
    if u.Status == "" {
        u.Status = model.UserStatusActive
    }

    access, err := auth.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }

    u.LastLogin = time.Now().UTC().Format(time.RFC3339)
    ttl := time.Duration(h.Cfg.SessionTTLHour) * time.Hour
    if err := h.Sessions.Save(ctx, u, ttl); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
    }

    // Stamp the last-login column.  Failures here are not worth failing a
    // valid login over.
    if err := h.Sheets.UpdateLastLogin(ctx, u.ID); err != nil {
        log.Printf("auth: update last login failed for %s: %v", u.ID, err)
    }

    return c.JSON(http.StatusOK, authResp{
        User:   u,
        Access: tokenPart{Token: access.Token, Expires: access.Exp},
    })
}

// Me returns the persisted session record.  The spreadsheet backend is not
// contacted: the record saved at login is the session's source of truth
// until logout or expiry.
func (h *AuthHandler) Me(c echo.Context) error {
    uid := middleware.UserID(c)
    if uid == "" {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized", "redirect": "/login"})
    }
    u, err := h.Sessions.Get(c.Request().Context(), uid)
    if err != nil {
        if errors.Is(err, auth.ErrNoSession) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired", "redirect": "/login"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load session failed"})
    }
    return c.JSON(http.StatusOK, u)
}

// Logout deletes the persisted session record.  Always succeeds from the
// client's point of view.
func (h *AuthHandler) Logout(c echo.Context) error {
    uid := middleware.UserID(c)
    if uid != "" {
        if err := h.Sessions.Delete(c.Request().Context(), uid); err != nil {
            log.Printf("auth: delete session failed for %s: %v", uid, err)
        }
    }
    return c.NoContent(http.StatusNoContent)
}
