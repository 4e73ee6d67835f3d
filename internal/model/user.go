package model

// Role names form a fixed three-tier hierarchy used for route gating.
// admin outranks technician outranks user.
const (
    RoleAdmin      = "admin"
    RoleTechnician = "technician"
    RoleUser       = "user"

    UserStatusActive   = "active"
    UserStatusInactive = "inactive"
)

// roleLevels maps each role to its rank.  A request is admitted when the
// session's rank is at least the route's required rank.
var roleLevels = map[string]int{
    RoleAdmin:      3,
    RoleTechnician: 2,
    RoleUser:       1,
}

// RoleLevel returns the rank of a role name, or 0 for unknown roles so that
// a corrupt or missing role never satisfies any gate.
func RoleLevel(role string) int {
    return roleLevels[role]
}

// User represents an account row on the Users sheet.  The password column is
// write-only: it is sent to the backend on registration and reset but never
// carried in this struct, so a User can be serialized into a session record
// or an API response as-is.
//
// Fields:
//  ID         – timestamp-derived identifier assigned at creation.
//  Username   – unique login name, immutable after creation.
//  FullName   – display name.
//  Email      – contact address.
//  Role       – admin | technician | user.
//  Department – organizational unit.
//  Status     – active | inactive.
//  CreatedAt  – creation timestamp.
//  LastLogin  – last successful login, empty until first login.
type User struct {
    ID         string `json:"id"`
    Username   string `json:"username"`
    FullName   string `json:"fullName"`
    Email      string `json:"email"`
    Role       string `json:"role"`
    Department string `json:"department"`
    Status     string `json:"status"`
    CreatedAt  string `json:"createdAt"`
    LastLogin  string `json:"lastLogin,omitempty"`
}
