package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Identity is the authenticated principal shown in the admin panel.
// There is no credential store behind it: the login flow only checks that
// name, email and password were all filled in before minting a session.
type Identity struct {
	Name  string
	Email string
}

// Session binds an Identity to a browser session token.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID        string    `bun:"id,pk"`
	Name      string    `bun:"name,notnull"`
	Email     string    `bun:"email,notnull"`
	ExpiresAt time.Time `bun:"expires_at,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Identity returns the principal carried by the session.
func (s Session) Identity() Identity {
	return Identity{Name: s.Name, Email: s.Email}
}

// Expired returns true when the session expiry time has passed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// DirectoryUser is a row of the legacy local directory store, used when no
// external backend is configured.
type DirectoryUser struct {
	bun.BaseModel `bun:"table:directory_users,alias:du"`

	ID        int64     `bun:"id,pk,autoincrement"`
	FullName  string    `bun:"full_name,notnull"`
	Email     string    `bun:"email,notnull"`
	Phone     string    `bun:"phone"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// AuditLog captures immutable change history for admin mutations.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID         int64     `bun:"id,pk,autoincrement"`
	ActorEmail string    `bun:"actor_email,notnull"`
	Action     string    `bun:"action,notnull"`
	EntityType string    `bun:"entity_type,notnull"`
	EntityID   string    `bun:"entity_id,notnull"`
	BeforeJSON string    `bun:"before_json"`
	AfterJSON  string    `bun:"after_json"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
