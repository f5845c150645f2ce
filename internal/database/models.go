package database

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the persisted user row.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	FirstName    string    `bun:"first_name,notnull"`
	LastName     string    `bun:"last_name,notnull"`
	EmailAddress string    `bun:"email_address,notnull,unique"`
	PasswordHash string    `bun:"password,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Course is the persisted course row. Owner is only populated when the
// relation is selected.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID              int64     `bun:"id,pk,autoincrement"`
	Title           string    `bun:"title,notnull"`
	Description     string    `bun:"description,type:text,notnull"`
	EstimatedTime   *string   `bun:"estimated_time"`
	MaterialsNeeded *string   `bun:"materials_needed"`
	UserID          int64     `bun:"user_id,notnull"`
	Owner           *User     `bun:"rel:belongs-to,join:user_id=id"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
