package employee

import "time"

// Employee links an application user to an organizational position. The
// position carries the default permission flags for everyone holding it.
type Employee struct {
	ID         int64     `gorm:"primaryKey"`
	UserID     int64     `gorm:"column:user_id;uniqueIndex;not null"`
	Name       string    `gorm:"column:name;not null"`
	PositionID *int64    `gorm:"column:position_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// Position permission columns are named exactly after the permission keys;
// the resolver copies them by key.
type Position struct {
	ID                int64     `gorm:"primaryKey"`
	Name              string    `gorm:"column:name;not null"`
	CanCreateMeeting  int       `gorm:"column:can_create_meeting;default:0"`
	CanApprovePermits int       `gorm:"column:can_approve_permits;default:0"`
	CanAccessTahfidz  int       `gorm:"column:can_access_tahfidz;default:0"`
	IsKoordinator     int       `gorm:"column:is_koordinator;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (Position) TableName() string {
	return "positions"
}
