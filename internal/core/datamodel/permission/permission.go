package permission

import "time"

// UserPermission is one per-user override row. A user with any rows here is
// resolved entirely from them; position defaults are not merged in.
type UserPermission struct {
	ID             int64     `gorm:"primaryKey"`
	UserID         int64     `gorm:"column:user_id;not null;index"`
	PermissionName string    `gorm:"column:permission_name;not null"`
	IsGranted      int       `gorm:"column:is_granted;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (UserPermission) TableName() string {
	return "user_permissions"
}

// PositionDefaults is the projection of the employees→positions join used by
// the fallback path. Not a table.
type PositionDefaults struct {
	CanCreateMeeting  int `gorm:"column:can_create_meeting"`
	CanApprovePermits int `gorm:"column:can_approve_permits"`
	CanAccessTahfidz  int `gorm:"column:can_access_tahfidz"`
	IsKoordinator     int `gorm:"column:is_koordinator"`
}
