package postgres

import (
	permDatamodel "github.com/sekolahapp/attendance-management/internal/core/datamodel/permission"
	"github.com/sekolahapp/attendance-management/internal/permission"
	"gorm.io/gorm"
)

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) permission.RepositoryAPI {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) GetOverrides(userID int64) ([]*permDatamodel.UserPermission, error) {
	var rows []*permDatamodel.UserPermission
	err := r.db.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

// GetPositionDefaults returns the permission columns of the user's position,
// or nil when the user has no employee row or no joined position. NULL flag
// columns coalesce to 0.
func (r *PermissionRepository) GetPositionDefaults(userID int64) (*permDatamodel.PositionDefaults, error) {
	var row permDatamodel.PositionDefaults
	err := r.db.Table("employees").
		Select(
			"COALESCE(positions.can_create_meeting, 0) AS can_create_meeting, "+
				"COALESCE(positions.can_approve_permits, 0) AS can_approve_permits, "+
				"COALESCE(positions.can_access_tahfidz, 0) AS can_access_tahfidz, "+
				"COALESCE(positions.is_koordinator, 0) AS is_koordinator").
		Joins("JOIN positions ON employees.position_id = positions.id").
		Where("employees.user_id = ?", userID).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
