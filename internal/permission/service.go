package permission

import (
	"log/slog"

	permDatamodel "github.com/sekolahapp/attendance-management/internal/core/datamodel/permission"
)

type RepositoryAPI interface {
	GetOverrides(userID int64) ([]*permDatamodel.UserPermission, error)
	GetPositionDefaults(userID int64) (*permDatamodel.PositionDefaults, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ResolvePermissions resolves a user's effective permission set. Override rows
// win outright: even a single row means the remaining keys stay 0 rather than
// falling back to position defaults. With no overrides the position columns
// apply, and a user without a resolvable position gets the all-zero set.
func (s *Service) ResolvePermissions(userID int64) (*Resolution, error) {
	set := NewSet()

	overrides, err := s.repo.GetOverrides(userID)
	if err != nil {
		s.logger.Error("failed to get permission overrides", "error", err, "user_id", userID)
		return nil, err
	}

	if len(overrides) > 0 {
		for _, row := range overrides {
			set.Apply(row.PermissionName, row.IsGranted)
		}
		s.logger.Info("permissions resolved from overrides", "user_id", userID, "override_count", len(overrides))
		return &Resolution{UserID: userID, Source: SourceUserOverride, Permissions: set}, nil
	}

	defaults, err := s.repo.GetPositionDefaults(userID)
	if err != nil {
		s.logger.Error("failed to get position defaults", "error", err, "user_id", userID)
		return nil, err
	}

	if defaults != nil {
		set[KeyCreateMeeting] = defaults.CanCreateMeeting
		set[KeyApprovePermits] = defaults.CanApprovePermits
		set[KeyAccessTahfidz] = defaults.CanAccessTahfidz
		set[KeyKoordinator] = defaults.IsKoordinator
	}

	return &Resolution{UserID: userID, Source: SourcePositionDefault, Permissions: set}, nil
}
