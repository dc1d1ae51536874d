package permission

// Key is one of the recognized permission names. The same set backs both the
// user_permissions.permission_name values and the positions column names, so
// it is defined exactly once here.
type Key string

const (
	KeyCreateMeeting  Key = "can_create_meeting"
	KeyApprovePermits Key = "can_approve_permits"
	KeyAccessTahfidz  Key = "can_access_tahfidz"
	KeyKoordinator    Key = "is_koordinator"
)

// AllKeys returns the fixed key set in its canonical order.
func AllKeys() []Key {
	return []Key{KeyCreateMeeting, KeyApprovePermits, KeyAccessTahfidz, KeyKoordinator}
}

// Source tags which resolution path produced a permission set.
type Source string

const (
	SourceUserOverride    Source = "user_override"
	SourcePositionDefault Source = "position_default"
)

// Set maps every recognized key to 0 or 1. A Set built through NewSet always
// holds exactly the fixed keys.
type Set map[Key]int

func NewSet() Set {
	s := make(Set, len(AllKeys()))
	for _, k := range AllKeys() {
		s[k] = 0
	}
	return s
}

// Apply sets an override value by its stored name. Names outside the fixed
// key set are ignored.
func (s Set) Apply(name string, granted int) {
	key := Key(name)
	if _, ok := s[key]; !ok {
		return
	}
	if granted != 0 {
		granted = 1
	}
	s[key] = granted
}

// Resolution is a user's effective permission set and where it came from.
type Resolution struct {
	UserID      int64  `json:"user_id"`
	Source      Source `json:"source"`
	Permissions Set    `json:"permissions"`
}
