package attendance

import "time"

// Status is a meeting participant's attendance state. The administrative
// tooling writes other values (excused leave and the like); anything that is
// not present counts as not-yet-attended and stays eligible for check-in.
type Status string

const (
	StatusInvited Status = "invited"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Attended reports whether the participant already checked in. The only
// transition this service performs is not-attended → present.
func (s Status) Attended() bool {
	return s == StatusPresent
}

type Meeting struct {
	ID    int64
	Title string
}

type Participant struct {
	ID             int64
	MeetingID      int64
	EmployeeID     int64
	Status         Status
	AttendanceTime *time.Time
}
