package attendance

import (
	"time"

	"github.com/sekolahapp/attendance-management/internal"
)

// TimestampLayout is the storage and response format for attendance times.
const TimestampLayout = "2006-01-02 15:04:05"

// acceptedLayouts are the client datetime formats we parse for attended_at.
var acceptedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	TimestampLayout,
}

// SubmitAttendanceDTO is the request payload for recording attendance.
type SubmitAttendanceDTO struct {
	MeetingID  int64  `json:"meeting_id"`
	UserID     int64  `json:"user_id"`
	AttendedAt string `json:"attended_at,omitempty"`
}

// Validate checks the required fields. Both carry a single fixed message the
// frontend matches on.
func (dto SubmitAttendanceDTO) Validate() error {
	if dto.MeetingID <= 0 || dto.UserID <= 0 {
		return internal.ErrMissingFields
	}
	return nil
}

// AttendanceTime normalizes the submitted timestamp. An absent or unparseable
// value falls back to now, mirroring the check-in kiosk behavior where the
// server clock is authoritative.
func (dto SubmitAttendanceDTO) AttendanceTime(now time.Time) time.Time {
	if dto.AttendedAt == "" {
		return now
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, dto.AttendedAt); err == nil {
			return t
		}
	}
	return now
}

// AttendanceConfirmation echoes what was recorded. AttendanceID is the
// participant row id, which doubles as the attendance reference.
type AttendanceConfirmation struct {
	AttendanceID int64  `json:"attendance_id"`
	MeetingID    int64  `json:"meeting_id"`
	UserID       int64  `json:"user_id"`
	AttendedAt   string `json:"attended_at"`
}
