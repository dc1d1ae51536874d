package meeting

import "time"

type Meeting struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	MeetingDate time.Time `gorm:"column:meeting_date"`
	Location    string    `gorm:"column:location"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Meeting) TableName() string {
	return "meetings"
}

// Participant is one invite row per (meeting, employee). The employee_id
// column historically stores the user id, and every lookup goes through it
// that way.
type Participant struct {
	ID             int64      `gorm:"primaryKey"`
	MeetingID      int64      `gorm:"column:meeting_id;not null"`
	EmployeeID     int64      `gorm:"column:employee_id;not null"`
	Status         string     `gorm:"column:status;default:invited"`
	AttendanceTime *time.Time `gorm:"column:attendance_time"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
}

func (Participant) TableName() string {
	return "meeting_participants"
}
