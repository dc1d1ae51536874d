package postgres

import (
	"time"

	"github.com/sekolahapp/attendance-management/internal/attendance"
	meetingDatamodel "github.com/sekolahapp/attendance-management/internal/core/datamodel/meeting"
	"gorm.io/gorm"
)

// AttendanceRepository implements the attendance.RepositoryAPI interface using GORM
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.RepositoryAPI {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) GetMeeting(id int64) (*attendance.Meeting, error) {
	var m meetingDatamodel.Meeting
	err := r.db.Where("id = ?", id).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &attendance.Meeting{ID: m.ID, Title: m.Title}, nil
}

func (r *AttendanceRepository) GetParticipant(meetingID, userID int64) (*attendance.Participant, error) {
	var p meetingDatamodel.Participant
	err := r.db.Where("meeting_id = ? AND employee_id = ?", meetingID, userID).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &attendance.Participant{
		ID:             p.ID,
		MeetingID:      p.MeetingID,
		EmployeeID:     p.EmployeeID,
		Status:         attendance.Status(p.Status),
		AttendanceTime: p.AttendanceTime,
	}, nil
}

// MarkPresent flips the participant to present only while it is not present
// yet. The status filter makes the duplicate check atomic: under concurrent
// submissions exactly one update reports an affected row.
func (r *AttendanceRepository) MarkPresent(meetingID, userID int64, attendedAt time.Time) (int64, error) {
	res := r.db.Model(&meetingDatamodel.Participant{}).
		Where("meeting_id = ? AND employee_id = ? AND status <> ?", meetingID, userID, attendance.StatusPresent).
		Updates(map[string]interface{}{
			"status":          string(attendance.StatusPresent),
			"attendance_time": attendedAt,
		})
	return res.RowsAffected, res.Error
}
