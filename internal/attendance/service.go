package attendance

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sekolahapp/attendance-management/internal"
)

// RepositoryAPI defines the data access methods for attendance recording.
// Lookups return (nil, nil) when no row matches.
type RepositoryAPI interface {
	GetMeeting(id int64) (*Meeting, error)
	GetParticipant(meetingID, userID int64) (*Participant, error)
	// MarkPresent conditionally flips a not-yet-attended participant to
	// present and returns the number of rows affected.
	MarkPresent(meetingID, userID int64, attendedAt time.Time) (int64, error)
}

// Receipt is the outcome of a successful recording.
type Receipt struct {
	Message      string
	Confirmation AttendanceConfirmation
}

// Service handles attendance recording business logic
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

// RecordAttendance validates eligibility and marks the participant present.
// Checks run in order: meeting exists, user is a participant, not already
// present. The commit itself is a conditional update filtered on the status,
// so a concurrent duplicate that loses the race surfaces as the same conflict
// instead of silently rewriting attendance_time.
func (s *Service) RecordAttendance(dto *SubmitAttendanceDTO) (*Receipt, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	meeting, err := s.repo.GetMeeting(dto.MeetingID)
	if err != nil {
		s.logger.Error("failed to look up meeting", "error", err, "meeting_id", dto.MeetingID)
		return nil, err
	}
	if meeting == nil {
		return nil, internal.ErrMeetingNotFound
	}

	participant, err := s.repo.GetParticipant(dto.MeetingID, dto.UserID)
	if err != nil {
		s.logger.Error("failed to look up participant", "error", err, "meeting_id", dto.MeetingID, "user_id", dto.UserID)
		return nil, err
	}
	if participant == nil {
		return nil, internal.ErrNotParticipant
	}
	if participant.Status.Attended() {
		return nil, internal.ErrAlreadyAttended
	}

	attendedAt := dto.AttendanceTime(time.Now())

	rows, err := s.repo.MarkPresent(dto.MeetingID, dto.UserID, attendedAt)
	if err != nil {
		s.logger.Error("failed to record attendance", "error", err, "meeting_id", dto.MeetingID, "user_id", dto.UserID)
		return nil, err
	}
	if rows == 0 {
		// a concurrent submission flipped the row between the check and
		// the update
		s.logger.Warn("attendance update affected no rows", "meeting_id", dto.MeetingID, "user_id", dto.UserID)
		return nil, internal.ErrAlreadyAttended
	}

	s.logger.Info("attendance recorded",
		"attendance_id", participant.ID,
		"meeting_id", dto.MeetingID,
		"user_id", dto.UserID,
		"attended_at", attendedAt.Format(TimestampLayout))

	return &Receipt{
		Message: fmt.Sprintf("Absensi berhasil dicatat untuk rapat %q!", meeting.Title),
		Confirmation: AttendanceConfirmation{
			AttendanceID: participant.ID,
			MeetingID:    dto.MeetingID,
			UserID:       dto.UserID,
			AttendedAt:   attendedAt.Format(TimestampLayout),
		},
	}, nil
}
