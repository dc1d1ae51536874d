package attendance_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sekolahapp/attendance-management/internal/attendance"
	attendancePostgres "github.com/sekolahapp/attendance-management/internal/attendance/postgres"
	meetingDatamodel "github.com/sekolahapp/attendance-management/internal/core/datamodel/meeting"
	"github.com/sekolahapp/attendance-management/internal/transport"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Attendance Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *attendance.Handler
		slogger *slog.Logger

		meetingID     int64
		participantID int64
	)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/meetings/attendance", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.SubmitAttendance(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) transport.APIResponse {
		var resp transport.APIResponse
		err := json.NewDecoder(w.Body).Decode(&resp)
		Expect(err).NotTo(HaveOccurred())
		return resp
	}

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&meetingDatamodel.Meeting{}, &meetingDatamodel.Participant{})
		Expect(err).NotTo(HaveOccurred())

		repo := attendancePostgres.NewAttendanceRepository(db)
		service := attendance.NewService(repo, slogger)
		handler = &attendance.Handler{
			BaseHandler: &transport.BaseHandler{Logger: slogger},
			Service:     service,
		}

		m := meetingDatamodel.Meeting{Title: "Rapat Wali Kelas", MeetingDate: time.Now()}
		Expect(db.Create(&m).Error).NotTo(HaveOccurred())
		meetingID = m.ID

		p := meetingDatamodel.Participant{MeetingID: m.ID, EmployeeID: 5, Status: "invited"}
		Expect(db.Create(&p).Error).NotTo(HaveOccurred())
		participantID = p.ID
	})

	It("should reject non-POST methods with 405", func() {
		req := httptest.NewRequest(http.MethodGet, "/meetings/attendance", nil)
		w := httptest.NewRecorder()
		handler.SubmitAttendance(w, req)

		Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
		resp := decode(w)
		Expect(resp.Success).To(BeFalse())
		Expect(resp.Message).To(Equal("Method not allowed. Use POST."))
	})

	It("should reject a malformed body with 400", func() {
		w := post(`{"meeting_id": `)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(decode(w).Message).To(Equal("meeting_id and user_id are required."))
	})

	It("should reject missing fields with 400", func() {
		w := post(`{"meeting_id": 1}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		resp := decode(w)
		Expect(resp.Success).To(BeFalse())
		Expect(resp.Message).To(Equal("meeting_id and user_id are required."))
	})

	It("should return 404 for a nonexistent meeting", func() {
		w := post(`{"meeting_id": 999, "user_id": 5}`)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(decode(w).Message).To(Equal("Rapat tidak ditemukan."))
	})

	It("should return 403 for a non-participant", func() {
		w := post(`{"meeting_id": 1, "user_id": 77}`)

		Expect(w.Code).To(Equal(http.StatusForbidden))
		Expect(decode(w).Message).To(Equal("Anda bukan peserta rapat ini."))
	})

	It("should record attendance and echo the participant row id", func() {
		w := post(`{"meeting_id": 1, "user_id": 5, "attended_at": "2026-02-06T16:45:00+07:00"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp.Success).To(BeTrue())
		Expect(resp.Message).To(Equal(`Absensi berhasil dicatat untuk rapat "Rapat Wali Kelas"!`))

		data := resp.Data.(map[string]interface{})
		Expect(data["attendance_id"]).To(BeNumerically("==", participantID))
		Expect(data["meeting_id"]).To(BeNumerically("==", meetingID))
		Expect(data["user_id"]).To(BeNumerically("==", 5))
		Expect(data["attended_at"]).To(Equal("2026-02-06 16:45:00"))

		var stored meetingDatamodel.Participant
		Expect(db.First(&stored, participantID).Error).NotTo(HaveOccurred())
		Expect(stored.Status).To(Equal("present"))
		Expect(stored.AttendanceTime).NotTo(BeNil())
	})

	It("should reject a duplicate submission with 409 and keep the stored time", func() {
		first := post(`{"meeting_id": 1, "user_id": 5, "attended_at": "2026-02-06T16:45:00+07:00"}`)
		Expect(first.Code).To(Equal(http.StatusOK))

		var before meetingDatamodel.Participant
		Expect(db.First(&before, participantID).Error).NotTo(HaveOccurred())

		second := post(`{"meeting_id": 1, "user_id": 5, "attended_at": "2026-02-07T08:00:00+07:00"}`)
		Expect(second.Code).To(Equal(http.StatusConflict))
		resp := decode(second)
		Expect(resp.Success).To(BeFalse())
		Expect(resp.Message).To(Equal("Anda sudah melakukan absensi untuk rapat ini."))

		var after meetingDatamodel.Participant
		Expect(db.First(&after, participantID).Error).NotTo(HaveOccurred())
		Expect(after.AttendanceTime.Equal(*before.AttendanceTime)).To(BeTrue())
	})
})
