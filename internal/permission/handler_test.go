package permission_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	employeeDatamodel "github.com/sekolahapp/attendance-management/internal/core/datamodel/employee"
	permDatamodel "github.com/sekolahapp/attendance-management/internal/core/datamodel/permission"
	"github.com/sekolahapp/attendance-management/internal/permission"
	permissionPostgres "github.com/sekolahapp/attendance-management/internal/permission/postgres"
	"github.com/sekolahapp/attendance-management/internal/transport"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Permission Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    permission.RepositoryAPI
		service *permission.Service
		handler *permission.Handler
		slogger *slog.Logger
	)

	get := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		handler.GetUserPermissions(w, req)
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

		err = db.AutoMigrate(
			&employeeDatamodel.Employee{},
			&employeeDatamodel.Position{},
			&permDatamodel.UserPermission{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = permissionPostgres.NewPermissionRepository(db)
		service = permission.NewService(repo, slogger)
		handler = &permission.Handler{
			BaseHandler: &transport.BaseHandler{Logger: slogger},
			Service:     service,
		}

		guru := employeeDatamodel.Position{
			Name:             "Guru Tahfidz",
			CanCreateMeeting: 1,
			CanAccessTahfidz: 1,
		}
		Expect(db.Create(&guru).Error).NotTo(HaveOccurred())

		emp := employeeDatamodel.Employee{
			UserID:     7,
			Name:       "Siti Rahma",
			PositionID: &guru.ID,
		}
		Expect(db.Create(&emp).Error).NotTo(HaveOccurred())

		override := permDatamodel.UserPermission{
			UserID:         123,
			PermissionName: "is_koordinator",
			IsGranted:      1,
		}
		Expect(db.Create(&override).Error).NotTo(HaveOccurred())
	})

	It("should resolve a user with an override row from the override", func() {
		w := get("/permissions?user_id=123")

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp.Success).To(BeTrue())

		data := resp.Data.(map[string]interface{})
		Expect(data["user_id"]).To(BeNumerically("==", 123))
		Expect(data["source"]).To(Equal("user_override"))

		perms := data["permissions"].(map[string]interface{})
		Expect(perms).To(HaveLen(4))
		Expect(perms["is_koordinator"]).To(BeNumerically("==", 1))
		Expect(perms["can_create_meeting"]).To(BeNumerically("==", 0))
		Expect(perms["can_approve_permits"]).To(BeNumerically("==", 0))
		Expect(perms["can_access_tahfidz"]).To(BeNumerically("==", 0))
	})

	It("should resolve a user without overrides from position defaults", func() {
		w := get("/permissions?user_id=7")

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp.Success).To(BeTrue())

		data := resp.Data.(map[string]interface{})
		Expect(data["source"]).To(Equal("position_default"))

		perms := data["permissions"].(map[string]interface{})
		Expect(perms["can_create_meeting"]).To(BeNumerically("==", 1))
		Expect(perms["can_access_tahfidz"]).To(BeNumerically("==", 1))
		Expect(perms["can_approve_permits"]).To(BeNumerically("==", 0))
		Expect(perms["is_koordinator"]).To(BeNumerically("==", 0))
	})

	It("should resolve an unknown user to the all-zero set", func() {
		w := get("/permissions?user_id=9999")

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp.Success).To(BeTrue())

		data := resp.Data.(map[string]interface{})
		Expect(data["source"]).To(Equal("position_default"))

		perms := data["permissions"].(map[string]interface{})
		Expect(perms).To(HaveLen(4))
		for _, v := range perms {
			Expect(v).To(BeNumerically("==", 0))
		}
	})

	It("should reject a request without user_id before querying", func() {
		w := get("/permissions")

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		resp := decode(w)
		Expect(resp.Success).To(BeFalse())
		Expect(resp.Message).To(Equal("Parameter user_id diperlukan"))
	})

	It("should reject a non-integer user_id", func() {
		w := get("/permissions?user_id=abc")

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		resp := decode(w)
		Expect(resp.Success).To(BeFalse())
		Expect(resp.Message).To(Equal("Parameter user_id diperlukan"))
	})
})
