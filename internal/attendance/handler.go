package attendance

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sekolahapp/attendance-management/internal"
	"github.com/sekolahapp/attendance-management/internal/transport"
	"github.com/sekolahapp/attendance-management/pkg/logger"
)

type ServiceAPI interface {
	RecordAttendance(dto *SubmitAttendanceDTO) (*Receipt, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// SubmitAttendance handles POST /meetings/attendance. The route is registered
// for all methods; OPTIONS preflights are answered by the CORS middleware
// before reaching here.
func (h *Handler) SubmitAttendance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed. Use POST.")
		return
	}

	var dto SubmitAttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		// a malformed body lands on the same rejection as missing fields
		h.Logger.Warn("SubmitAttendance: invalid request body", "error", err)
		h.WriteError(w, internal.ErrMissingFields.StatusCode, internal.ErrMissingFields.Message)
		return
	}

	receipt, err := h.Service.RecordAttendance(&dto)
	if err != nil {
		h.Logger.Error("SubmitAttendance: service error", "error", err,
			"meeting_id", dto.MeetingID, "user_id", dto.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, receipt.Message, receipt.Confirmation)
}
