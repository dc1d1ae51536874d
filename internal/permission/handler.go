package permission

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sekolahapp/attendance-management/internal"
	"github.com/sekolahapp/attendance-management/internal/transport"
	"github.com/sekolahapp/attendance-management/pkg/logger"
)

type ServiceAPI interface {
	ResolvePermissions(userID int64) (*Resolution, error)
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

// GetUserPermissions handles GET /permissions?user_id=<int>
func (h *Handler) GetUserPermissions(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get("user_id")
	if userIDStr == "" {
		h.WriteError(w, internal.ErrMissingUserID.StatusCode, internal.ErrMissingUserID.Message)
		return
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		h.Logger.Warn("GetUserPermissions: invalid user_id", "user_id", userIDStr)
		h.WriteError(w, internal.ErrMissingUserID.StatusCode, internal.ErrMissingUserID.Message)
		return
	}

	resolution, err := h.Service.ResolvePermissions(userID)
	if err != nil {
		h.Logger.Error("GetUserPermissions: service error", "error", err, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.APIResponse{
		Success: true,
		Data:    resolution,
	})
}
