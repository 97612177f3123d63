package eventstore

import (
	"net/http"
	"strconv"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	store  Store
	logger *zap.Logger
}

func NewHandler(store Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("eventstore.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("eventstore.handler")
	}
	return &Handler{store: store, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("event store request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.FromHTTPError(c, httpErr)
}

// History lists every event of an employee, oldest first.
func (h *Handler) History(c *gin.Context) {
	employeeID := c.Param("id")

	records, err := h.store.History(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	for i := range records {
		if records[i].Payload != nil {
			records[i].Payload = MaskPayload(records[i].Payload)
		}
	}
	response.Success(c, http.StatusOK, records, nil)
}

// Replay rebuilds the employee, optionally stopping at ?up_to=N.
func (h *Handler) Replay(c *gin.Context) {
	employeeID := c.Param("id")

	var upTo *int64
	if raw := c.Query("up_to"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", "up_to must be an integer")
			return
		}
		upTo = &n
	}

	state, err := h.store.Replay(c.Request.Context(), employeeID, upTo)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, MaskState(state), nil)
}
