package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/waitlist-service/internal/domain/dto"
	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/i18n"
	"github.com/guttosm/waitlist-service/internal/service"
)

// SeatingHandler serves stateless seating plans.
type SeatingHandler struct {
	seating service.SeatingService
}

// NewSeatingHandler creates a new SeatingHandler.
func NewSeatingHandler(seating service.SeatingService) *SeatingHandler {
	return &SeatingHandler{seating: seating}
}

// Plan handles POST /api/seating/plan requests.
//
// @Summary      Compute a seating plan
// @Description  Plans the supplied parties against the supplied tables, or the configured dining room when tables are omitted. Nothing is stored.
// @Tags         Seating
// @Accept       json
// @Produce      json
// @Param        request body dto.PlanRequest true "Parties and tables"
// @Success      200 {object} dto.SuccessResponse{data=model.PlanResult} "Seating plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid parties or tables"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/seating/plan [post]
func (h *SeatingHandler) Plan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.PlanRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	var tables []model.Table
	if req.Tables != nil {
		tables = dto.ToTables(req.Tables)
	}

	result, err := h.seating.Plan(req.Parties, tables)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(result)
}

// Tables handles GET /api/seating/tables requests.
//
// @Summary      List configured tables
// @Tags         Seating
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Table} "Configured dining room"
// @Router       /api/seating/tables [get]
func (h *SeatingHandler) Tables(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.seating.Tables())
}
