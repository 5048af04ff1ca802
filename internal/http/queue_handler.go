package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/waitlist-service/internal/domain/dto"
	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/i18n"
	"github.com/guttosm/waitlist-service/internal/service"
)

// QueueHandler provides HTTP handlers for the waitlist routes.
type QueueHandler struct {
	queue   service.QueueService
	seating service.SeatingService
}

// NewQueueHandler creates a new QueueHandler.
func NewQueueHandler(queue service.QueueService, seating service.SeatingService) *QueueHandler {
	return &QueueHandler{
		queue:   queue,
		seating: seating,
	}
}

// Join handles POST /api/queue requests.
//
// @Summary      Join the waitlist
// @Description  Adds a party to the end of the queue with status waiting and returns it with its wait estimate.
// @Tags         Queue
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateEntryRequest true "Party details"
// @Success      201 {object} dto.SuccessResponse{data=model.Entry} "Party added"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - store not configured"
// @Router       /api/queue [post]
func (h *QueueHandler) Join(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(builder, err)
		return
	}

	entry, err := h.queue.Join(c.Request.Context(), req.Name, req.PartySize, req.PhoneNumber)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessCreated(entry)
}

// List handles GET /api/queue requests.
//
// @Summary      List the waitlist
// @Description  Returns queue entries ordered by arrival. Waiting entries carry their estimated wait.
// @Tags         Queue
// @Produce      json
// @Param        status query string false "Filter by status" Enums(waiting, seated, no_show, cancelled)
// @Param        search query string false "Case-insensitive match on name or phone number"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Entry} "Queue entries"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown status"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/queue [get]
func (h *QueueHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	filter := model.EntryFilter{
		Status: model.Status(strings.TrimSpace(c.Query("status"))),
		Search: strings.TrimSpace(c.Query("search")),
	}

	entries, err := h.queue.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(entries)
}

// Get handles GET /api/queue/:id requests.
//
// @Summary      Get a queue entry
// @Tags         Queue
// @Produce      json
// @Param        id path int true "Entry id"
// @Success      200 {object} dto.SuccessResponse{data=model.Entry} "Queue entry"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid id"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Entry not found"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/queue/{id} [get]
func (h *QueueHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := entryID(c, builder)
	if !ok {
		return
	}

	entry, err := h.queue.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(entry)
}

// UpdateStatus handles PATCH /api/queue/:id requests.
//
// @Summary      Change a queue entry status
// @Description  Moves an entry to waiting, seated, no_show or cancelled. Subscribers of the live stream receive an updated event.
// @Tags         Queue
// @Accept       json
// @Produce      json
// @Param        id path int true "Entry id"
// @Param        request body dto.UpdateStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse{data=model.Entry} "Updated entry"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid id or status"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Entry not found"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/queue/{id} [patch]
func (h *QueueHandler) UpdateStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := entryID(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateStatusRequest](c)
	if err != nil {
		var fieldErr *dto.ValidationError
		if errors.As(err, &fieldErr) {
			writeServiceError(builder, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	entry, err := h.queue.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(entry)
}

// Delete handles DELETE /api/queue/:id requests.
//
// @Summary      Remove a queue entry
// @Tags         Queue
// @Param        id path int true "Entry id"
// @Success      204 "Entry removed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid id"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Entry not found"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/queue/{id} [delete]
func (h *QueueHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := entryID(c, builder)
	if !ok {
		return
	}

	if err := h.queue.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.NoContent()
}

// Optimize handles POST /api/queue/optimize requests.
//
// @Summary      Plan seating for the waitlist
// @Description  Runs First-Fit-Decreasing with best-fit tie-break over the waiting parties. The body may supply tables; otherwise the configured dining room is used. With apply=true every assigned party is marked seated.
// @Tags         Seating
// @Accept       json
// @Produce      json
// @Param        apply query bool false "Seat the assigned parties"
// @Param        request body dto.OptimizeRequest false "Tables to plan against"
// @Success      200 {object} dto.SuccessResponse{data=model.PlanResult} "Seating plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid tables"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/queue/optimize [post]
func (h *QueueHandler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	apply, err := strconv.ParseBool(c.DefaultQuery("apply", "false"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	var tables []model.Table
	if req.Tables != nil {
		tables = dto.ToTables(req.Tables)
	}

	result, err := h.seating.Optimize(c.Request.Context(), tables, apply)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(result)
}

// entryID parses the :id path parameter, writing a 400 when it is not a positive integer.
func entryID(c *gin.Context, builder *ResponseBuilder) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationID, err)
		return 0, false
	}
	return id, true
}
