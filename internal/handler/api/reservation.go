package api

import (
	"fmt"
	"net/http"
	"time"

	reqdto "campsite-reservation/internal/handler/dto/request"
	resdto "campsite-reservation/internal/handler/dto/response"
	"campsite-reservation/internal/handler/httperr"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/pkg/ptr"
	"campsite-reservation/internal/usecase/commands"
	"campsite-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const reservationsPath = "/api/v1/reservations"

type ReservationHandler struct {
	cmds         commands.ReservationCommands
	q            queries.ReservationQueries
	availability queries.AvailabilityQueries
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	q queries.ReservationQueries,
	availability queries.AvailabilityQueries,
) *ReservationHandler {
	return &ReservationHandler{
		cmds:         cmds,
		q:            q,
		availability: availability,
	}
}

// @Summary Available dates
// @Description List the free days of a window. Missing bounds default to the bookable horizon; an early fromDate or a late toDate is clamped onto it.
// @Tags reservations
// @Produce json
// @Param fromDate query string false "First day (yyyy-MM-dd)"
// @Param toDate query string false "Last day, inclusive (yyyy-MM-dd)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /v1/reservations [get]
func (h *ReservationHandler) Availability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	from, err := parseOptionalDate(query.FromDate)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid fromDate", dateFormatDetail)
		return
	}
	to, err := parseOptionalDate(query.ToDate)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid toDate", dateFormatDetail)
		return
	}

	view, err := h.availability.AvailableDatesInWindow(c.Request.Context(), from, to)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Create reservation
// @Description Reserve the campsite for a stay
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Header 201 {string} Location "URL of the new reservation"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /v1/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%s", reservationsPath, view.ID))
	h.respond(c, http.StatusCreated, view)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /v1/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Update reservation
// @Description Change the guest details or the dates of an active reservation. Omitted fields keep their value.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 405 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /v1/reservations/{id} [patch]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Cancel reservation
// @Description Cancel a reservation and release its days. Cancelling twice returns the cancelled reservation.
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /v1/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

func (h *ReservationHandler) respond(c *gin.Context, status int, view *queries.ReservationView) {
	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

var dateFormatDetail = validationDetail{
	Kind:    "invalid_format",
	Message: "Dates must have valid format: yyyy-MM-dd",
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	day, err := calendar.Parse(raw)
	if err != nil {
		return nil, err
	}
	return ptr.Of(day), nil
}
