package httpapi

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventdesk/internal/domain"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/roster"
)

func (h *Handler) registerAttendee(c *gin.Context) {
	var req registerAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	attendee, err := h.registration.Register(c.Request.Context(), input.RegisterAttendee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		EventID:     req.EventID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAttendeeResponse(attendee))
}

func (h *Handler) checkInAttendee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, domain.ErrAttendeeNotFound)
		return
	}
	attendee, err := h.checkIn.CheckIn(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toAttendeeResponse(attendee))
}

func (h *Handler) listAttendees(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("event_id"), 10, 64)
	if err != nil {
		h.fail(c, domain.ErrNoAttendeesFound)
		return
	}
	var checkedIn *bool
	if raw := c.Query("check_in_status"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.badRequest(c, err)
			return
		}
		checkedIn = &parsed
	}
	attendees, err := h.registration.ListByEvent(c.Request.Context(), eventID, checkedIn)
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(attendees) == 0 {
		h.fail(c, domain.ErrNoAttendeesFound)
		return
	}
	c.JSON(http.StatusOK, toAttendeeResponses(attendees))
}

// bulkCheckIn accepts an uploaded roster file and checks in every attendee
// it lists. Rows that do not resolve to a known, not-yet-checked-in attendee
// are skipped without failing the batch.
func (h *Handler) bulkCheckIn(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.failKey(c, http.StatusBadRequest, "error.no_file")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		h.fail(c, err)
		return
	}

	ids, err := roster.Parse(fileHeader.Filename, data)
	if err != nil {
		h.fail(c, err)
		return
	}
	updated, err := h.checkIn.BulkCheckIn(c.Request.Context(), ids)
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(updated) == 0 {
		h.fail(c, domain.ErrNoValidAttendees)
		return
	}
	c.JSON(http.StatusOK, toAttendeeResponses(updated))
}
