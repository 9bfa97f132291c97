package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
)

const dateLayout = "2006-01-02"

func (h *Handler) createEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	event := &entities.Event{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		MaxAttendees: req.MaxAttendees,
		Status:       req.Status,
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if err := h.events.CreateEvent(c.Request.Context(), event); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEventResponse(event))
}

func (h *Handler) updateEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	patch := entities.EventPatch{
		Name:         req.Name,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     req.Location,
		MaxAttendees: req.MaxAttendees,
		Status:       req.Status,
	}
	event, err := h.events.UpdateEvent(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(event))
}

func (h *Handler) listEvents(c *gin.Context) {
	filter := entities.EventFilter{
		Status:   c.Query("status"),
		Location: c.Query("location"),
	}
	if filter.Status != "" && !domain.ValidEventStatus(filter.Status) {
		h.failKey(c, http.StatusBadRequest, "error.invalid_status")
		return
	}
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.failKey(c, http.StatusBadRequest, "error.invalid_date")
			return
		}
		filter.StartDate = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.failKey(c, http.StatusBadRequest, "error.invalid_date")
			return
		}
		filter.EndDate = parsed
	}
	if raw := c.Query("skip"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			filter.Offset = parsed
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			filter.Limit = parsed
		}
	}

	events, err := h.events.ListEvents(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(events) == 0 {
		h.fail(c, domain.ErrNoEventsFound)
		return
	}
	out := make([]eventResponse, len(events))
	for i := range events {
		out[i] = toEventResponse(&events[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, domain.ErrEventNotFound)
		return
	}
	event, err := h.events.GetEventByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(event))
}
