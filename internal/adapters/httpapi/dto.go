package httpapi

import (
	"time"

	"eventdesk/internal/domain/entities"
)

type registerAttendeeRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	EventID     int64  `json:"event_id" binding:"required"`
}

type attendeeResponse struct {
	AttendeeID    int64  `json:"attendee_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	CheckInStatus bool   `json:"check_in_status"`
	EventID       int64  `json:"event_id"`
}

func toAttendeeResponse(a *entities.Attendee) attendeeResponse {
	return attendeeResponse{
		AttendeeID:    a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		Email:         a.Email,
		PhoneNumber:   a.PhoneNumber,
		CheckInStatus: a.CheckInStatus,
		EventID:       a.EventID,
	}
}

func toAttendeeResponses(attendees []entities.Attendee) []attendeeResponse {
	out := make([]attendeeResponse, len(attendees))
	for i := range attendees {
		out[i] = toAttendeeResponse(&attendees[i])
	}
	return out
}

type createEventRequest struct {
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	Location     string     `json:"location" binding:"required"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	MaxAttendees int        `json:"max_attendees" binding:"required,gt=0"`
	Status       string     `json:"status" binding:"omitempty,oneof=scheduled ongoing completed canceled"`
}

type updateEventRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Location     *string    `json:"location"`
	MaxAttendees *int       `json:"max_attendees" binding:"omitempty,gt=0"`
	Status       *string    `json:"status" binding:"omitempty,oneof=scheduled ongoing completed canceled"`
}

type eventResponse struct {
	EventID      int64      `json:"event_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Location     string     `json:"location"`
	MaxAttendees int        `json:"max_attendees"`
	Status       string     `json:"status"`
}

func toEventResponse(e *entities.Event) eventResponse {
	resp := eventResponse{
		EventID:      e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Location:     e.Location,
		MaxAttendees: e.MaxAttendees,
		Status:       e.Status,
	}
	if !e.StartTime.IsZero() {
		t := e.StartTime
		resp.StartTime = &t
	}
	if !e.EndTime.IsZero() {
		t := e.EndTime
		resp.EndTime = &t
	}
	return resp
}

type registerUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

// identifier returns the login identifier, preferring email over username.
func (r loginRequest) identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
