package httpapi

import (
	"context"
	"errors"

	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
)

// Function-backed stubs for the input ports. Each test overrides only the
// methods it exercises; calling an unset method fails loudly.

var errStubNotSet = errors.New("stub method not set")

type stubEventUC struct {
	createFn func(ctx context.Context, event *entities.Event) error
	updateFn func(ctx context.Context, id int64, patch entities.EventPatch) (*entities.Event, error)
	getFn    func(ctx context.Context, id int64) (*entities.Event, error)
	listFn   func(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error)
}

func (s *stubEventUC) CreateEvent(ctx context.Context, event *entities.Event) error {
	if s.createFn == nil {
		return errStubNotSet
	}
	return s.createFn(ctx, event)
}

func (s *stubEventUC) UpdateEvent(ctx context.Context, id int64, patch entities.EventPatch) (*entities.Event, error) {
	if s.updateFn == nil {
		return nil, errStubNotSet
	}
	return s.updateFn(ctx, id, patch)
}

func (s *stubEventUC) GetEventByID(ctx context.Context, id int64) (*entities.Event, error) {
	if s.getFn == nil {
		return nil, errStubNotSet
	}
	return s.getFn(ctx, id)
}

func (s *stubEventUC) ListEvents(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error) {
	if s.listFn == nil {
		return nil, errStubNotSet
	}
	return s.listFn(ctx, filter)
}

type stubRegistrationUC struct {
	registerFn func(ctx context.Context, in input.RegisterAttendee) (*entities.Attendee, error)
	listFn     func(ctx context.Context, eventID int64, checkedIn *bool) ([]entities.Attendee, error)
}

func (s *stubRegistrationUC) Register(ctx context.Context, in input.RegisterAttendee) (*entities.Attendee, error) {
	if s.registerFn == nil {
		return nil, errStubNotSet
	}
	return s.registerFn(ctx, in)
}

func (s *stubRegistrationUC) ListByEvent(ctx context.Context, eventID int64, checkedIn *bool) ([]entities.Attendee, error) {
	if s.listFn == nil {
		return nil, errStubNotSet
	}
	return s.listFn(ctx, eventID, checkedIn)
}

type stubCheckInUC struct {
	checkInFn func(ctx context.Context, attendeeID int64) (*entities.Attendee, error)
	bulkFn    func(ctx context.Context, attendeeIDs []int64) ([]entities.Attendee, error)
}

func (s *stubCheckInUC) CheckIn(ctx context.Context, attendeeID int64) (*entities.Attendee, error) {
	if s.checkInFn == nil {
		return nil, errStubNotSet
	}
	return s.checkInFn(ctx, attendeeID)
}

func (s *stubCheckInUC) BulkCheckIn(ctx context.Context, attendeeIDs []int64) ([]entities.Attendee, error) {
	if s.bulkFn == nil {
		return nil, errStubNotSet
	}
	return s.bulkFn(ctx, attendeeIDs)
}

type stubAuthUC struct {
	registerFn func(ctx context.Context, username, email, password, role string) (*entities.User, error)
	loginFn    func(ctx context.Context, identifier, password string) (string, error)
}

func (s *stubAuthUC) RegisterUser(ctx context.Context, username, email, password, role string) (*entities.User, error) {
	if s.registerFn == nil {
		return nil, errStubNotSet
	}
	return s.registerFn(ctx, username, email, password, role)
}

func (s *stubAuthUC) Login(ctx context.Context, identifier, password string) (string, error) {
	if s.loginFn == nil {
		return "", errStubNotSet
	}
	return s.loginFn(ctx, identifier, password)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}
