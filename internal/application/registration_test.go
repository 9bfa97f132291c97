package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
)

func newRegistrationFixture() (*RegistrationService, *fakeEventRepo, *fakeAttendeeRepo) {
	events := newFakeEventRepo()
	attendees := newFakeAttendeeRepo(events)
	guard := NewCapacityGuard(events, attendees)
	return NewRegistrationService(attendees, guard), events, attendees
}

func registration(eventID int64, email string) input.RegisterAttendee {
	return input.RegisterAttendee{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       email,
		PhoneNumber: "555-0100",
		EventID:     eventID,
	}
}

func TestRegisterSucceedsWhileScheduledAndBelowCapacity(t *testing.T) {
	svc, events, attendees := newRegistrationFixture()
	events.add(entities.Event{ID: 1, Name: "GopherCon", Status: domain.EventStatusScheduled, MaxAttendees: 3})

	attendee, err := svc.Register(context.Background(), registration(1, "ada@example.com"))

	require.NoError(t, err)
	require.NotZero(t, attendee.ID)
	require.False(t, attendee.CheckInStatus)
	require.Equal(t, int64(1), attendee.EventID)
	require.Len(t, attendees.attendees, 1)
}

func TestRegisterRejectsNonScheduledEventRegardlessOfCount(t *testing.T) {
	svc, events, _ := newRegistrationFixture()
	for i, status := range []string{
		domain.EventStatusOngoing,
		domain.EventStatusCompleted,
		domain.EventStatusCanceled,
	} {
		id := int64(i + 1)
		events.add(entities.Event{ID: id, Status: status, MaxAttendees: 100})

		_, err := svc.Register(context.Background(), registration(id, "a@example.com"))

		require.ErrorIs(t, err, domain.ErrEventNotAvailable, "status %s", status)
	}
}

func TestRegisterRejectsUnknownEvent(t *testing.T) {
	svc, _, attendees := newRegistrationFixture()

	_, err := svc.Register(context.Background(), registration(42, "a@example.com"))

	require.ErrorIs(t, err, domain.ErrEventNotAvailable)
	require.Empty(t, attendees.attendees)
}

func TestRegisterSurfacesStoreFailure(t *testing.T) {
	// An event lookup failure is not "event unknown": the caller must see an
	// internal error, not a registration rejection.
	svc, events, attendees := newRegistrationFixture()
	events.findErr = errors.New("connection refused")

	_, err := svc.Register(context.Background(), registration(1, "a@example.com"))

	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrEventNotAvailable)
	require.Empty(t, attendees.attendees)
}

func TestRegisterRejectsFullEvent(t *testing.T) {
	svc, events, attendees := newRegistrationFixture()
	events.add(entities.Event{ID: 1, Status: domain.EventStatusScheduled, MaxAttendees: 1})
	attendees.add(entities.Attendee{EventID: 1, Email: "first@example.com"})

	_, err := svc.Register(context.Background(), registration(1, "second@example.com"))

	require.ErrorIs(t, err, domain.ErrEventFull)
	require.Len(t, attendees.attendees, 1)
}

func TestRegisterCapacityScenario(t *testing.T) {
	svc, events, _ := newRegistrationFixture()
	events.add(entities.Event{ID: 1, Status: domain.EventStatusScheduled, MaxAttendees: 2})

	_, err := svc.Register(context.Background(), registration(1, "one@example.com"))
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), registration(1, "two@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registration(1, "three@example.com"))
	require.ErrorIs(t, err, domain.ErrEventFull)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, events, attendees := newRegistrationFixture()
	events.add(entities.Event{ID: 1, Status: domain.EventStatusScheduled, MaxAttendees: 10})

	_, err := svc.Register(context.Background(), registration(1, "ada@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registration(1, "ada@example.com"))
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	require.Len(t, attendees.attendees, 1)
}

func TestRegisterReclassifiesLostLastSeatRace(t *testing.T) {
	// The guard sees a free seat but the conditional insert loses the race:
	// the service reports EventFull after re-running the guard.
	svc, events, attendees := newRegistrationFixture()
	events.add(entities.Event{ID: 1, Status: domain.EventStatusScheduled, MaxAttendees: 5})
	attendees.insertErr = domain.ErrEventFull

	_, err := svc.Register(context.Background(), registration(1, "ada@example.com"))

	require.ErrorIs(t, err, domain.ErrEventFull)
}

func TestListByEventFiltersByCheckInStatus(t *testing.T) {
	svc, events, attendees := newRegistrationFixture()
	events.add(entities.Event{ID: 1, Status: domain.EventStatusScheduled, MaxAttendees: 10})
	attendees.add(entities.Attendee{EventID: 1, Email: "in@example.com", CheckInStatus: true})
	attendees.add(entities.Attendee{EventID: 1, Email: "out@example.com"})
	attendees.add(entities.Attendee{EventID: 2, Email: "other@example.com"})

	all, err := svc.ListByEvent(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	checkedIn := true
	in, err := svc.ListByEvent(context.Background(), 1, &checkedIn)
	require.NoError(t, err)
	require.Len(t, in, 1)
	require.Equal(t, "in@example.com", in[0].Email)

	notCheckedIn := false
	out, err := svc.ListByEvent(context.Background(), 1, &notCheckedIn)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "out@example.com", out[0].Email)
}
