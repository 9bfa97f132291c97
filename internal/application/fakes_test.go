package application

import (
	"context"
	"sort"
	"time"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
)

// In-memory repository fakes. They mimic the conditional-insert and
// transactional semantics of the postgres implementations closely enough to
// exercise the services.

type fakeEventRepo struct {
	events map[int64]*entities.Event
	nextID int64

	findErr error // overrides FindByID when set
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[int64]*entities.Event{}}
}

func (f *fakeEventRepo) add(e entities.Event) *entities.Event {
	if e.ID == 0 {
		f.nextID++
		e.ID = f.nextID
	} else if e.ID > f.nextID {
		f.nextID = e.ID
	}
	f.events[e.ID] = &e
	return &e
}

func (f *fakeEventRepo) Create(_ context.Context, event *entities.Event) error {
	f.nextID++
	event.ID = f.nextID
	stored := *event
	f.events[event.ID] = &stored
	return nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id int64) (*entities.Event, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventRepo) Find(_ context.Context, filter entities.EventFilter) ([]entities.Event, error) {
	var ids []int64
	for id := range f.events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []entities.Event
	for _, id := range ids {
		e := f.events[id]
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Location != "" && e.Location != filter.Location {
			continue
		}
		out = append(out, *e)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, event *entities.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	stored := *event
	f.events[event.ID] = &stored
	return nil
}

func (f *fakeEventRepo) MarkEndedCompleted(_ context.Context, now time.Time) (int64, error) {
	var updated int64
	for _, e := range f.events {
		if e.EndTime.IsZero() || !e.EndTime.Before(now) {
			continue
		}
		if e.Status == domain.EventStatusCompleted || e.Status == domain.EventStatusCanceled {
			continue
		}
		e.Status = domain.EventStatusCompleted
		updated++
	}
	return updated, nil
}

type fakeAttendeeRepo struct {
	events    *fakeEventRepo
	attendees map[int64]*entities.Attendee
	nextID    int64

	insertErr     error // overrides Insert when set
	findErr       error // overrides FindByID when set
	checkInAllErr error // overrides CheckInAll when set

	updateCalls     int
	checkInAllCalls int
}

func newFakeAttendeeRepo(events *fakeEventRepo) *fakeAttendeeRepo {
	return &fakeAttendeeRepo{
		events:    events,
		attendees: map[int64]*entities.Attendee{},
	}
}

func (f *fakeAttendeeRepo) add(a entities.Attendee) *entities.Attendee {
	if a.ID == 0 {
		f.nextID++
		a.ID = f.nextID
	} else if a.ID > f.nextID {
		f.nextID = a.ID
	}
	f.attendees[a.ID] = &a
	return &a
}

func (f *fakeAttendeeRepo) Insert(ctx context.Context, attendee *entities.Attendee) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, existing := range f.attendees {
		if existing.Email == attendee.Email {
			return domain.ErrDuplicateEmail
		}
	}
	event, ok := f.events.events[attendee.EventID]
	if !ok || event.Status != domain.EventStatusScheduled {
		return domain.ErrEventFull
	}
	count, _ := f.CountByEventID(ctx, attendee.EventID)
	if count >= int64(event.MaxAttendees) {
		return domain.ErrEventFull
	}
	f.nextID++
	attendee.ID = f.nextID
	attendee.CheckInStatus = false
	stored := *attendee
	f.attendees[attendee.ID] = &stored
	return nil
}

func (f *fakeAttendeeRepo) FindByID(_ context.Context, id int64) (*entities.Attendee, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	a, ok := f.attendees[id]
	if !ok {
		return nil, domain.ErrAttendeeNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAttendeeRepo) FindByEventID(_ context.Context, eventID int64) ([]entities.Attendee, error) {
	var ids []int64
	for id, a := range f.attendees {
		if a.EventID == eventID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []entities.Attendee
	for _, id := range ids {
		out = append(out, *f.attendees[id])
	}
	return out, nil
}

func (f *fakeAttendeeRepo) UpdateCheckIn(_ context.Context, attendee *entities.Attendee) error {
	f.updateCalls++
	stored, ok := f.attendees[attendee.ID]
	if !ok {
		return domain.ErrAttendeeNotFound
	}
	stored.CheckInStatus = attendee.CheckInStatus
	return nil
}

func (f *fakeAttendeeRepo) CheckInAll(_ context.Context, ids []int64) ([]entities.Attendee, error) {
	f.checkInAllCalls++
	if f.checkInAllErr != nil {
		return nil, f.checkInAllErr
	}
	var out []entities.Attendee
	for _, id := range ids {
		a, ok := f.attendees[id]
		if !ok || a.CheckInStatus {
			continue
		}
		a.CheckInStatus = true
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAttendeeRepo) CountByEventID(_ context.Context, eventID int64) (int64, error) {
	var count int64
	for _, a := range f.attendees {
		if a.EventID == eventID {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	users  map[int64]*entities.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entities.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
		if existing.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
