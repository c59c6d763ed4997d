package service

import (
	"errors"
	"sort"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"phillymounting/internal/db"
	"phillymounting/internal/entities"
	"phillymounting/internal/repository"
)

type fakeBookingStore struct {
	bookings    map[string]*db.Booking
	clock       time.Time
	failWith    error
	updateCalls int
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{
		bookings: map[string]*db.Booking{},
		clock:    time.Now().UTC(),
	}
}

func (f *fakeBookingStore) tick() time.Time {
	f.clock = f.clock.Add(time.Millisecond)
	return f.clock
}

func (f *fakeBookingStore) CreateBooking(req *entities.BookingRequest) (*db.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	now := f.tick()
	b := &db.Booking{
		ID:             repository.NewID("booking"),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		ZipCode:        req.ZipCode,
		Date:           req.Date,
		TimeSlot:       req.TimeSlot,
		Services:       req.Services,
		EstimatedTotal: req.EstimatedTotal,
		Notes:          req.Notes,
		Status:         db.BookingStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.bookings[b.ID] = b
	return copyBooking(b), nil
}

func (f *fakeBookingStore) ListBookings() ([]db.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []db.Booking{}
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBookingStore) GetBookingByID(id string) (*db.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return copyBooking(b), nil
}

func (f *fakeBookingStore) UpdateBookingStatus(id, status string) (*db.Booking, error) {
	f.updateCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	b.Status = status
	b.UpdatedAt = f.tick()
	return copyBooking(b), nil
}

func (f *fakeBookingStore) ListConfirmedBookingsByDate(date string) ([]db.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []db.Booking{}
	for _, b := range f.bookings {
		if b.Status == db.BookingStatusConfirmed && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func copyBooking(b *db.Booking) *db.Booking {
	dup := *b
	return &dup
}

type fakeMessageStore struct {
	messages    map[string]*db.ContactMessage
	clock       time.Time
	failWith    error
	updateCalls int
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{
		messages: map[string]*db.ContactMessage{},
		clock:    time.Now().UTC(),
	}
}

func (f *fakeMessageStore) CreateContactMessage(req *entities.ContactMessageRequest) (*db.ContactMessage, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.clock = f.clock.Add(time.Millisecond)
	m := &db.ContactMessage{
		ID:        repository.NewID("msg"),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    db.MessageStatusNew,
		CreatedAt: f.clock,
		UpdatedAt: f.clock,
	}
	f.messages[m.ID] = m
	dup := *m
	return &dup, nil
}

func (f *fakeMessageStore) ListContactMessages() ([]db.ContactMessage, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []db.ContactMessage{}
	for _, m := range f.messages {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeMessageStore) UpdateMessageStatus(id, status string) (*db.ContactMessage, error) {
	f.updateCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	m, ok := f.messages[id]
	if !ok {
		return nil, nil
	}
	m.Status = status
	f.clock = f.clock.Add(time.Millisecond)
	m.UpdatedAt = f.clock
	dup := *m
	return &dup, nil
}

type fakeMailSender struct {
	sent     []*mail.SGMailV3
	failWith error
}

func (f *fakeMailSender) Send(message *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, message)
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &rest.Response{StatusCode: 202}, nil
}

func (f *fakeMailSender) recipients() []string {
	var out []string
	for _, m := range f.sent {
		out = append(out, m.Personalizations[0].To[0].Address)
	}
	return out
}

func (f *fakeMailSender) plainBody(i int) string {
	return f.sent[i].Content[0].Value
}

type fakeSMSSender struct {
	sent     []*openapi.CreateMessageParams
	failWith error
}

func (f *fakeSMSSender) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.sent = append(f.sent, params)
	if f.failWith != nil {
		return nil, f.failWith
	}
	sid := "SM-test"
	return &openapi.ApiV2010Message{Sid: &sid}, nil
}

var errStoreDown = errors.New("connection refused")
