package service

import (
	"phillymounting/internal/db"
	"phillymounting/internal/entities"
	httperrors "phillymounting/internal/errors"
	"phillymounting/internal/repository"
)

// BookingService orchestrates the booking lifecycle: validate, persist, then
// attempt notification. The notification attempt is awaited but can never
// fail the operation.
type BookingService struct {
	store  repository.BookingStore
	sender *SenderService
}

func NewBookingService(store repository.BookingStore, sender *SenderService) *BookingService {
	return &BookingService{store: store, sender: sender}
}

func (s *BookingService) SubmitBooking(req *entities.BookingRequest) (*db.Booking, error) {
	if field, missing := req.MissingField(); missing {
		return nil, httperrors.MissingField(field)
	}

	booking, err := s.store.CreateBooking(req)
	if err != nil {
		return nil, httperrors.Storage(err)
	}

	s.sender.SendBookingCreated(booking)
	return booking, nil
}

func (s *BookingService) ListBookings() ([]db.Booking, error) {
	bookings, err := s.store.ListBookings()
	if err != nil {
		return nil, httperrors.Storage(err)
	}
	return bookings, nil
}

func (s *BookingService) ChangeBookingStatus(id, status string) (*db.Booking, error) {
	if !db.ValidBookingStatus(status) {
		return nil, httperrors.InvalidStatus(status)
	}

	current, err := s.store.GetBookingByID(id)
	if err != nil {
		return nil, httperrors.Storage(err)
	}
	if current == nil {
		return nil, httperrors.NotFound("Booking not found")
	}
	previousStatus := current.Status

	updated, err := s.store.UpdateBookingStatus(id, status)
	if err != nil {
		return nil, httperrors.Storage(err)
	}
	if updated == nil {
		return nil, httperrors.NotFound("Booking not found")
	}

	s.sender.SendBookingStatusChanged(updated, previousStatus)
	return updated, nil
}
