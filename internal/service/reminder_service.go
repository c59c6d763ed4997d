package service

import (
	"fmt"
	"log"
	"time"

	"phillymounting/internal/repository"
)

// ReminderService runs from the daily cron job and emails customers whose
// confirmed appointment is tomorrow. It never mutates booking state.
type ReminderService struct {
	store  repository.BookingStore
	sender *SenderService
}

func NewReminderService(store repository.BookingStore, sender *SenderService) *ReminderService {
	return &ReminderService{store: store, sender: sender}
}

func (s *ReminderService) SendUpcomingReminders() error {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	log.Printf("Cron Job: checking confirmed bookings for %s", tomorrow)

	bookings, err := s.store.ListConfirmedBookingsByDate(tomorrow)
	if err != nil {
		return fmt.Errorf("cron job: failed to list confirmed bookings for %s: %w", tomorrow, err)
	}
	if len(bookings) == 0 {
		log.Println("Cron Job: no confirmed bookings for tomorrow")
		return nil
	}

	log.Printf("Cron Job: sending %d appointment reminders", len(bookings))
	for i := range bookings {
		s.sender.SendBookingReminder(&bookings[i])
	}
	return nil
}
