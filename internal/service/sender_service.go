package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"phillymounting/internal/config"
	"phillymounting/internal/db"
	"phillymounting/internal/entities"
	"phillymounting/internal/templates"
)

// MailSender is the outbound email transport. *sendgrid.Client satisfies it.
type MailSender interface {
	Send(message *mail.SGMailV3) (*rest.Response, error)
}

// SMSSender is the outbound SMS transport. *openapi.ApiService satisfies it.
type SMSSender interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// SenderService attempts transactional emails and SMS for lifecycle events.
// No method here returns an error: a failed delivery is logged once with the
// recipient and record id, then dropped. With no transport configured every
// send degrades to a logged no-op.
type SenderService struct {
	mail MailSender
	sms  SMSSender

	adminEmail    string
	businessEmail string
	businessName  string
	fromNumber    string

	templates *template.Template
}

func NewSenderService(cfg config.Config, mailClient MailSender, smsClient SMSSender) *SenderService {
	return &SenderService{
		mail:          mailClient,
		sms:           smsClient,
		adminEmail:    cfg.AdminEmail,
		businessEmail: cfg.BusinessEmail,
		businessName:  cfg.BusinessName,
		fromNumber:    cfg.TwilioFromNumber,
		templates:     template.Must(template.ParseFS(templates.FS, "*.html")),
	}
}

// SendBookingCreated emails the customer a confirmation and the admin a
// notification. The two sends are independent: a failure of one does not
// block the other.
func (s *SenderService) SendBookingCreated(booking *db.Booking) {
	data := s.bookingEmailData(booking)

	plainCustomer := fmt.Sprintf(
		"Hi %s,\n\nThank you for choosing %s! Your appointment has been received.\n\n"+
			"Date: %s\nTime: %s\nLocation: %s, %s, %s\n\n"+
			"If you need to reschedule or have any questions, contact us at %s.\n\n"+
			"Thank you for your business!\n%s",
		booking.Name, s.businessName,
		booking.Date, booking.TimeSlot, booking.Address, booking.City, booking.ZipCode,
		s.businessEmail, s.businessName,
	)
	s.sendEmail(booking.Name, booking.Email,
		"Your TV Mounting Appointment is Confirmed",
		plainCustomer, "booking_confirmation.html", data, nil, booking.ID)

	plainAdmin := fmt.Sprintf(
		"New booking %s from %s (%s, %s).\nScheduled for %s at %s.\nLocation: %s, %s, %s",
		booking.ID, booking.Name, booking.Email, booking.Phone,
		booking.Date, booking.TimeSlot, booking.Address, booking.City, booking.ZipCode,
	)
	s.sendEmail("Admin", s.adminEmail,
		fmt.Sprintf("New Booking from %s - %s", booking.Name, booking.Date),
		plainAdmin, "booking_admin_notification.html", data, nil, booking.ID)
}

// SendContactNotification emails the admin the message content with reply-to
// set to the customer address.
func (s *SenderService) SendContactNotification(message *db.ContactMessage) {
	data := entities.ContactEmailData{
		Message:      *message,
		BusinessName: s.businessName,
		CurrentYear:  time.Now().Year(),
	}
	plain := fmt.Sprintf(
		"New contact message from %s (%s).\n\nSubject: %s\n\n%s",
		message.Name, message.Email, message.Subject, message.Message,
	)
	replyTo := mail.NewEmail(message.Name, message.Email)
	s.sendEmail("Admin", s.adminEmail,
		fmt.Sprintf("New Contact Message: %s", message.Subject),
		plain, "contact_notification.html", data, replyTo, message.ID)
}

// SendBookingStatusChanged emails the customer only when the booking moved to
// confirmed or cancelled. Any other new status is silent, including a no-op
// update where the status did not change.
func (s *SenderService) SendBookingStatusChanged(booking *db.Booking, previousStatus string) {
	if booking.Status != db.BookingStatusConfirmed && booking.Status != db.BookingStatusCancelled {
		return
	}
	log.Printf("Booking %s moved from %s to %s, notifying %s",
		booking.ID, previousStatus, booking.Status, booking.Email)

	cancelled := booking.Status == db.BookingStatusCancelled
	data := entities.StatusEmailData{
		Booking:      *booking,
		StatusText:   booking.Status,
		Cancelled:    cancelled,
		BusinessName: s.businessName,
		CurrentYear:  time.Now().Year(),
	}

	closing := "We look forward to serving you!"
	if cancelled {
		closing = "If you would like to reschedule, please contact us."
	}
	plain := fmt.Sprintf(
		"Hi %s,\n\nYour appointment scheduled for %s at %s has been %s.\n\n%s\n\nThank you,\n%s",
		booking.Name, booking.Date, booking.TimeSlot, booking.Status, closing, s.businessName,
	)

	subjectStatus := "Confirmed"
	if cancelled {
		subjectStatus = "Cancelled"
	}
	s.sendEmail(booking.Name, booking.Email,
		fmt.Sprintf("Your Appointment has been %s", subjectStatus),
		plain, "booking_status.html", data, nil, booking.ID)

	s.sendSMS(booking.Phone, fmt.Sprintf(
		"%s: your appointment on %s at %s has been %s. Details in your email.",
		s.businessName, booking.Date, booking.TimeSlot, booking.Status,
	), booking.ID)
}

// SendBookingReminder emails the customer the day before a confirmed
// appointment.
func (s *SenderService) SendBookingReminder(booking *db.Booking) {
	data := s.bookingEmailData(booking)
	plain := fmt.Sprintf(
		"Hi %s,\n\nThis is a friendly reminder that your appointment is tomorrow, %s, at %s.\n"+
			"Location: %s, %s, %s\n\nThank you,\n%s",
		booking.Name, booking.Date, booking.TimeSlot,
		booking.Address, booking.City, booking.ZipCode, s.businessName,
	)
	s.sendEmail(booking.Name, booking.Email,
		"Reminder: Your Appointment is Tomorrow",
		plain, "booking_reminder.html", data, nil, booking.ID)
}

func (s *SenderService) bookingEmailData(booking *db.Booking) entities.BookingEmailData {
	return entities.BookingEmailData{
		Booking:       *booking,
		BusinessName:  s.businessName,
		BusinessEmail: s.businessEmail,
		CurrentYear:   time.Now().Year(),
	}
}

func (s *SenderService) sendEmail(toName, toEmail, subject, plainBody, templateName string, data interface{}, replyTo *mail.Email, recordID string) {
	if s.mail == nil {
		log.Printf("WARNING: email transport not configured, skipping %q to %s (record %s)", subject, toEmail, recordID)
		return
	}

	var htmlBuf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&htmlBuf, templateName, data); err != nil {
		log.Printf("ALERT: error rendering email template %s for record %s: %v", templateName, recordID, err)
	}

	from := mail.NewEmail(s.businessName, s.businessEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainBody, htmlBuf.String())
	if replyTo != nil {
		message.SetReplyTo(replyTo)
	}

	response, err := s.mail.Send(message)
	if err != nil {
		log.Printf("ALERT: failed to send email %q to %s (record %s): %v", subject, toEmail, recordID, err)
		return
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		log.Printf("ALERT: email %q to %s (record %s) rejected with status %d: %s",
			subject, toEmail, recordID, response.StatusCode, response.Body)
		return
	}
	log.Printf("Email %q sent to %s (record %s)", subject, toEmail, recordID)
}

func (s *SenderService) sendSMS(toNumber, body, recordID string) {
	if s.sms == nil || s.fromNumber == "" || toNumber == "" {
		return
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	resp, err := s.sms.CreateMessage(params)
	if err != nil {
		log.Printf("ALERT: failed to send SMS to %s (record %s): %v", toNumber, recordID, err)
		return
	}
	if resp != nil && resp.Sid != nil {
		log.Printf("SMS sent to %s (record %s), message SID %s", toNumber, recordID, *resp.Sid)
	}
}
