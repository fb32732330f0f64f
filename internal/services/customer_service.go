package services

import (
	"context"
	"errors"
	"time"

	"github.com/phuslu/log"

	"registration/internal/apperrors"
	"registration/internal/models"
	"registration/internal/notify"
	"registration/internal/validation"
)

// CustomerStore persists and finds customers.
type CustomerStore interface {
	Insert(ctx context.Context, c *models.Customer) error
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
}

// EmailStatus is what happened to the confirmation email of a registration
// that was stored.
type EmailStatus int

const (
	EmailSent EmailStatus = iota
	EmailFailed
	EmailSkipped
)

func (s EmailStatus) String() string {
	switch s {
	case EmailSent:
		return "sent"
	case EmailFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// RegistrationOutcome is a stored customer plus what happened to its email.
type RegistrationOutcome struct {
	Customer *models.Customer
	Email    EmailStatus
}

func (o RegistrationOutcome) EmailSent() bool { return o.Email == EmailSent }

// CustomerService runs registration and phone lookup.
type CustomerService struct {
	store  CustomerStore
	mailer notify.Mailer
	now    func() time.Time
}

func NewCustomerService(store CustomerStore, mailer notify.Mailer) *CustomerService {
	if mailer == nil {
		mailer = notify.NoopMailer{}
	}
	return &CustomerService{store: store, mailer: mailer, now: time.Now}
}

// Register validates req, stores the customer and then sends the
// confirmation email. Once the insert succeeds the registration stands: a
// failed email only changes RegistrationOutcome.Email.
func (s *CustomerService) Register(ctx context.Context, req *models.RegistrationRequest) (*RegistrationOutcome, error) {
	if err := validation.ValidateRegistration(req); err != nil {
		return nil, apperrors.NewValidation(err)
	}

	customer := req.Customer(s.now().UTC())
	if err := s.store.Insert(ctx, &customer); err != nil {
		log.Error().Err(err).Str("component", "CUSTOMER").Msg("customer register insert failed")
		return nil, apperrors.NewPersistence("insert customer", err)
	}
	log.Info().Str("component", "CUSTOMER").Str("id", customer.ID.Hex()).Msg("customer registered")

	return &RegistrationOutcome{
		Customer: &customer,
		Email:    s.sendConfirmation(ctx, &customer),
	}, nil
}

func (s *CustomerService) sendConfirmation(ctx context.Context, c *models.Customer) EmailStatus {
	msg, err := notify.Confirmation(c.Email, c.FullName)
	if err == nil {
		err = s.mailer.Send(ctx, msg)
	}

	switch {
	case err == nil:
		log.Info().Str("component", "MAIL").Str("to", c.Email).Msg("confirmation email sent")
		return EmailSent
	case errors.Is(err, notify.ErrDisabled):
		log.Debug().Str("component", "MAIL").Str("to", c.Email).Msg("confirmation email skipped")
		return EmailSkipped
	default:
		nerr := &apperrors.NotificationError{To: c.Email, Err: err}
		log.Warn().Err(nerr).Str("component", "MAIL").Msg("confirmation email failed")
		return EmailFailed
	}
}

// LookupByPhone finds a customer by exact phone number match.
func (s *CustomerService) LookupByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	customer, err := s.store.FindByPhone(ctx, phone)
	if err != nil {
		log.Error().Err(err).Str("component", "CUSTOMER").Msg("customer lookup failed")
		return nil, apperrors.NewPersistence("find customer", err)
	}
	if customer == nil {
		return nil, apperrors.ErrCustomerNotFound
	}
	return customer, nil
}
