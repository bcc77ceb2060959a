package wizard

import (
	"fmt"
	"time"

	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/pricing"
)

type Step int

const (
	StepEventDetails Step = iota + 1
	StepContactInfo
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepEventDetails:
		return "event_details"
	case StepContactInfo:
		return "contact_info"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// Draft is the transient wizard state. Celebrity and package data are
// snapshotted at creation so later catalog edits cannot change a booking
// in flight.
type Draft struct {
	ID            string
	UserID        string
	CelebrityID   string
	CelebrityName string
	PackageID     pricing.PackageID
	PackageName   string
	PackagePrice  domain.Money

	Step    Step
	Event   domain.EventDetails
	Contact domain.ContactInfo
	Payment struct {
		Method  domain.PaymentMethod
		Details domain.PaymentDetails
	}

	// Reference is assigned on successful submission only.
	Reference string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New opens a draft on the first step. The contact email is pre-filled
// from the authenticated user.
func New(id, userID string, c *domain.Celebrity, pkg pricing.Package, contactEmail string, now time.Time) *Draft {
	d := &Draft{
		ID:            id,
		UserID:        userID,
		CelebrityID:   c.ID,
		CelebrityName: c.Name,
		PackageID:     pkg.ID,
		PackageName:   pkg.Name,
		PackagePrice:  pkg.Price,
		Step:          StepEventDetails,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	d.Contact.Email = contactEmail
	return d
}

// Next advances 1->2 and 2->3. Submission is a distinct action, so there
// is no Next transition out of the payment step, and none past it.
func (d *Draft) Next(now time.Time) error {
	switch d.Step {
	case StepEventDetails:
		if err := validateEventDate(d.Event.Date, now); err != nil {
			return err
		}
		d.Step = StepContactInfo
	case StepContactInfo:
		d.Step = StepPayment
	default:
		return fmt.Errorf("%w: no next step from %s", domain.ErrWizardTransition, d.Step)
	}
	d.UpdatedAt = now
	return nil
}

// Previous regresses 2->1 and 3->2. On the first step it is a no-op, and
// there is no going back past submission.
func (d *Draft) Previous(now time.Time) error {
	switch d.Step {
	case StepEventDetails:
		return nil
	case StepContactInfo, StepPayment:
		d.Step--
		d.UpdatedAt = now
		return nil
	default:
		return fmt.Errorf("%w: cannot go back from %s", domain.ErrWizardTransition, d.Step)
	}
}

// SetEventDetails records step-1 data. No field is hard-required here;
// only a provided date is checked against the current day. Required-field
// enforcement happens at submission.
func (d *Draft) SetEventDetails(e domain.EventDetails, now time.Time) error {
	if d.Step != StepEventDetails {
		return fmt.Errorf("%w: event details belong to step %d", domain.ErrWizardTransition, StepEventDetails)
	}
	if err := validateEventDate(e.Date, now); err != nil {
		return err
	}
	if e.GuestCount < 0 {
		return fmt.Errorf("%w: guest_count must not be negative", domain.ErrValidation)
	}
	d.Event = e
	d.UpdatedAt = now
	return nil
}

func (d *Draft) SetContactInfo(c domain.ContactInfo, now time.Time) error {
	if d.Step != StepContactInfo {
		return fmt.Errorf("%w: contact info belongs to step %d", domain.ErrWizardTransition, StepContactInfo)
	}
	d.Contact = c
	d.UpdatedAt = now
	return nil
}

func (d *Draft) SetPayment(method domain.PaymentMethod, details domain.PaymentDetails, now time.Time) error {
	if d.Step != StepPayment {
		return fmt.Errorf("%w: payment belongs to step %d", domain.ErrWizardTransition, StepPayment)
	}
	if !validMethod(method) {
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, method)
	}
	d.Payment.Method = method
	d.Payment.Details = details
	d.UpdatedAt = now
	return nil
}

// ValidatePayment checks the method-specific required fields before the
// submission side effect.
func (d *Draft) ValidatePayment() error {
	if d.Step != StepPayment {
		return fmt.Errorf("%w: submit is only available on step %d", domain.ErrWizardTransition, StepPayment)
	}
	switch d.Payment.Method {
	case domain.PaymentBankTransfer:
		if d.Payment.Details.BankName == "" || d.Payment.Details.AccountNumber == "" {
			return fmt.Errorf("%w: bank name and account number are required", domain.ErrValidation)
		}
	case domain.PaymentUSDT, domain.PaymentBTC, domain.PaymentETH:
		if d.Payment.Details.CryptoAddress == "" {
			return fmt.Errorf("%w: crypto wallet address is required", domain.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: payment method is required", domain.ErrValidation)
	}
	return nil
}

// Complete moves the draft to the terminal confirmation step. Only called
// after the booking record has been persisted.
func (d *Draft) Complete(reference string, now time.Time) {
	d.Step = StepConfirmation
	d.Reference = reference
	d.UpdatedAt = now
}

// Subtotal, fee and total shown on the payment step.
func (d *Draft) Subtotal() domain.Money { return d.PackagePrice }
func (d *Draft) Fee() domain.Money      { return pricing.Total(d.PackagePrice) - d.PackagePrice }
func (d *Draft) Total() domain.Money    { return pricing.Total(d.PackagePrice) }

func validateEventDate(date time.Time, now time.Time) error {
	if date.IsZero() {
		return nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return fmt.Errorf("%w: event date must not be in the past", domain.ErrValidation)
	}
	return nil
}

func validMethod(m domain.PaymentMethod) bool {
	for _, known := range domain.PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}
