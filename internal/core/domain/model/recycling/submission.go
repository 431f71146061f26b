// Package recycling contains the RecyclableSubmission aggregate: customers
// hand in recyclable material for credit, either by scheduled pickup or by
// dropping it off.
package recycling

import (
	"errors"
	"fmt"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
)

// ErrSubmissionIsNotConstructed is returned when a Submission instance was
// not created through NewSubmission or RestoreSubmission.
var ErrSubmissionIsNotConstructed = errors.New("Submission must be created via NewSubmission or RestoreSubmission")

// Status is the review/credit state of a submission.
type Status int

const (
	// StatusUnknown represents an invalid or undefined submission state.
	StatusUnknown Status = iota

	// StatusPendingReview is the initial state: staff have not yet looked
	// at the submission.
	StatusPendingReview

	// StatusPickupScheduled means staff scheduled collection from the
	// customer's pickup address.
	StatusPickupScheduled

	// StatusDroppedOff means the material arrived at a dropoff location.
	StatusDroppedOff

	// StatusCredited is the final state: value has been credited.
	StatusCredited
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "Unknown",
		StatusPendingReview:   "PendingReview",
		StatusPickupScheduled: "PickupScheduled",
		StatusDroppedOff:      "DroppedOff",
		StatusCredited:        "Credited",
	}
}

// StatusFromString parses the human-readable name of a status, as carried
// in review requests and list filters.
func StatusFromString(str string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == str {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("submission status")
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	switch s {
	case StatusPendingReview, StatusPickupScheduled, StatusDroppedOff, StatusCredited:
		return nil
	default:
		return errs.NewValueIsInvalidError("submission status")
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// PickupOption selects how the material reaches the depot.
type PickupOption int

const (
	// PickupUnknown represents an invalid or undefined option.
	PickupUnknown PickupOption = iota

	// OptionPickup means the material is collected from the customer.
	OptionPickup

	// OptionDropoff means the customer brings the material in.
	OptionDropoff
)

// PickupOptionFromString parses the wire representation of a pickup option.
func PickupOptionFromString(s string) (PickupOption, error) {
	switch s {
	case "pickup":
		return OptionPickup, nil
	case "dropoff":
		return OptionDropoff, nil
	default:
		return PickupUnknown, errs.NewValueIsInvalidError("pickup option")
	}
}

// Validate checks that the PickupOption is defined.
func (o PickupOption) Validate() error {
	if o != OptionPickup && o != OptionDropoff {
		return errs.NewValueIsInvalidError("pickup option")
	}
	return nil
}

// String returns the wire representation of the option.
func (o PickupOption) String() string {
	switch o {
	case OptionPickup:
		return "pickup"
	case OptionDropoff:
		return "dropoff"
	default:
		return "unknown"
	}
}

// Submission is one customer's recyclable hand-in. Staff review it, move it
// through pickup or dropoff, and finally credit its value.
type Submission struct {
	id              kernel.UUID
	customerID      kernel.UUID
	imageURL        string
	recyclableType  string
	pickupOption    PickupOption
	pickupAddress   string
	dropoffLocation string
	status          Status
	estimatedValue  *float64
	creditedAmount  *float64

	isConstructed bool
}

// NewSubmission creates a Submission in PendingReview. A pickup submission
// needs a pickup address; a dropoff submission needs a dropoff location.
func NewSubmission(id, customerID kernel.UUID, imageURL, recyclableType string, option PickupOption, pickupAddress, dropoffLocation string) (*Submission, error) {
	s := &Submission{
		pickupAddress:   pickupAddress,
		dropoffLocation: dropoffLocation,
		status:          StatusPendingReview,
		isConstructed:   true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCustomerID(customerID),
		s.setImageURL(imageURL),
		s.setRecyclableType(recyclableType),
		option.Validate(),
	); err != nil {
		return nil, err
	}
	s.pickupOption = option

	if option == OptionPickup && pickupAddress == "" {
		return nil, errs.NewValueIsRequiredError("pickup address")
	}
	if option == OptionDropoff && dropoffLocation == "" {
		return nil, errs.NewValueIsRequiredError("dropoff location")
	}

	return s, nil
}

// RestoreSubmission reconstructs a Submission from persistence.
func RestoreSubmission(
	id, customerID kernel.UUID,
	imageURL, recyclableType string,
	option PickupOption,
	pickupAddress, dropoffLocation string,
	status Status,
	estimatedValue, creditedAmount *float64,
) (*Submission, error) {
	s, err := NewSubmission(id, customerID, imageURL, recyclableType, option, pickupAddress, dropoffLocation)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	s.status = status
	s.estimatedValue = estimatedValue
	s.creditedAmount = creditedAmount
	return s, nil
}

// Validate ensures the Submission was created through a constructor.
func (s *Submission) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubmissionIsNotConstructed
	}
	return nil
}

// ID returns the submission's unique identifier.
func (s *Submission) ID() kernel.UUID { return s.id }

// CustomerID returns the submitting customer.
func (s *Submission) CustomerID() kernel.UUID { return s.customerID }

// ImageURL returns the photo of the material.
func (s *Submission) ImageURL() string { return s.imageURL }

// RecyclableType returns the declared material type.
func (s *Submission) RecyclableType() string { return s.recyclableType }

// Option returns how the material reaches the depot.
func (s *Submission) Option() PickupOption { return s.pickupOption }

// PickupAddress returns the collection address for pickup submissions.
func (s *Submission) PickupAddress() string { return s.pickupAddress }

// DropoffLocation returns the depot location for dropoff submissions.
func (s *Submission) DropoffLocation() string { return s.dropoffLocation }

// Status returns the review/credit state.
func (s *Submission) Status() Status { return s.status }

// EstimatedValue returns staff's value estimate, nil before review.
func (s *Submission) EstimatedValue() *float64 { return s.estimatedValue }

// CreditedAmount returns the credited value, nil until credited.
func (s *Submission) CreditedAmount() *float64 { return s.creditedAmount }

// Review applies a staff review outcome: the new status plus optional value
// estimate or credited amount. Credited submissions cannot be re-reviewed.
func (s *Submission) Review(status Status, estimatedValue, creditedAmount *float64) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if s.status == StatusCredited {
		return errs.NewInvalidStateError("review submission", "an uncredited status", s.status.String())
	}
	if creditedAmount != nil && *creditedAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("credited amount",
			fmt.Errorf("%f is negative", *creditedAmount))
	}

	s.status = status
	if estimatedValue != nil {
		s.estimatedValue = estimatedValue
	}
	if creditedAmount != nil {
		s.creditedAmount = creditedAmount
	}
	return nil
}

func (s *Submission) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Submission) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.customerID = id
	return nil
}

func (s *Submission) setImageURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("image URL")
	}
	s.imageURL = url
	return nil
}

func (s *Submission) setRecyclableType(t string) error {
	if t == "" {
		return errs.NewValueIsRequiredError("recyclable type")
	}
	s.recyclableType = t
	return nil
}
