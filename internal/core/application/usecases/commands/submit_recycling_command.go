package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/recycling"
	"watertanker/internal/pkg/guard"
)

var ErrSubmitRecyclingCommandIsNotConstructed = errors.New(
	"SubmitRecyclingCommand must be created via NewSubmitRecyclingCommand constructor",
)

// SubmitRecyclingCommand represents a customer submitting recyclable
// material for valuation.
type SubmitRecyclingCommand struct { //nolint:recvcheck //using for validation
	submissionID    kernel.UUID
	customerID      kernel.UUID
	imageURL        string
	recyclableType  string
	pickupOption    recycling.PickupOption
	pickupAddress   string
	dropoffLocation string

	guard guard.ConstructorGuard
}

// NewSubmitRecyclingCommand creates a command to submit recyclable material.
// Address requirements depend on the pickup option and are enforced by the
// aggregate constructor during handling.
func NewSubmitRecyclingCommand(
	submissionID, customerID kernel.UUID,
	imageURL, recyclableType string,
	pickupOption recycling.PickupOption,
	pickupAddress, dropoffLocation string,
) (SubmitRecyclingCommand, error) {
	cmd := SubmitRecyclingCommand{
		imageURL:        imageURL,
		recyclableType:  recyclableType,
		pickupAddress:   pickupAddress,
		dropoffLocation: dropoffLocation,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSubmissionID(submissionID),
		cmd.setCustomerID(customerID),
		cmd.setPickupOption(pickupOption),
	); err != nil {
		return SubmitRecyclingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRecyclingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRecyclingCommandIsNotConstructed)
}

// SubmissionID returns the identifier for the new submission.
func (c SubmitRecyclingCommand) SubmissionID() kernel.UUID { return c.submissionID }

// CustomerID returns the identifier of the submitting customer.
func (c SubmitRecyclingCommand) CustomerID() kernel.UUID { return c.customerID }

// ImageURL returns the URL of the uploaded material photo.
func (c SubmitRecyclingCommand) ImageURL() string { return c.imageURL }

// RecyclableType returns the declared material type.
func (c SubmitRecyclingCommand) RecyclableType() string { return c.recyclableType }

// PickupOption returns how the material reaches the depot.
func (c SubmitRecyclingCommand) PickupOption() recycling.PickupOption { return c.pickupOption }

// PickupAddress returns the collection address, required for pickup.
func (c SubmitRecyclingCommand) PickupAddress() string { return c.pickupAddress }

// DropoffLocation returns the depot location, required for dropoff.
func (c SubmitRecyclingCommand) DropoffLocation() string { return c.dropoffLocation }

func (c *SubmitRecyclingCommand) setSubmissionID(submissionID kernel.UUID) error {
	if err := submissionID.Validate(); err != nil {
		return err
	}

	c.submissionID = submissionID
	return nil
}

func (c *SubmitRecyclingCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitRecyclingCommand) setPickupOption(option recycling.PickupOption) error {
	if err := option.Validate(); err != nil {
		return err
	}

	c.pickupOption = option
	return nil
}
