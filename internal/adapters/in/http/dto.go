package http

import (
	"time"

	"watertanker/internal/core/application/auth"
	"watertanker/internal/core/application/usecases/queries"
)

type signupCustomerRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
}

type signupDriverRequest struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	ContactNumber  string  `json:"contact_number"`
	Password       string  `json:"password"`
	VehicleDetails string  `json:"vehicle_details"`
	RatePerLitre   float64 `json:"rate_per_litre"`
}

type signupAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerStaffRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type emailLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type driverLoginRequest struct {
	ContactNumber string `json:"contact_number"`
	Password      string `json:"password"`
}

type updateProfileRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	Password      *string `json:"password"`
}

type updateStaffRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

type updateDriverRequest struct {
	VehicleDetails *string  `json:"vehicle_details"`
	RatePerLitre   *float64 `json:"rate_per_litre"`
	Active         *bool    `json:"active"`
	Password       *string  `json:"password"`
}

type createOrderRequest struct {
	Destination string  `json:"destination"`
	WaterAmount float64 `json:"water_amount"`
}

type acceptChargeRequest struct {
	TransactionRef string `json:"transaction_ref"`
}

type setChargeRequest struct {
	Amount float64 `json:"amount"`
}

type assignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

type feedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type submitRecyclingRequest struct {
	ImageURL        string `json:"image_url"`
	RecyclableType  string `json:"recyclable_type"`
	PickupOption    string `json:"pickup_option"`
	PickupAddress   string `json:"pickup_address"`
	DropoffLocation string `json:"dropoff_location"`
}

type reviewRecyclingRequest struct {
	Status         string   `json:"status"`
	EstimatedValue *float64 `json:"estimated_value"`
	CreditedAmount *float64 `json:"credited_amount"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func newTokenResponse(pair auth.TokenPair) tokenResponse {
	return tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	}
}

type idResponse struct {
	ID string `json:"id"`
}

type orderResponse struct {
	ID                    string     `json:"id"`
	CustomerID            string     `json:"customer_id"`
	Destination           string     `json:"destination"`
	WaterAmount           float64    `json:"water_amount"`
	Status                string     `json:"status"`
	PaymentStatus         string     `json:"payment_status"`
	PaymentDate           *time.Time `json:"payment_date,omitempty"`
	DriverID              *string    `json:"driver_id,omitempty"`
	StaffID               *string    `json:"staff_id,omitempty"`
	DriverCharge          *float64   `json:"driver_charge,omitempty"`
	CancellationRequested bool       `json:"cancellation_requested"`
	CancellationReason    string     `json:"cancellation_reason,omitempty"`
}

func newOrderResponse(src queries.OrderResponse) orderResponse {
	resp := orderResponse{
		ID:                    src.ID.String(),
		CustomerID:            src.CustomerID.String(),
		Destination:           src.Destination,
		WaterAmount:           src.WaterAmount,
		Status:                src.Status,
		PaymentStatus:         src.PaymentStatus,
		PaymentDate:           src.PaymentDate,
		DriverCharge:          src.DriverCharge,
		CancellationRequested: src.CancellationRequested,
		CancellationReason:    src.CancellationReason,
	}
	if src.DriverID != nil {
		id := src.DriverID.String()
		resp.DriverID = &id
	}
	if src.StaffID != nil {
		id := src.StaffID.String()
		resp.StaffID = &id
	}
	return resp
}

func newOrderResponses(src []queries.OrderResponse) []orderResponse {
	out := make([]orderResponse, len(src))
	for i, o := range src {
		out[i] = newOrderResponse(o)
	}
	return out
}

type customerResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
}

func newCustomerResponse(src queries.CustomerResponse) customerResponse {
	return customerResponse{
		ID:            src.ID.String(),
		FirstName:     src.FirstName,
		LastName:      src.LastName,
		Email:         src.Email,
		Address:       src.Address,
		ContactNumber: src.ContactNumber,
	}
}

type driverResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	ContactNumber  string  `json:"contact_number"`
	VehicleDetails string  `json:"vehicle_details"`
	RatePerLitre   float64 `json:"rate_per_litre"`
	Active         bool    `json:"active"`
}

func newDriverResponse(src queries.DriverResponse) driverResponse {
	return driverResponse{
		ID:             src.ID.String(),
		FirstName:      src.FirstName,
		LastName:       src.LastName,
		ContactNumber:  src.ContactNumber,
		VehicleDetails: src.VehicleDetails,
		RatePerLitre:   src.RatePerLitre,
		Active:         src.Active,
	}
}

type submissionResponse struct {
	ID              string   `json:"id"`
	CustomerID      string   `json:"customer_id"`
	ImageURL        string   `json:"image_url"`
	RecyclableType  string   `json:"recyclable_type"`
	PickupOption    string   `json:"pickup_option"`
	PickupAddress   string   `json:"pickup_address,omitempty"`
	DropoffLocation string   `json:"dropoff_location,omitempty"`
	Status          string   `json:"status"`
	EstimatedValue  *float64 `json:"estimated_value,omitempty"`
	CreditedAmount  *float64 `json:"credited_amount,omitempty"`
}

func newSubmissionResponse(src queries.SubmissionResponse) submissionResponse {
	return submissionResponse{
		ID:              src.ID.String(),
		CustomerID:      src.CustomerID.String(),
		ImageURL:        src.ImageURL,
		RecyclableType:  src.RecyclableType,
		PickupOption:    src.PickupOption,
		PickupAddress:   src.PickupAddress,
		DropoffLocation: src.DropoffLocation,
		Status:          src.Status,
		EstimatedValue:  src.EstimatedValue,
		CreditedAmount:  src.CreditedAmount,
	}
}

func newSubmissionResponses(src []queries.SubmissionResponse) []submissionResponse {
	out := make([]submissionResponse, len(src))
	for i, sub := range src {
		out[i] = newSubmissionResponse(sub)
	}
	return out
}

type ordersReportResponse struct {
	TotalOrders    int64            `json:"total_orders"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
}

type revenueReportResponse struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalSubmitted int64   `json:"recycling_submissions"`
	TotalCredited  float64 `json:"recycling_credited"`
}

type feedbackReportResponse struct {
	FeedbackCount int64   `json:"feedback_count"`
	AverageRating float64 `json:"average_rating"`
}
