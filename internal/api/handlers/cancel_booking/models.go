package cancel_booking

// CancelBookingRequest HTTP request model. The body is optional; an empty
// body cancels without a reason.
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}
