package models

type UserType string
type UserStatus string
type BookingStatus string
type RateType string
type PaymentMethod string
type JobOfferOwnerType string
type JobOfferStatus string

const (
	UserTypeWorker   UserType = "worker"
	UserTypeEmployer UserType = "employer"
	UserTypeAdmin    UserType = "admin"

	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusRejected   BookingStatus = "rejected"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusCompleted  BookingStatus = "completed"

	RateTypeHourly  RateType = "hourly"
	RateTypeDaily   RateType = "daily"
	RateTypeWeekly  RateType = "weekly"
	RateTypeMonthly RateType = "monthly"
	RateTypeFixed   RateType = "fixed"

	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodEsewa PaymentMethod = "esewa"

	JobOfferOwnerWorker   JobOfferOwnerType = "worker"
	JobOfferOwnerEmployer JobOfferOwnerType = "employer"

	JobOfferStatusActive JobOfferStatus = "active"
	JobOfferStatusClosed JobOfferStatus = "closed"
)

// bookingTransitions is the full lifecycle graph. pending splits into
// accepted or rejected; accepted walks forward through in-progress to
// completed. rejected and completed are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusAccepted, BookingStatusRejected},
	BookingStatusAccepted:   {BookingStatusInProgress},
	BookingStatusInProgress: {BookingStatusCompleted},
}

// CanTransition reports whether from -> to is a legal booking transition.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsWorkerDecision reports whether a status is one a worker may set on a
// pending booking. in-progress and completed are admin-driven and are never
// reachable through the worker-facing status endpoint.
func IsWorkerDecision(status BookingStatus) bool {
	return status == BookingStatusAccepted || status == BookingStatusRejected
}

// IsTerminal reports whether no further transition leaves the status.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusRejected,
		BookingStatusInProgress, BookingStatusCompleted:
		return true
	}
	return false
}

func ValidRateType(r RateType) bool {
	switch r {
	case RateTypeHourly, RateTypeDaily, RateTypeWeekly, RateTypeMonthly, RateTypeFixed:
		return true
	}
	return false
}

func ValidPaymentMethod(p PaymentMethod) bool {
	return p == PaymentMethodCash || p == PaymentMethodEsewa
}
