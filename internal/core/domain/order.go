package domain

import (
	"encoding/json"
	"time"
)

// OrderStatus represents the lifecycle state of a placed order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// validTransitions defines the allowed state machine transitions. Delivered
// and Cancelled are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusShipped, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Date is a calendar day without time-of-day precision, stored on the wire
// as "2006-01-02".
type Date struct {
	time.Time
}

// Today returns the current UTC day.
func Today() Date {
	return Date{time.Now().UTC().Truncate(24 * time.Hour)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		// Older documents stored full timestamps.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	d.Time = t.UTC().Truncate(24 * time.Hour)
	return nil
}

// Order is a placed order. It is immutable once created except for its
// status: items are a frozen copy of the cart at placement time, and later
// catalog or cart changes never affect it.
type Order struct {
	ID           string      `json:"id"`
	Date         Date        `json:"date"`
	CustomerName string      `json:"customerName"`
	Address      string      `json:"address"`
	Total        Amount      `json:"total"`
	Status       OrderStatus `json:"status"`
	Items        []CartLine  `json:"items"`
}
