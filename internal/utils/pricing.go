package utils

import (
	"fmt"
	"math"
	"time"

	"rentkart-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseRentalDate parses a yyyy-mm-dd rental date string.
func ParseRentalDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", s)
	}
	return t, nil
}

// RentalDays returns the billed rental duration in days for a window.
// The difference is taken as an absolute value, so a reversed window is
// billed rather than rejected, and a same-day window bills one day.
func RentalDays(startDate, endDate string) (int32, error) {
	start, err := ParseRentalDate(startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParseRentalDate(endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date: %w", err)
	}

	hours := math.Abs(end.Sub(start).Hours())
	days := int32(math.Ceil(hours / 24))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// DurationUnits converts a day count into billed units for a rental
// type: days as-is, weeks and months rounded up to the next full unit.
func DurationUnits(rt domain.RentalType, days int32) int32 {
	switch rt {
	case domain.RentalTypePerWeek:
		return (days + 6) / 7
	case domain.RentalTypePerMonth:
		return (days + 29) / 30
	default:
		return days
	}
}

// LineTotal computes the price of one rental line from a unit price.
func LineTotal(unitPrice, quantity int32, rt domain.RentalType, startDate, endDate string) (int32, error) {
	days, err := RentalDays(startDate, endDate)
	if err != nil {
		return 0, err
	}
	return unitPrice * quantity * DurationUnits(rt, days), nil
}

// Rates hold the order-level aggregation parameters. Zero values fall
// back to the marketplace defaults.
type Rates struct {
	TaxRate             float64
	DepositRate         float64
	StandardDeliveryFee int32
	ExpressDeliveryFee  int32
}

func (r Rates) withDefaults() Rates {
	if r.TaxRate == 0 {
		r.TaxRate = 0.18
	}
	if r.DepositRate == 0 {
		r.DepositRate = 0.20
	}
	if r.StandardDeliveryFee == 0 {
		r.StandardDeliveryFee = 99
	}
	if r.ExpressDeliveryFee == 0 {
		r.ExpressDeliveryFee = 199
	}
	return r
}

// OrderTotals is the checkout-time aggregation over all line totals.
// Every component is rounded to a whole currency unit at its own step.
type OrderTotals struct {
	Subtotal        int32 `json:"subtotal"`
	Tax             int32 `json:"tax"`
	DeliveryFee     int32 `json:"delivery_fee"`
	SecurityDeposit int32 `json:"security_deposit"`
	Total           int32 `json:"total"`
}

// ComputeOrderTotals aggregates line totals into subtotal, tax, delivery
// fee and security deposit. The delivery fee is flat per order, selected
// by delivery type, not item-dependent.
func ComputeOrderTotals(lineTotals []int32, delivery domain.DeliveryType, rates Rates) OrderTotals {
	rates = rates.withDefaults()

	var subtotal int32
	for _, lt := range lineTotals {
		subtotal += lt
	}

	fee := rates.StandardDeliveryFee
	if delivery == domain.DeliveryTypeExpress {
		fee = rates.ExpressDeliveryFee
	}

	tax := int32(math.Round(float64(subtotal) * rates.TaxRate))
	deposit := int32(math.Round(float64(subtotal) * rates.DepositRate))

	return OrderTotals{
		Subtotal:        subtotal,
		Tax:             tax,
		DeliveryFee:     fee,
		SecurityDeposit: deposit,
		Total:           subtotal + tax + fee + deposit,
	}
}
