// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"time"
)

// FormatCurrency renders an amount in compact dollar notation:
// $1.2M above a million, $250K above a thousand, $900 below.
func FormatCurrency(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.1fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("$%.0fK", amount/1_000)
	default:
		return fmt.Sprintf("$%.0f", amount)
	}
}

// FormatDate renders a day-granularity date string ("2026-03-14") in the
// display form used across the app ("14 Mar 2026"). Unparseable input is
// returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format("2 Jan 2006")
}
