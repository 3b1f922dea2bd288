// Package format renders stats and dates the way league pages display them.
package format

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	dateLayout = "Jan 2, 2006"
	timeLayout = "3:04 PM"

	// Missing is shown for stats that have no value.
	Missing = "-"
	// Unscored is shown for games without a final score.
	Unscored = "TBD"
)

var printer = message.NewPrinter(language.English)

// Date renders t as "Jan 2, 2006" in t's location.
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// Time renders t as "3:04 PM" in t's location.
func Time(t time.Time) string {
	return t.Format(timeLayout)
}

// DateTime renders t as "Jan 2, 2006, 3:04 PM".
func DateTime(t time.Time) string {
	return Date(t) + ", " + Time(t)
}

// Stat renders v with a fixed number of decimals, or Missing when v is nil.
func Stat(v *float64, decimals int) string {
	if v == nil {
		return Missing
	}
	if decimals < 0 {
		decimals = 0
	}
	return printer.Sprint(number.Decimal(*v, number.Scale(decimals)))
}

// Percentage renders v as "45.5%", or Missing when v is nil.
func Percentage(v *float64) string {
	if v == nil {
		return Missing
	}
	return Stat(v, 1) + "%"
}

// PlayerName joins a player's first and last name.
func PlayerName(first, last string) string {
	return first + " " + last
}

// GameScore renders "home - away", or Unscored until both scores exist.
func GameScore(home, away *int) string {
	if home == nil || away == nil {
		return Unscored
	}
	return strconv.Itoa(*home) + " - " + strconv.Itoa(*away)
}
