package quiz

import "time"

// DateLayout is day, short month, year: "09 Sep 2020".
const DateLayout = "02 Jan 2006"

// FormatDate renders t for quiz cards and the detail page.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
