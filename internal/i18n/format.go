// Package i18n renders amounts and timestamps for the negotiated display
// locale. Formatting is a presentation concern only; API payloads always
// carry the raw numeric amount and epoch-millisecond time alongside.
package i18n

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount renders a donation amount with locale digit grouping.
func FormatAmount(tag language.Tag, amount int64) string {
	return message.NewPrinter(tag).Sprintf("%d", amount)
}

var timeLayouts = map[string]string{
	"en": "Jan 2, 2006 3:04 PM",
	"id": "2 Jan 2006 15.04",
	"es": "2 Jan 2006 15:04",
	"fr": "2 Jan 2006 15:04",
}

// FormatTime renders a timestamp in the locale's customary layout, in UTC.
func FormatTime(tag language.Tag, t time.Time) string {
	base, _ := tag.Base()
	layout, ok := timeLayouts[base.String()]
	if !ok {
		layout = timeLayouts["en"]
	}
	return t.UTC().Format(layout)
}
