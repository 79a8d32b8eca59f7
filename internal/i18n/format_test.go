package i18n

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestFormatAmountGroupsDigits(t *testing.T) {
	if got := FormatAmount(language.English, 1250000); got != "1,250,000" {
		t.Fatalf("FormatAmount(en) = %q, want %q", got, "1,250,000")
	}
	if got := FormatAmount(language.Indonesian, 1250000); got != "1.250.000" {
		t.Fatalf("FormatAmount(id) = %q, want %q", got, "1.250.000")
	}
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	if got := FormatTime(language.English, ts); got != "Mar 5, 2024 2:30 PM" {
		t.Fatalf("FormatTime(en) = %q", got)
	}
	if got := FormatTime(language.Indonesian, ts); got != "5 Mar 2024 14.30" {
		t.Fatalf("FormatTime(id) = %q", got)
	}
	// unknown locales fall back to the English layout
	if got := FormatTime(language.Japanese, ts); got != "Mar 5, 2024 2:30 PM" {
		t.Fatalf("FormatTime(ja) = %q", got)
	}
}
