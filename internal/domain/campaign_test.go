package domain

import "testing"

func TestCampaignProgress(t *testing.T) {
	tests := []struct {
		name   string
		target int64
		raised int64
		want   float64
	}{
		{name: "zero raised", target: 1000, raised: 0, want: 0},
		{name: "partial", target: 1000, raised: 500, want: 50},
		{name: "rounded to one decimal", target: 3000, raised: 1000, want: 33.3},
		{name: "fully funded", target: 1000, raised: 1000, want: 100},
		{name: "overfunded", target: 1000, raised: 1500, want: 150},
		{name: "invalid target guards division", target: 0, raised: 200, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Campaign{Target: tc.target, Raised: tc.raised}
			if got := c.Progress(); got != tc.want {
				t.Fatalf("Progress() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDonorRef(t *testing.T) {
	if got := DonorRef("8c2f1a9e-4b7d-4c4f-9d1a-2f3e4a5b6c7d"); got != "8c2f1a" {
		t.Fatalf("DonorRef() = %q, want %q", got, "8c2f1a")
	}
	if got := DonorRef("abc"); got != "abc" {
		t.Fatalf("DonorRef() short id = %q, want %q", got, "abc")
	}
}
