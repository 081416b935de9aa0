package intent

import "testing"

func TestClassify(t *testing.T) {
	c := Default()

	tests := []struct {
		name       string
		message    string
		wantIntent string
		wantConf   float64
	}{
		{"booking wins over pricing", "book a dj and tell me the price", BookingInquiry, 0.9},
		{"shop", "Do you sell speakers? I want to BUY gear", ShopInquiry, 0.85},
		{"creative", "I need a new logo", CreativeInquiry, 0.85},
		{"video goes to creative first", "can you send me a video", CreativeInquiry, 0.85},
		{"media", "where is your latest showreel", MediaRequest, 0.95},
		{"pricing", "How much do you charge?", PricingInquiry, 0.8},
		{"general", "hello there", GeneralInquiry, 0.6},
		{"empty", "", GeneralInquiry, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			if got.Intent != tt.wantIntent {
				t.Errorf("Classify(%q).Intent = %q, want %q", tt.message, got.Intent, tt.wantIntent)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("Classify(%q).Confidence = %v, want %v", tt.message, got.Confidence, tt.wantConf)
			}
			if len(got.QuickReplies) != 4 {
				t.Errorf("expected 4 quick replies, got %v", got.QuickReplies)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	c := Default()
	inputs := []string{"", "   ", "🎧🎧", "\x00\xff", "ÉVÉNEMENT"}

	for _, in := range inputs {
		if got := c.Classify(in); got.Intent == "" {
			t.Errorf("Classify(%q) returned empty intent", in)
		}
	}
}

func TestQuickRepliesAreCopied(t *testing.T) {
	c := Default()
	first := c.Classify("book")
	first.QuickReplies[0] = "mutated"

	if again := c.Classify("book"); again.QuickReplies[0] != "Share Event Details" {
		t.Errorf("rule table was mutated through a result: %q", again.QuickReplies[0])
	}
}
