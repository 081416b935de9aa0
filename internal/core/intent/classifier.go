package intent

import "strings"

const (
	BookingInquiry  = "booking_inquiry"
	ShopInquiry     = "shop_inquiry"
	CreativeInquiry = "creative_inquiry"
	MediaRequest    = "media_request"
	PricingInquiry  = "pricing_inquiry"
	GeneralInquiry  = "general_inquiry"
)

// Rule maps a keyword set to an intent and its canned quick replies.
type Rule struct {
	Intent       string
	Keywords     []string
	QuickReplies []string
	Confidence   float64
}

// Result is what the chat widget receives alongside the generated reply.
type Result struct {
	Intent       string   `json:"intent"`
	QuickReplies []string `json:"quickReplies"`
	Confidence   float64  `json:"confidence"`
}

// DefaultRules are evaluated top to bottom; the first rule with a matching keyword wins.
var DefaultRules = []Rule{
	{
		Intent:       BookingInquiry,
		Keywords:     []string{"book", "dj", "event"},
		QuickReplies: []string{"Share Event Details", "WhatsApp Me", "View DJ Showreels", "Get Quote"},
		Confidence:   0.9,
	},
	{
		Intent:       ShopInquiry,
		Keywords:     []string{"shop", "gear", "equipment", "buy"},
		QuickReplies: []string{"Browse Speakers", "DJ Equipment", "Stage Lights", "Get Quote"},
		Confidence:   0.85,
	},
	{
		Intent:       CreativeInquiry,
		Keywords:     []string{"creative", "design", "logo", "website", "video"},
		QuickReplies: []string{"Logo Design", "Web Design", "Video Production", "View Portfolio"},
		Confidence:   0.85,
	},
	{
		Intent:       MediaRequest,
		Keywords:     []string{"showreel", "video", "tape", "music"},
		QuickReplies: []string{"Play Flashback Mix", "Weekend Vibes", "View All Showreels", "WhatsApp Me"},
		Confidence:   0.95,
	},
	{
		Intent:       PricingInquiry,
		Keywords:     []string{"price", "cost", "rate", "how much"},
		QuickReplies: []string{"DJ Pricing", "Equipment Rates", "Creative Services", "Get Custom Quote"},
		Confidence:   0.8,
	},
}

// Fallback applies when no rule matches.
var Fallback = Rule{
	Intent:       GeneralInquiry,
	QuickReplies: []string{"Book DJ", "Shop Equipment", "Creative Services", "Contact Us"},
	Confidence:   0.6,
}

type Classifier struct {
	rules    []Rule
	fallback Rule
}

func NewClassifier(rules []Rule, fallback Rule) *Classifier {
	return &Classifier{rules: rules, fallback: fallback}
}

// Default returns a classifier over DefaultRules.
func Default() *Classifier {
	return NewClassifier(DefaultRules, Fallback)
}

// Classify matches keywords as case-insensitive substrings. It never fails.
func (c *Classifier) Classify(message string) Result {
	lower := strings.ToLower(message)

	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.result()
			}
		}
	}

	return c.fallback.result()
}

func (r Rule) result() Result {
	replies := make([]string, len(r.QuickReplies))
	copy(replies, r.QuickReplies)
	return Result{Intent: r.Intent, QuickReplies: replies, Confidence: r.Confidence}
}
