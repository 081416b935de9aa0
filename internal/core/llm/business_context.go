package llm

import (
	"fmt"
	"strings"
)

// BusinessProfile is the fixed context every chat prompt starts with.
type BusinessProfile struct {
	Name           string
	ShortName      string
	Location       string
	Phone          string
	Email          string
	Website        string
	Services       []ServiceGroup
	Certifications []string
	Pricing        []string
	ResponseStyle  []string
}

type ServiceGroup struct {
	Title string
	Items []string
}

// DefaultBusinessProfile returns the Soundzy World Global profile with the given contact details.
func DefaultBusinessProfile(phone, email, website string) *BusinessProfile {
	return &BusinessProfile{
		Name:      "Soundzy World Global",
		ShortName: "SWG",
		Location:  "Port Harcourt, Rivers State, Nigeria",
		Phone:     phone,
		Email:     email,
		Website:   website,
		Services: []ServiceGroup{
			{
				Title: "ENTERTAINMENT & DJ SERVICES",
				Items: []string{
					"Professional DJ services for weddings, corporate events, parties",
					"MC services and event hosting",
					"Live performances and music entertainment",
					"Event planning and coordination",
					"Sound system setup and operation",
					"Lighting and stage design",
					"Complete event production",
				},
			},
			{
				Title: "EQUIPMENT SHOP & RENTAL",
				Items: []string{
					"Professional audio equipment (speakers, mixers, amplifiers)",
					"Stage lighting systems (LED lights, moving heads, etc.)",
					"DJ equipment (controllers, turntables, CDJs)",
					"Microphones and wireless systems",
					"PA systems for events",
					"Installation and setup services",
					"Technical support and maintenance",
				},
			},
			{
				Title: "CREATIVE & DESIGN SERVICES",
				Items: []string{
					"Logo Design (from ₦29,355)",
					"Brand Identity packages (from ₦84,084)",
					"Web Design & Development (from ₦19,320)",
					"Print Design & Marketing Materials (from ₦11,238)",
					"Digital Marketing campaigns (from ₦20,180)",
					"Video Production (from ₦154,120)",
					"Social media content creation",
				},
			},
		},
		Certifications: []string{
			"CAC Business Registration",
			"AMPSOMI Entertainment License",
			"Nollywood Film Production Permit",
			"Professional Insurance Coverage",
		},
		Pricing: []string{
			"All prices are negotiable",
			"Custom quotes based on event requirements",
			"Package deals available",
			"Payment plans can be arranged",
		},
		ResponseStyle: []string{
			"Friendly, professional, and enthusiastic",
			"Use Nigerian English where appropriate",
			"Always provide contact information",
			"Offer to connect via WhatsApp for detailed discussions",
			"Be specific about services but mention prices are negotiable",
			"Suggest viewing DJ showreels and portfolio",
			"Keep responses concise but informative (2-3 paragraphs max)",
		},
	}
}

// BuildSystemPrompt renders the business context block
func BuildSystemPrompt(p *BusinessProfile) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are the AI assistant for %s (%s), a premier entertainment and event services company in %s.\n\n",
		p.Name, p.ShortName, p.Location))

	sb.WriteString("COMPANY INFORMATION:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s (%s)\n", p.Name, p.ShortName))
	sb.WriteString(fmt.Sprintf("- Location: %s\n", p.Location))
	sb.WriteString(fmt.Sprintf("- Contact: %s\n", p.Phone))
	sb.WriteString(fmt.Sprintf("- Email: %s\n", p.Email))
	sb.WriteString(fmt.Sprintf("- Website: %s\n\n", p.Website))

	sb.WriteString("SERVICES OFFERED:\n\n")
	for i, group := range p.Services {
		sb.WriteString(fmt.Sprintf("%d. %s:\n", i+1, group.Title))
		for _, item := range group.Items {
			sb.WriteString("   - " + item + "\n")
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "CERTIFICATIONS", p.Certifications)
	writeList(&sb, "PRICING PHILOSOPHY", p.Pricing)
	writeList(&sb, "CONTACT PREFERENCES", []string{
		fmt.Sprintf("WhatsApp: %s (preferred for quick responses)", p.Phone),
		fmt.Sprintf("Email: %s (for detailed inquiries)", p.Email),
		fmt.Sprintf("Visit website: %s", p.Website),
	})
	writeList(&sb, "RESPONSE STYLE", p.ResponseStyle)

	return strings.TrimRight(sb.String(), "\n")
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	for _, item := range items {
		sb.WriteString("- " + item + "\n")
	}
	sb.WriteString("\n")
}

// BuildChatMessage wraps the visitor's message with the closing instruction.
func BuildChatMessage(userMessage string) string {
	return "USER MESSAGE: " + userMessage +
		"\n\nProvide a helpful, friendly response based on the business context above. Include contact information when relevant."
}

// ExtractJSONObject returns the substring from the first '{' to the last '}'.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
