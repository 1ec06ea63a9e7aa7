package advisor

import "os"

// defaultContactURL is the permanent human-contact channel offered alongside
// every reply, escalated or not.
const defaultContactURL = "https://wa.me/265991234567"

// EscalationPolicy decides the user-visible hand-off behavior from the
// responder's escalation flag.
type EscalationPolicy struct {
	contactURL string
}

// NewEscalationPolicy reads WHATSAPP_CONTACT_URL from the environment.
func NewEscalationPolicy() *EscalationPolicy {
	contactURL := os.Getenv("WHATSAPP_CONTACT_URL")
	if contactURL == "" {
		contactURL = defaultContactURL
	}
	return &EscalationPolicy{contactURL: contactURL}
}

// PresentHandoff reports whether the client should surface the hand-off
// affordance. The responder's judgment passes through unchanged; any delay
// before showing it is a client concern.
func (p *EscalationPolicy) PresentHandoff(shouldEscalate bool) bool {
	return shouldEscalate
}

// ContactURL is the always-available human-contact channel.
func (p *EscalationPolicy) ContactURL() string {
	return p.contactURL
}
