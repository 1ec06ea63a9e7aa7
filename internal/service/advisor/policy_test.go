package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresentHandoffPassesResponderFlagThrough(t *testing.T) {
	p := NewEscalationPolicy()

	assert.True(t, p.PresentHandoff(true))
	assert.False(t, p.PresentHandoff(false))
}

func TestContactURLDefaultsToWhatsApp(t *testing.T) {
	p := NewEscalationPolicy()

	assert.Equal(t, defaultContactURL, p.ContactURL())
}

func TestContactURLFromEnvironment(t *testing.T) {
	t.Setenv("WHATSAPP_CONTACT_URL", "https://wa.me/265888000111")

	p := NewEscalationPolicy()

	assert.Equal(t, "https://wa.me/265888000111", p.ContactURL())
}
