package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeIP(t *testing.T) {
	assert.Equal(t, "203.0.113.0/24", AnonymizeIP("203.0.113.42"))
	assert.Equal(t, "2001:db8:abcd::/48", AnonymizeIP("2001:db8:abcd:12::1"))
	assert.Equal(t, "", AnonymizeIP("not-an-ip"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***", MaskEmail("nobody"))
}
