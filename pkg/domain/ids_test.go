package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "afternote/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseReceiverID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseReceiverID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseReceiverID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseReceiverID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, ReceiverID(validUUID), id)
		assert.Equal(t, validUUID.String(), id.String())
		assert.False(t, id.IsNil())
	})
}

// TestParseID_SecurityInvariants covers hostile input at API entry points,
// e.g. a crafted timeLetterReceiverId path segment.
func TestParseID_SecurityInvariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE time_letters;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Empty string", "", true},
		{"Nil UUID", uuid.Nil.String(), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},
		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimeLetterReceiverID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	parsers := map[string]func(string) error{
		"owner":                func(s string) error { _, err := ParseOwnerID(s); return err },
		"receiver":             func(s string) error { _, err := ParseReceiverID(s); return err },
		"verification":         func(s string) error { _, err := ParseVerificationID(s); return err },
		"time letter":          func(s string) error { _, err := ParseTimeLetterID(s); return err },
		"time letter receiver": func(s string) error { _, err := ParseTimeLetterReceiverID(s); return err },
		"mind record":          func(s string) error { _, err := ParseMindRecordID(s); return err },
		"afternote":            func(s string) error { _, err := ParseAfternoteID(s); return err },
	}

	valid := uuid.New().String()
	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, parse(valid))
			for _, input := range []string{"", "invalid", uuid.Nil.String()} {
				assert.Error(t, parse(input), "input %q", input)
			}
		})
	}
}

func TestIDs_JSONRoundTrip(t *testing.T) {
	type payload struct {
		ReceiverID ReceiverID `json:"receiverId"`
	}
	in := payload{ReceiverID: ReceiverID(uuid.New())}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), in.ReceiverID.String())

	var out payload
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"receiverId":"42"}`), &out)
	require.Error(t, err)
}
