package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_EffectiveStatus(t *testing.T) {
	now := time.Now()

	published := &Walk{Status: WalkStatusPublished, WalkDate: now.Add(24 * time.Hour)}
	assert.Equal(t, WalkStatusPublished, published.EffectiveStatus(now))

	past := &Walk{Status: WalkStatusPublished, WalkDate: now.Add(-time.Hour)}
	assert.Equal(t, WalkStatusArchived, past.EffectiveStatus(now))

	draft := &Walk{Status: WalkStatusDraft, WalkDate: now.Add(24 * time.Hour)}
	assert.Equal(t, WalkStatusDraft, draft.EffectiveStatus(now))
}

func TestWalk_IsBookable(t *testing.T) {
	now := time.Now()

	w := &Walk{Status: WalkStatusPublished, WalkDate: now.Add(24 * time.Hour)}
	assert.True(t, w.IsBookable(now))

	w.Status = WalkStatusDraft
	assert.False(t, w.IsBookable(now))

	w.Status = WalkStatusPublished
	w.WalkDate = now.Add(-time.Minute)
	assert.False(t, w.IsBookable(now))
}

func TestNewInvitationCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code := NewInvitationCode()

		require.Len(t, code, codeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}

	// 100 draws from a 32^8 space should not collide
	assert.Greater(t, len(seen), 95)
}
