package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmailVerificationCodeUsable(t *testing.T) {
	now := time.Now()

	t.Run("fresh code is usable", func(t *testing.T) {
		c := &EmailVerificationCode{ExpiresAt: now.Add(10 * time.Minute)}
		assert.True(t, c.Usable(now))
	})

	t.Run("expired code is not usable", func(t *testing.T) {
		c := &EmailVerificationCode{ExpiresAt: now.Add(-time.Minute)}
		assert.False(t, c.Usable(now))
	})

	t.Run("redeemed code is not usable", func(t *testing.T) {
		usedAt := now.Add(-time.Minute)
		c := &EmailVerificationCode{UsedAt: &usedAt, ExpiresAt: now.Add(10 * time.Minute)}
		assert.False(t, c.Usable(now))
	})

	t.Run("older code stays usable after a newer one is issued", func(t *testing.T) {
		c := &EmailVerificationCode{
			CreatedAt: now.Add(-10 * time.Minute),
			ExpiresAt: now.Add(5 * time.Minute),
		}
		assert.True(t, c.Usable(now))
	})
}
