package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccount_UnlockDisplayTime(t *testing.T) {
	unlockAt := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	t.Run("applies the account timezone offset", func(t *testing.T) {
		account := &Account{
			AutoUnlockedAt: &unlockAt,
			TimezoneOffset: 8 * 60,
		}

		assert.Equal(t, "14 Mar 2026 17:30", account.UnlockDisplayTime())
	})

	t.Run("negative offset", func(t *testing.T) {
		account := &Account{
			AutoUnlockedAt: &unlockAt,
			TimezoneOffset: -5 * 60,
		}

		assert.Equal(t, "14 Mar 2026 04:30", account.UnlockDisplayTime())
	})

	t.Run("no scheduled unlock", func(t *testing.T) {
		account := &Account{}

		assert.Empty(t, account.UnlockDisplayTime())
	})
}

func TestAccountStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusActive.IsValid())
	assert.True(t, StatusSuspended.IsValid())
	assert.False(t, AccountStatus("DELETED").IsValid())
	assert.False(t, AccountStatus("").IsValid())
}
