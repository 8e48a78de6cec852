package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thecosmeticshop/backend/models"
)

func TestOTPMatches(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		user models.User
		code string
		want bool
	}{
		{
			name: "correct code before expiry",
			user: models.User{OTP: "123456", OTPExpires: now.Add(5 * time.Minute)},
			code: "123456",
			want: true,
		},
		{
			name: "wrong code",
			user: models.User{OTP: "123456", OTPExpires: now.Add(5 * time.Minute)},
			code: "654321",
			want: false,
		},
		{
			name: "correct code after expiry",
			user: models.User{OTP: "123456", OTPExpires: now.Add(-time.Minute)},
			code: "123456",
			want: false,
		},
		{
			name: "cleared code never matches",
			user: models.User{OTP: "", OTPExpires: now.Add(5 * time.Minute)},
			code: "",
			want: false,
		},
		{
			name: "expiry exactly now still matches",
			user: models.User{OTP: "123456", OTPExpires: now},
			code: "123456",
			want: true,
		},
		{
			name: "expiry one instant in the past",
			user: models.User{OTP: "123456", OTPExpires: now.Add(-time.Nanosecond)},
			code: "123456",
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, otpMatches(tc.user, tc.code, now))
		})
	}
}
