package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "hello", want: "hello"},
		{name: "tags removed", in: "<h1>Your OTP is <strong>123456</strong></h1>", want: "Your OTP is 123456"},
		{name: "empty input", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, stripTags(tc.in))
		})
	}
}
