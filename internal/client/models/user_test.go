package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName_FallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want string
	}{
		{
			name: "preferred name wins",
			user: &User{Username: "jdoe", FullName: "John Doe", PreferredName: "Johnny"},
			want: "Johnny",
		},
		{
			name: "full name next",
			user: &User{Username: "jdoe", FullName: "John Doe"},
			want: "John Doe",
		},
		{
			name: "username next",
			user: &User{Username: "jdoe"},
			want: "jdoe",
		},
		{
			name: "literal fallback",
			user: &User{},
			want: "User",
		},
		{
			name: "nil user",
			user: nil,
			want: "User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestClone_Independent(t *testing.T) {
	last := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	u := &User{Username: "jdoe", Credits: 42, LastLogin: &last}

	c := u.Clone()
	require.NotSame(t, u, c)
	require.NotSame(t, u.LastLogin, c.LastLogin)
	assert.Equal(t, u, c)

	*c.LastLogin = c.LastLogin.Add(time.Hour)
	c.Credits = 0
	assert.Equal(t, int64(42), u.Credits)
	assert.Equal(t, last, *u.LastLogin)
}

func TestClone_Nil(t *testing.T) {
	var u *User
	assert.Nil(t, u.Clone())
}
