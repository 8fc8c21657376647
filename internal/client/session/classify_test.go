package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loomworks/loomctl/internal/client/api"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "401 is auth",
			err:  &api.CallError{Status: 401, Err: api.ErrUnauthorized},
			want: KindAuth,
		},
		{
			name: "403 is auth",
			err:  &api.CallError{Status: 403, Err: api.ErrUnauthorized},
			want: KindAuth,
		},
		{
			name: "status outranks network flag",
			err:  &api.CallError{Status: 401, Network: true, Err: api.ErrUnauthorized},
			want: KindAuth,
		},
		{
			name: "no response with network flag",
			err:  &api.CallError{Network: true, Err: api.ErrUnavailable},
			want: KindNetwork,
		},
		{
			name: "5xx is server",
			err:  &api.CallError{Status: 500, Err: errors.New("boom")},
			want: KindServer,
		},
		{
			name: "unexpected 2xx body is server",
			err:  &api.CallError{Status: 200, Err: errors.New("profile payload missing")},
			want: KindServer,
		},
		{
			name: "no response, no network flag",
			err:  &api.CallError{Err: errors.New("canceled")},
			want: KindOther,
		},
		{
			name: "wrapped call error still classifies",
			err:  fmt.Errorf("fetching profile: %w", &api.CallError{Status: 503, Err: errors.New("down")}),
			want: KindServer,
		},
		{
			name: "non-transport error",
			err:  errors.New("something else"),
			want: KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "auth", KindAuth.String())
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "server", KindServer.String())
	assert.Equal(t, "other", KindOther.String())
}
