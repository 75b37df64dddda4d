package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	cases := []struct {
		name             string
		inputTopic       string
		expectedIdentity Identity
		expectedErr      error
	}{
		{
			name:       "valid five segment topic",
			inputTopic: "env1/5f9e6bfa-9c2e-4b7a-8f68-1d2f1a7e9c01/locA/7ab2b8a2-46a1-4f3b-9d9e-0c6a2e8b5f44/evt",
			expectedIdentity: Identity{
				Env:      "env1",
				OwnerID:  "5f9e6bfa-9c2e-4b7a-8f68-1d2f1a7e9c01",
				Location: "locA",
				DeviceID: "7ab2b8a2-46a1-4f3b-9d9e-0c6a2e8b5f44",
				Channel:  "evt",
			},
			expectedErr: nil,
		},
		{
			name:       "leading separator stripped",
			inputTopic: "/dev/owner1/kitchen/device1/evt",
			expectedIdentity: Identity{
				Env:      "dev",
				OwnerID:  "owner1",
				Location: "kitchen",
				DeviceID: "device1",
				Channel:  "evt",
			},
			expectedErr: nil,
		},
		{
			name:        "too few segments",
			inputTopic:  "env1/owner/loc",
			expectedErr: ErrInvalidTopic,
		},
		{
			name:        "too many segments",
			inputTopic:  "env1/owner/loc/device/evt/extra",
			expectedErr: ErrInvalidTopic,
		},
		{
			name:        "doubled separator yields empty segment",
			inputTopic:  "env1//loc/device/evt",
			expectedErr: ErrInvalidTopic,
		},
		{
			name:        "trailing separator yields empty segment",
			inputTopic:  "env1/owner/loc/device/evt/",
			expectedErr: ErrInvalidTopic,
		},
		{
			name:        "two leading separators",
			inputTopic:  "//owner/loc/device/evt",
			expectedErr: ErrInvalidTopic,
		},
		{
			name:        "empty topic",
			inputTopic:  "",
			expectedErr: ErrInvalidTopic,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := Parse(tt.inputTopic)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expectedIdentity, identity)
		})
	}
}
