package eth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitcoinera/aragon/errors"
)

// Checksummed vectors from the EIP-55 reference text
var eip55Vectors = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
}

func TestIsAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"lowercase", "0xcafe6053f3e94c9b9a09f33669435e7ef1beaed0", true},
		{"uppercase body", "0xCAFE6053F3E94C9B9A09F33669435E7EF1BEAED0", true},
		{"checksummed", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", true},
		{"bad checksum", "0x5aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
		{"missing prefix", "5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed00", false},
		{"too short", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAe", false},
		{"too long", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed0", false},
		{"non-hex digit", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeg", false},
		{"ens name", "mydao.aragonid.eth", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAddress(tt.in))
		})
	}
}

func TestChecksumAddressVectors(t *testing.T) {
	for _, vector := range eip55Vectors {
		t.Run(vector, func(t *testing.T) {
			// Lowercased input must checksum back to the reference form
			got, err := ChecksumAddress(strings.ToLower(vector))
			require.NoError(t, err)
			assert.Equal(t, vector, got)

			// The reference form itself must be accepted and stable
			got, err = ChecksumAddress(vector)
			require.NoError(t, err)
			assert.Equal(t, vector, got)

			assert.True(t, IsAddress(vector))
		})
	}
}

func TestChecksumAddressInvalid(t *testing.T) {
	_, err := ChecksumAddress("not-an-address")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidAddress))
}
