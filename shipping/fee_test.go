package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeForCity(t *testing.T) {
	tests := []struct {
		name     string
		weightKG float64
		address  string
		want     float64
	}{
		{"tier-1 local", 0.4, "House 12, Banani, Dhaka", Tiers[0].Local},
		{"tier-1 remote", 0.4, "College Road, Chattogram", Tiers[0].Remote},
		{"tier-2 local", 0.7, "Mirpur 10, Dhaka", Tiers[1].Local},
		{"tier-3 local", 1.5, "Uttara, Dhaka", Tiers[2].Local},
		{"tier-3 remote", 1.5, "Zindabazar, Sylhet", Tiers[2].Remote},
		{"over ceiling reuses top tier", 2.5, "Uttara, Dhaka", Tiers[2].Local},
		{"exactly at ceiling reuses top tier", 2.0, "Khulna Sadar", Tiers[2].Remote},
		{"city match is case-insensitive", 0.4, "banani, DHAKA", Tiers[0].Local},
		{"negative weight falls into tier 1", -1, "Dhaka", Tiers[0].Local},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FeeForCity(tt.weightKG, tt.address, DefaultLocalCity))
		})
	}
}

func TestIsLocal(t *testing.T) {
	assert.True(t, IsLocal("12/A dhaka cantonment", "Dhaka"))
	assert.False(t, IsLocal("Rajshahi Court", "Dhaka"))
}
