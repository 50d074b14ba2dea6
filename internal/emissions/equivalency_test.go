package emissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartcarbon/internal/emissions"
)

func TestDescribeEquivalency(t *testing.T) {
	tests := []struct {
		kg   float64
		want string
	}{
		{0, ""},
		{0.5, ""},
		{1, "Equivalent to driving ~5 miles"},
		{150, "Equivalent to driving ~781 miles"},
		{1000, "Equivalent to driving ~5,208 miles"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, emissions.DescribeEquivalency(tt.kg), "kg=%v", tt.kg)
	}
}

func TestMilesDriven(t *testing.T) {
	assert.InDelta(t, 1000.0, emissions.MilesDriven(192), 1e-9)
}
