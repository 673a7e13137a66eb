package ordernum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "ORD-20260830-000001", formatNumber("20260830", 1))
	assert.Equal(t, "ORD-20260830-000123", formatNumber("20260830", 123))
	assert.Equal(t, "ORD-20261231-1000000", formatNumber("20261231", 1000000))
}
