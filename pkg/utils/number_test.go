package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(100.0/3))
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(200.0/3))
	assert.Equal(t, 1000.0, RoundWithTwoDecimalPlace(1000))
	assert.Equal(t, -12.35, RoundWithTwoDecimalPlace(-12.345678))
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))
	assert.Equal(t, 30.0, RoundWithOneDecimalPlace(30))
	assert.Equal(t, 22.5, RoundWithOneDecimalPlace(22.49))
	assert.Equal(t, 14.3, RoundWithOneDecimalPlace(100.0/7))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(10, 0))
	assert.Equal(t, 50.0, Percent(1, 2))
	assert.Equal(t, 100.0, Percent(4, 4))
}
