package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionValid(t *testing.T) {
	for _, pos := range Positions {
		assert.True(t, pos.Valid(), "expected %q to be valid", pos)
	}

	for _, pos := range []Position{"", "Winger", "striker", "GOALKEEPER", "Sweeper"} {
		assert.False(t, pos.Valid(), "expected %q to be invalid", pos)
	}
}
