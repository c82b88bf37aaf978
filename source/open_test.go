package source

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func Test_Driver_Valid(t *testing.T) {
	for _, d := range Drivers() {
		assert.True(t, d.Valid(), d)
	}
	assert.False(t, Driver("oracle").Valid())
}

func Test_Open_UnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever", zerolog.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
