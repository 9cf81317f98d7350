//go:build linux

package wm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveWindow(t *testing.T) {
	direct := 0
	moveDirect := func() { direct++ }

	assert.NoError(t, moveWindow(func() error { return nil }, moveDirect))
	assert.Zero(t, direct)

	refused := errors.New("no _NET_MOVERESIZE_WINDOW support")
	err := moveWindow(func() error { return refused }, moveDirect)
	assert.ErrorIs(t, err, refused)
	assert.Equal(t, 1, direct, "falls back to moving the window itself")
}
