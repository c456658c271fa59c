// This file is part of the rp2040 kernel.

package bootrom_test

import (
	"testing"

	"github.com/armkernel/rp2040/internal/bootrom"
	"github.com/armkernel/rp2040/internal/ktest"
)

func TestCRC32MPEG2KnownVector(t *testing.T) {
	// "123456789" is the standard check string for CRC catalogs; the
	// MPEG-2 variant's check value is 0x0376E6E7.
	got := bootrom.CRC32MPEG2([]byte("123456789"))
	ktest.Equate(t, got, uint32(0x0376E6E7))
}

func TestCRC32MPEG2Empty(t *testing.T) {
	got := bootrom.CRC32MPEG2(nil)
	ktest.Equate(t, got, uint32(0xFFFFFFFF))
}
