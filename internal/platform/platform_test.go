// This file is part of the rp2040 kernel.

package platform_test

import (
	"testing"

	"github.com/armkernel/rp2040/internal/ktest"
	"github.com/armkernel/rp2040/internal/platform"
)

func TestRP2040ProfileBootsCore0(t *testing.T) {
	ktest.Equate(t, platform.RP2040.BootCore, 0)
	ktest.ExpectedSuccess(t, platform.RP2040.ParkOtherCore)
}
