// This file is part of the rp2040 kernel.

package boot

import "github.com/armkernel/rp2040/internal/kerrors"

func wrapMainError(err error) error {
	return kerrors.Errorf(kerrors.KernelMainFailed, err)
}
