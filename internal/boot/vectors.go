// This file is part of the rp2040 kernel.

package boot

import "github.com/armkernel/rp2040/internal/kerrors"

// ExceptionNumber identifies an ARMv6-M exception/interrupt by its
// position in the 16-word vector table (the initial SP and Reset
// entries occupy slots 0 and 1; this kernel only gives distinct
// handling to the faults it can usefully report on).
type ExceptionNumber int

const (
	NMI         ExceptionNumber = 2
	HardFault   ExceptionNumber = 3
	SVCall      ExceptionNumber = 11
	PendSV      ExceptionNumber = 14
	SysTick     ExceptionNumber = 15
)

// UnhandledException builds the error for an exception the kernel has
// no dedicated handler for. This repository defines no vector table, so
// nothing here calls it on a real fault; it only builds the error value.
func UnhandledException(n ExceptionNumber) error {
	return kerrors.Errorf(kerrors.UnhandledException, int(n))
}
