//go:build !arm

// This file is part of the rp2040 kernel.

package boot_test

import (
	"errors"
	"testing"

	"github.com/armkernel/rp2040/internal/boot"
	"github.com/armkernel/rp2040/internal/kerrors"
	"github.com/armkernel/rp2040/internal/ktest"
)

func TestRunZeroesBSSAndCopiesData(t *testing.T) {
	bss := []byte{1, 2, 3, 4}
	load := []byte{9, 9, 9}
	run := make([]byte, 3)

	err := boot.Run(boot.Sections{BSS: bss, DataLoad: load, DataRun: run}, func() error {
		return nil
	})
	ktest.Equate(t, err, nil)
	ktest.Equate(t, bss, []byte{0, 0, 0, 0})
	ktest.Equate(t, run, []byte{9, 9, 9})
}

func TestRunWrapsMainError(t *testing.T) {
	boom := errors.New("boom")
	err := boot.Run(boot.Sections{}, func() error { return boom })
	ktest.ExpectedSuccess(t, kerrors.Is(err, kerrors.KernelMainFailed))
}

func TestRunHostSim(t *testing.T) {
	called := false
	err := boot.RunHostSim(16, 16, func() error {
		called = true
		return nil
	})
	ktest.Equate(t, err, nil)
	ktest.ExpectedSuccess(t, called)
}

func TestUnhandledExceptionError(t *testing.T) {
	err := boot.UnhandledException(boot.HardFault)
	ktest.ExpectedSuccess(t, kerrors.Is(err, kerrors.UnhandledException))
}
