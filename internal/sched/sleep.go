// This file is part of the rp2040 kernel.

package sched

// Sleep yields ticks times in a row: the specification's placeholder
// for a real Duration-based wait, preserved as exactly that — a fixed
// count of Yield calls, not a wall-clock deadline — since this kernel
// has no timer interrupt to wake it and no notion of elapsed real time
// on the real target. Each yield gives every other Ready Process a turn
// before the caller resumes.
func (s *Scheduler) Sleep(ticks int) error {
	for i := 0; i < ticks; i++ {
		if err := s.Yield(); err != nil {
			return err
		}
	}
	return nil
}
