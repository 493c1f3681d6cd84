package clkmgr

// poll evaluates done until it returns true, at most budget times.
func poll(budget int, done func() bool) error {
	for range budget {
		if done() {
			return nil
		}
	}
	return ErrTimeout
}

// waitForFSM waits until the clock manager state machine accepted the last
// bypass or control write.
func (m *Manager) waitForFSM() error {
	return poll(m.Limits.FSM, func() bool {
		return m.regs.Load(Stat)&statBusy == 0
	})
}

// busyWrite stores v to r and waits for the state machine. Writes to the
// bypass and control registers issued while it is busy may be dropped.
func (m *Manager) busyWrite(r Reg, v uint32) error {
	m.regs.Store(r, v)
	return m.waitForFSM()
}
