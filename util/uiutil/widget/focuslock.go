package widget

// Single pointer capture slot. At most one node holds it at any time.
// Not a mutex: only used from the ui goroutine.
type FocusLock struct {
	holder NodeID
	cancel func()
}

// Returns true if the lock was acquired, or was already held by id.
func (fl *FocusLock) Lock(id NodeID) bool {
	return fl.LockCancel(id, nil)
}

// Like Lock. The cancel func runs if the lock is broken (see Break).
func (fl *FocusLock) LockCancel(id NodeID, cancel func()) bool {
	if id == 0 {
		return false
	}
	if fl.holder != 0 && fl.holder != id {
		return false
	}
	fl.holder = id
	fl.cancel = cancel
	return true
}

// Only the holder can unlock.
func (fl *FocusLock) Unlock(id NodeID) bool {
	if id == 0 || fl.holder != id {
		return false
	}
	fl.holder = 0
	fl.cancel = nil
	return true
}

// Unlocks regardless of the holder and runs its cancel func. Used when the holder left the tree.
func (fl *FocusLock) Break() {
	cancel := fl.cancel
	fl.holder = 0
	fl.cancel = nil
	if cancel != nil {
		cancel()
	}
}

func (fl *FocusLock) Holder() (NodeID, bool) {
	return fl.holder, fl.holder != 0
}

func (fl *FocusLock) IsHeldBy(id NodeID) bool {
	return id != 0 && fl.holder == id
}
