package payroll

import "sync"

type inflightKey struct {
	employeeID string
	periodID   string
}

// inflightGuard tracks calculation units currently being computed. A second
// request for the same (employee, period) while the first is still running is
// rejected, not queued; retrying after the first write lands is the caller's
// recovery path.
type inflightGuard struct {
	mu     sync.Mutex
	active map[inflightKey]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{active: make(map[inflightKey]struct{})}
}

// TryAcquire claims the (employee, period) slot. It returns false when the
// slot is already held.
func (g *inflightGuard) TryAcquire(employeeID, periodID string) bool {
	key := inflightKey{employeeID: employeeID, periodID: periodID}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, held := g.active[key]; held {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

// Release frees the slot after the calculation result has been written (or
// the unit failed). Releasing an unheld slot is a no-op.
func (g *inflightGuard) Release(employeeID, periodID string) {
	key := inflightKey{employeeID: employeeID, periodID: periodID}

	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}
