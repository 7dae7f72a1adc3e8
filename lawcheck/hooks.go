package lawcheck

import (
	"log"
	"sync"

	"github.com/sarchlab/optics/hooking"
)

// ViolationLogger is a hook that writes every violation to a logger.
type ViolationLogger struct {
	*log.Logger
}

// NewViolationLogger returns a ViolationLogger that writes into the logger.
func NewViolationLogger(logger *log.Logger) *ViolationLogger {
	h := new(ViolationLogger)
	h.Logger = logger
	return h
}

// Func writes the violation into the logger.
func (h *ViolationLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosViolation {
		return
	}

	v, ok := ctx.Item.(Violation)
	if !ok {
		return
	}

	h.Logger.Print(v.String())
}

// ViolationCounter counts violations per law. It can be shared by checkers
// running on different goroutines.
type ViolationCounter struct {
	lock     sync.Mutex
	lawNames []Law
	lawCount map[Law]uint64
}

// NewViolationCounter creates a new ViolationCounter.
func NewViolationCounter() *ViolationCounter {
	return &ViolationCounter{
		lawCount: make(map[Law]uint64),
	}
}

// Func counts the violation.
func (c *ViolationCounter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosViolation {
		return
	}

	v, ok := ctx.Item.(Violation)
	if !ok {
		return
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if _, seen := c.lawCount[v.Law]; !seen {
		c.lawNames = append(c.lawNames, v.Law)
	}

	c.lawCount[v.Law]++
}

// Laws returns the violated laws in the order they were first seen.
func (c *ViolationCounter) Laws() []Law {
	c.lock.Lock()
	defer c.lock.Unlock()

	return append([]Law(nil), c.lawNames...)
}

// Count returns the number of violations of a law.
func (c *ViolationCounter) Count(law Law) uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.lawCount[law]
}

// Total returns the number of violations of all laws.
func (c *ViolationCounter) Total() uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	var total uint64
	for _, n := range c.lawCount {
		total += n
	}

	return total
}
