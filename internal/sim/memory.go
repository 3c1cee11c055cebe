package sim

import (
	"fmt"
	"sync"

	"github.com/asecurityteam/rolling"
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/jetforge/fadecd/internal/controlparams"
	"github.com/jetforge/fadecd/internal/engines"
	"github.com/jetforge/fadecd/internal/util"
)

const eventQueueSize = 64

// MemoryHost is an in-memory Host backed by a concurrent variable map.
// It serves as the standalone simulation backend of the daemon and as
// the harness for controller tests: instrument values are set
// directly, throttle commands are captured, and read failures can be
// injected per variable.
type MemoryHost struct {
	vars     cmap.ConcurrentMap[string, float64]
	failures cmap.ConcurrentMap[string, error]
	events   chan Event

	commandMu   sync.Mutex
	lastCommand *engines.Data[controlparams.ThrottlePercent]

	windowMu      sync.Mutex
	windowSize    int
	thrustWindows map[engines.Number]*rolling.PointPolicy
	windowPrimed  map[engines.Number]bool
}

// NewMemoryHost creates a host with all variables zeroed and an empty
// event queue.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{
		vars:     cmap.New[float64](),
		failures: cmap.New[error](),
		events:   make(chan Event, eventQueueSize),
	}
}

// EnableThrustSmoothing averages thrust readings over a rolling window
// of the given sample count, which filters the oscillation of the
// engine model's thrust output at high update rates.
func (h *MemoryHost) EnableThrustSmoothing(samples int) {
	h.windowMu.Lock()
	defer h.windowMu.Unlock()
	h.windowSize = samples
	h.thrustWindows = map[engines.Number]*rolling.PointPolicy{}
	h.windowPrimed = map[engines.Number]bool{}
	for _, n := range engines.Numbers() {
		h.thrustWindows[n] = util.CreateRollingWindow(samples)
	}
}

func indexedKey(name string, engine engines.Number) string {
	return fmt.Sprintf("%s:%d", name, engine.SimIndex())
}

// SetGlobal stores a global instrument value.
func (h *MemoryHost) SetGlobal(name string, value float64) {
	h.vars.Set(name, value)
}

// SetIndexed stores a per-engine instrument value.
func (h *MemoryHost) SetIndexed(name string, engine engines.Number, value float64) {
	h.vars.Set(indexedKey(name, engine), value)

	if name == VarThrust {
		h.windowMu.Lock()
		if window, ok := h.thrustWindows[engine]; ok {
			// The very first sample primes the whole window so the
			// average is not dragged toward zero by empty slots.
			if !h.windowPrimed[engine] {
				util.FillWindow(window, h.windowSize, value)
				h.windowPrimed[engine] = true
			} else {
				window.Append(value)
			}
		}
		h.windowMu.Unlock()
	}
}

// FailReads makes every subsequent read of the given variable return
// the given error until cleared with a nil error.
func (h *MemoryHost) FailReads(name string, err error) {
	if err == nil {
		h.failures.Remove(name)
		return
	}
	h.failures.Set(name, err)
}

// PushEvent enqueues a throttle input event. Events beyond the queue
// capacity are dropped, matching the lossy nature of the input bus.
func (h *MemoryHost) PushEvent(event Event) {
	select {
	case h.events <- event:
	default:
	}
}

// LastCommand returns the most recent lever command sent to the engine
// model, or nil if none was sent yet.
func (h *MemoryHost) LastCommand() *engines.Data[controlparams.ThrottlePercent] {
	h.commandMu.Lock()
	defer h.commandMu.Unlock()
	return h.lastCommand
}

func (h *MemoryHost) Read(name string) (float64, error) {
	if err, ok := h.failures.Get(name); ok {
		return 0, err
	}
	value, _ := h.vars.Get(name)
	return value, nil
}

func (h *MemoryHost) ReadIndexed(name string, engine engines.Number) (float64, error) {
	if err, ok := h.failures.Get(name); ok {
		return 0, err
	}

	if name == VarThrust {
		h.windowMu.Lock()
		window, ok := h.thrustWindows[engine]
		h.windowMu.Unlock()
		if ok {
			return util.GetWindowAvg(window), nil
		}
	}

	value, _ := h.vars.Get(indexedKey(name, engine))
	return value, nil
}

func (h *MemoryHost) SetNamed(name string, engine engines.Number, value float64) error {
	if err, ok := h.failures.Get(name); ok {
		return err
	}
	h.vars.Set(indexedKey(name, engine), value)
	return nil
}

func (h *MemoryHost) SendThrottleCommand(levers engines.Data[controlparams.ThrottlePercent]) error {
	if err, ok := h.failures.Get(VarThrottlePosition); ok {
		return err
	}

	levers.ForEach(func(n engines.Number, percent controlparams.ThrottlePercent) {
		h.vars.Set(indexedKey(VarThrottlePosition, n), float64(percent))
	})

	h.commandMu.Lock()
	h.lastCommand = &levers
	h.commandMu.Unlock()
	return nil
}

func (h *MemoryHost) PollEvents() []Event {
	var drained []Event
	for {
		select {
		case event := <-h.events:
			drained = append(drained, event)
		default:
			return drained
		}
	}
}
