package sim

import (
	"github.com/jetforge/fadecd/internal/controlparams"
	"github.com/jetforge/fadecd/internal/engines"
)

// EventKind identifies a throttle input event intercepted from the
// simulation before it reaches the engine model.
type EventKind int

const (
	// EventAxisSet carries a signed raw axis value for both levers.
	EventAxisSet EventKind = iota
	// EventAxisSetEngine1 carries a signed raw axis value for the left lever only.
	EventAxisSetEngine1
	// EventAxisSetEngine2 carries a signed raw axis value for the right lever only.
	EventAxisSetEngine2
	// EventAxisSetEx and its per-engine variants are the extended axis
	// input family; they carry the same signed raw value.
	EventAxisSetEx
	EventAxisSetExEngine1
	EventAxisSetExEngine2
	// EventSet carries an unsigned raw value in [0, 16384] that is
	// stretched over the full bidirectional axis range.
	EventSet
	EventSetEngine1
	EventSetEngine2
	// EventFull slams the levers to the forward stop.
	EventFull
	// EventCut pulls the levers to the aft stop.
	EventCut
	// EventIncr advances the levers by one keyboard step.
	EventIncr
	EventIncrEngine1
	EventIncrEngine2
	// EventDecr retards the levers by one keyboard step.
	EventDecr
	EventDecrEngine1
	EventDecrEngine2
)

func (k EventKind) String() string {
	switch k {
	case EventAxisSet:
		return "AXIS_SET"
	case EventAxisSetEngine1:
		return "AXIS_SET_1"
	case EventAxisSetEngine2:
		return "AXIS_SET_2"
	case EventAxisSetEx:
		return "AXIS_SET_EX"
	case EventAxisSetExEngine1:
		return "AXIS_SET_EX_1"
	case EventAxisSetExEngine2:
		return "AXIS_SET_EX_2"
	case EventSet:
		return "SET"
	case EventSetEngine1:
		return "SET_1"
	case EventSetEngine2:
		return "SET_2"
	case EventFull:
		return "FULL"
	case EventCut:
		return "CUT"
	case EventIncr:
		return "INCR"
	case EventIncrEngine1:
		return "INCR_1"
	case EventIncrEngine2:
		return "INCR_2"
	case EventDecr:
		return "DECR"
	case EventDecrEngine1:
		return "DECR_1"
	case EventDecrEngine2:
		return "DECR_2"
	default:
		return "UNKNOWN"
	}
}

// Event is one intercepted throttle input. Value is only meaningful
// for the set kinds and holds the raw lever position, signed for the
// axis kinds and unsigned for the plain set kinds.
type Event struct {
	Kind  EventKind
	Value int32
}

// targets returns the engines an event acts on.
func (e Event) targets() []engines.Number {
	switch e.Kind {
	case EventAxisSetEngine1, EventAxisSetExEngine1, EventSetEngine1,
		EventIncrEngine1, EventDecrEngine1:
		return []engines.Number{engines.Engine1}
	case EventAxisSetEngine2, EventAxisSetExEngine2, EventSetEngine2,
		EventIncrEngine2, EventDecrEngine2:
		return []engines.Number{engines.Engine2}
	default:
		return engines.Numbers()
	}
}

// Apply folds the event into the selected throttle axes.
func (e Event) Apply(axes *engines.Data[controlparams.ThrottleAxis]) {
	for _, n := range e.targets() {
		switch e.Kind {
		case EventAxisSet, EventAxisSetEngine1, EventAxisSetEngine2,
			EventAxisSetEx, EventAxisSetExEngine1, EventAxisSetExEngine2:
			axes.Set(n, controlparams.AxisFromInt32(e.Value))
		case EventSet, EventSetEngine1, EventSetEngine2:
			axes.Set(n, controlparams.AxisFromUint32(uint32(e.Value)))
		case EventFull:
			axes.Set(n, controlparams.NewThrottleAxis(controlparams.AxisMax))
		case EventCut:
			axes.Set(n, controlparams.NewThrottleAxis(controlparams.AxisMin))
		case EventIncr, EventIncrEngine1, EventIncrEngine2:
			axes.Set(n, axes.Get(n).Inc())
		case EventDecr, EventDecrEngine1, EventDecrEngine2:
			axes.Set(n, axes.Get(n).Dec())
		}
	}
}

// ApplyAll folds a batch of events into the selected throttle axes in
// arrival order.
func ApplyAll(events []Event, axes *engines.Data[controlparams.ThrottleAxis]) {
	for _, event := range events {
		event.Apply(axes)
	}
}
