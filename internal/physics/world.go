package physics

import (
	"fmt"

	"github.com/vovakirdan/tui-grow/internal/core"
)

// World owns every registered body and the contacts found by the last Step.
// Bodies are processed in insertion order, so contact lists are deterministic.
type World struct {
	gravity  core.Vec2
	bodies   map[core.EntityID]*Body
	order    []core.EntityID
	contacts map[core.EntityID][]core.EntityID
}

// NewWorld creates an empty world with the given gravity (units per second squared).
func NewWorld(gravity core.Vec2) *World {
	return &World{
		gravity:  gravity,
		bodies:   make(map[core.EntityID]*Body),
		contacts: make(map[core.EntityID][]core.EntityID),
	}
}

// Add registers a body under the caller's entity ID.
func (w *World) Add(id core.EntityID, b Body) error {
	if _, exists := w.bodies[id]; exists {
		return fmt.Errorf("physics: body %d already exists", id)
	}
	body := b
	w.bodies[id] = &body
	w.order = append(w.order, id)
	return nil
}

// Remove unregisters a body. Unknown IDs are ignored.
// The body also disappears from every contact list of the last step.
func (w *World) Remove(id core.EntityID) {
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	delete(w.contacts, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	for owner, list := range w.contacts {
		w.contacts[owner] = without(list, id)
	}
}

// Body returns the body registered under id. The pointer stays valid until Remove.
func (w *World) Body(id core.EntityID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Len returns the number of registered bodies.
func (w *World) Len() int {
	return len(w.order)
}

// Clear removes every body.
func (w *World) Clear() {
	w.bodies = make(map[core.EntityID]*Body)
	w.contacts = make(map[core.EntityID][]core.EntityID)
	w.order = w.order[:0]
}

// SetGravity replaces the gravity vector applied to dynamic bodies.
func (w *World) SetGravity(g core.Vec2) {
	w.gravity = g
}

// Gravity returns the current gravity vector.
func (w *World) Gravity() core.Vec2 {
	return w.gravity
}

// Contacts returns the bodies touching id after the last Step, in insertion order.
// The returned slice is a copy; removing bodies while iterating it is safe.
func (w *World) Contacts(id core.EntityID) []core.EntityID {
	list := w.contacts[id]
	if len(list) == 0 {
		return nil
	}
	return append([]core.EntityID(nil), list...)
}

// Step advances the world by dt seconds.
//
// Order of operations:
//  1. Dynamic bodies accelerate by gravity, then every moving body integrates its velocity
//  2. Each dynamic body touching a static body is pushed out and bounces
//  3. Every touching pair that involves a moving body is recorded as a contact
func (w *World) Step(dt float64) {
	for _, id := range w.order {
		b := w.bodies[id]
		switch b.Kind {
		case Dynamic:
			b.Vel = b.Vel.Add(w.gravity.Scale(dt))
			b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		case Kinematic:
			b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		}
	}

	for id := range w.contacts {
		delete(w.contacts, id)
	}

	for i, aID := range w.order {
		a := w.bodies[aID]
		for _, bID := range w.order[i+1:] {
			b := w.bodies[bID]
			if a.Kind != Dynamic && b.Kind != Dynamic {
				// Static and kinematic bodies pass through each other silently
				continue
			}

			normal, depth, touching := separation(a, b)
			if !touching {
				continue
			}

			w.contacts[aID] = append(w.contacts[aID], bID)
			w.contacts[bID] = append(w.contacts[bID], aID)

			switch {
			case a.Kind == Dynamic && b.Kind == Static:
				resolve(a, b, normal, depth)
			case b.Kind == Dynamic && a.Kind == Static:
				resolve(b, a, normal.Neg(), depth)
			}
		}
	}
}

// resolve pushes dyn out of st along normal and reflects the approaching
// velocity component, scaled by the pair's average restitution.
func resolve(dyn, st *Body, normal core.Vec2, depth float64) {
	if depth > 0 {
		dyn.Pos = dyn.Pos.Add(normal.Scale(depth))
	}
	vn := dyn.Vel.Dot(normal)
	if vn >= 0 {
		return
	}
	e := (dyn.Restitution + st.Restitution) / 2
	dyn.Vel = dyn.Vel.Sub(normal.Scale((1 + e) * vn))
}

func without(list []core.EntityID, id core.EntityID) []core.EntityID {
	out := list[:0]
	for _, other := range list {
		if other != id {
			out = append(out, other)
		}
	}
	return out
}
