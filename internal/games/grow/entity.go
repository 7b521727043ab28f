package grow

import "github.com/vovakirdan/tui-grow/internal/core"

// Kind classifies an entity. Contact resolution switches on it.
type Kind int

const (
	KindPlayer   Kind = iota // The player-controlled square
	KindObstacle             // A numbered ball
	KindWall                 // One of the four arena walls
	KindLabel                // A line of game over text
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindObstacle:
		return "Obstacle"
	case KindWall:
		return "Wall"
	case KindLabel:
		return "Label"
	default:
		return "Unknown"
	}
}

// Scope says which game state owns an entity. Leaving that state destroys it.
type Scope int

const (
	ScopePlaying Scope = iota
	ScopeGameOver
)

// Entity is a typed record in the registry. Which fields matter depends on Kind.
type Entity struct {
	ID     core.EntityID
	Kind   Kind
	Scope  Scope
	Weight int    // Player and Obstacle
	Edge   Edge   // Wall
	Text   string // Label
}

// Physical reports whether the entity has a body in the physics world.
func (e *Entity) Physical() bool {
	return e.Kind != KindLabel
}

// Registry stores entities by stable ID and remembers creation order.
type Registry struct {
	nextID   core.EntityID
	entities map[core.EntityID]*Entity
	order    []core.EntityID
}

// NewRegistry creates an empty registry. The first ID handed out is 1.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[core.EntityID]*Entity),
	}
}

// Add stores a copy of e under a fresh ID and returns that ID.
// IDs are never reused, even after Remove.
func (r *Registry) Add(e Entity) core.EntityID {
	r.nextID++
	e.ID = r.nextID
	r.entities[e.ID] = &e
	r.order = append(r.order, e.ID)
	return e.ID
}

// Remove deletes an entity. It reports whether the entity existed.
func (r *Registry) Remove(id core.EntityID) bool {
	if _, ok := r.entities[id]; !ok {
		return false
	}
	delete(r.entities, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the entity with the given ID.
func (r *Registry) Get(id core.EntityID) (*Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.order)
}

// Filter returns the entities matching keep, in creation order.
func (r *Registry) Filter(keep func(*Entity) bool) []*Entity {
	var out []*Entity
	for _, id := range r.order {
		if e := r.entities[id]; keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// OfKind returns all entities of kind k, in creation order.
func (r *Registry) OfKind(k Kind) []*Entity {
	return r.Filter(func(e *Entity) bool { return e.Kind == k })
}

// InScope returns all entities owned by scope s, in creation order.
func (r *Registry) InScope(s Scope) []*Entity {
	return r.Filter(func(e *Entity) bool { return e.Scope == s })
}
