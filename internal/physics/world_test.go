package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-grow/internal/core"
)

const dt = 1.0 / 60.0

func TestWorldAddDuplicate(t *testing.T) {
	w := NewWorld(core.Vec2{})
	if err := w.Add(1, Body{Kind: Static, Shape: Rectangle(10, 10)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := w.Add(1, Body{Kind: Static, Shape: Rectangle(10, 10)}); err == nil {
		t.Error("Add() should reject a duplicate ID")
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", w.Len())
	}
}

func TestDynamicBodyFallsUnderGravity(t *testing.T) {
	w := NewWorld(core.V(0, -1000))
	if err := w.Add(1, Body{Kind: Dynamic, Shape: Rectangle(10, 10)}); err != nil {
		t.Fatal(err)
	}

	w.Step(dt)

	b, _ := w.Body(1)
	if b.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %f, expected negative after one step", b.Vel.Y)
	}
	if b.Pos.Y >= 0 {
		t.Errorf("Pos.Y = %f, expected the body to fall", b.Pos.Y)
	}
}

func TestKinematicBodyIgnoresGravity(t *testing.T) {
	w := NewWorld(core.V(0, -1000))
	if err := w.Add(1, Body{Kind: Kinematic, Shape: Circle(5), Vel: core.V(60, 0)}); err != nil {
		t.Fatal(err)
	}

	w.Step(dt)

	b, _ := w.Body(1)
	if math.Abs(b.Pos.X-1) > 1e-9 || b.Pos.Y != 0 {
		t.Errorf("Pos = %v, expected (1, 0)", b.Pos)
	}
	if b.Vel != core.V(60, 0) {
		t.Errorf("Vel = %v, expected unchanged", b.Vel)
	}
}

func TestDynamicBouncesOffStatic(t *testing.T) {
	w := NewWorld(core.Vec2{})
	// Floor whose top face is at y = 0
	if err := w.Add(1, Body{Kind: Static, Shape: Rectangle(200, 20), Pos: core.V(0, -10), Restitution: 1}); err != nil {
		t.Fatal(err)
	}
	// Box resting slightly inside the floor, moving down
	if err := w.Add(2, Body{Kind: Dynamic, Shape: Rectangle(10, 10), Pos: core.V(0, 5), Vel: core.V(0, -120), Restitution: 1}); err != nil {
		t.Fatal(err)
	}

	w.Step(dt)

	b, _ := w.Body(2)
	if b.Vel.Y <= 0 {
		t.Errorf("Vel.Y = %f, expected upward bounce", b.Vel.Y)
	}
	if math.Abs(b.Vel.Y-120) > 1e-9 {
		t.Errorf("Vel.Y = %f, expected 120 with perfect restitution", b.Vel.Y)
	}
	if b.Pos.Y-5 < -1e-9 {
		t.Errorf("Pos.Y = %f, expected box pushed back on top of the floor", b.Pos.Y)
	}

	contacts := w.Contacts(2)
	if len(contacts) != 1 || contacts[0] != 1 {
		t.Errorf("Contacts(2) = %v, expected [1]", contacts)
	}
}

func TestRestitutionAveraged(t *testing.T) {
	w := NewWorld(core.Vec2{})
	if err := w.Add(1, Body{Kind: Static, Shape: Rectangle(20, 200), Pos: core.V(10, 0), Restitution: 1}); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(2, Body{Kind: Dynamic, Shape: Rectangle(10, 10), Pos: core.V(-4, 0), Vel: core.V(60, 0), Restitution: 0.8}); err != nil {
		t.Fatal(err)
	}

	w.Step(dt)

	b, _ := w.Body(2)
	if math.Abs(b.Vel.X-(-54)) > 1e-9 {
		t.Errorf("Vel.X = %f, expected -54 (restitution 0.9)", b.Vel.X)
	}
}

func TestContactsInInsertionOrder(t *testing.T) {
	w := NewWorld(core.Vec2{})
	if err := w.Add(3, Body{Kind: Kinematic, Shape: Circle(2), Pos: core.V(6, 0)}); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(1, Body{Kind: Kinematic, Shape: Circle(2), Pos: core.V(-6, 0)}); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(2, Body{Kind: Dynamic, Shape: Rectangle(10, 10)}); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(4, Body{Kind: Kinematic, Shape: Circle(2), Pos: core.V(0, 6)}); err != nil {
		t.Fatal(err)
	}

	w.Step(0)

	got := w.Contacts(2)
	if len(got) != 3 {
		t.Fatalf("Contacts(2) = %v, expected 3 contacts", got)
	}
	// Insertion order, not ID order
	expected := []core.EntityID{3, 1, 4}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Contacts(2) = %v, expected %v", got, expected)
			break
		}
	}
	// Kinematic bodies do not get collision response
	b, _ := w.Body(2)
	if b.Pos != (core.Vec2{}) || b.Vel != (core.Vec2{}) {
		t.Errorf("Dynamic body moved by kinematic contact: pos %v vel %v", b.Pos, b.Vel)
	}
}

func TestKinematicAndStaticDoNotContact(t *testing.T) {
	w := NewWorld(core.Vec2{})
	if err := w.Add(1, Body{Kind: Static, Shape: Rectangle(100, 20)}); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(2, Body{Kind: Kinematic, Shape: Circle(5)}); err != nil {
		t.Fatal(err)
	}

	w.Step(dt)

	if c := w.Contacts(2); len(c) != 0 {
		t.Errorf("Contacts(2) = %v, expected none", c)
	}
}

func TestRemoveDropsContacts(t *testing.T) {
	w := NewWorld(core.Vec2{})
	if err := w.Add(1, Body{Kind: Dynamic, Shape: Rectangle(10, 10)}); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(2, Body{Kind: Kinematic, Shape: Circle(3)}); err != nil {
		t.Fatal(err)
	}
	w.Step(0)

	contacts := w.Contacts(1)
	w.Remove(2)

	if len(contacts) != 1 {
		t.Errorf("copy returned before Remove changed: %v", contacts)
	}
	if c := w.Contacts(1); len(c) != 0 {
		t.Errorf("Contacts(1) after Remove = %v, expected none", c)
	}
	if _, ok := w.Body(2); ok {
		t.Error("Body(2) should be gone")
	}
	w.Remove(99) // unknown IDs are ignored
}

func TestCircleRectSeparation(t *testing.T) {
	rect := &Body{Shape: Rectangle(20, 20)}

	tests := []struct {
		name     string
		pos      core.Vec2
		touching bool
		normal   core.Vec2
	}{
		{"right of rect", core.V(14, 0), true, core.V(1, 0)},
		{"above rect", core.V(0, 13), true, core.V(0, 1)},
		{"far away", core.V(40, 40), false, core.Vec2{}},
		{"center inside", core.V(0, 8), true, core.V(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			circle := &Body{Shape: Circle(5), Pos: tc.pos}
			normal, _, touching := separation(circle, rect)
			if touching != tc.touching {
				t.Fatalf("touching = %v, expected %v", touching, tc.touching)
			}
			if touching && normal != tc.normal {
				t.Errorf("normal = %v, expected %v", normal, tc.normal)
			}
		})
	}
}
