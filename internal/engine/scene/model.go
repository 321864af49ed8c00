package scene

import "github.com/Faultbox/surfview/pkg/geometry"

// Model is the root node all loaded objects hang from. Drags and
// autorotation transform the model, never the individual objects.
type Model struct {
	Transform

	children []*Object
}

func newModel() *Model {
	return &Model{Transform: NewTransform()}
}

// Add parents a new object for the record, placed at its centroid.
func (m *Model) Add(rec *geometry.Record, name string) *Object {
	o := &Object{
		Transform: NewTransform(),
		Name:      name,
		Geometry:  rec,
		model:     m,
	}
	o.resetPlacement()
	m.children = append(m.children, o)
	return o
}

// Remove detaches an object. It reports whether the object was a child.
func (m *Model) Remove(o *Object) bool {
	for i, c := range m.children {
		if c == o {
			m.children = append(m.children[:i], m.children[i+1:]...)
			o.model = nil
			return true
		}
	}
	return false
}

// Clear detaches every object.
func (m *Model) Clear() {
	for _, c := range m.children {
		c.model = nil
	}
	m.children = nil
}

// Children returns the attached objects in insertion order.
func (m *Model) Children() []*Object {
	return m.children
}

// ByName returns the first child with the given name.
func (m *Model) ByName(name string) *Object {
	for _, c := range m.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}
