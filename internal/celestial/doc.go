// Package celestial implements the scene graph of the orrery: the sun,
// planets and their moons.
//
// Every body shares one record (name, radius, color, position, mesh) and
// exposes the [Body] capability set. Updates are kind-specific: a [Planet]
// advances from the time factor alone, a [Moon] additionally needs the
// freshly computed position of its parent, which the planet passes down
// after updating itself.
//
// Bodies acquire a sphere mesh from the [Renderer] when constructed and
// release it exactly once through Cleanup. Owners clean their children
// before their own mesh.
//
// # Thread Safety
//
// Nothing here is safe for concurrent use. Update, Render and the moon
// mutations are expected to run on the frame-loop goroutine.
package celestial
