// Package solar owns the root of the scene: the sun, the eight planets and
// the simulation state that the user mutates (time factor, view rotation,
// zoom).
//
// A frame is one call to [SolarSystem.Update] followed by one call to
// [SolarSystem.Render]. Input reaches the system through a [ControlPanel],
// either as discrete events ([ControlPanel.HandleEvent]) or as per-frame
// key-state polling ([ControlPanel.HandleUserInput]). All of it runs on the
// frame-loop goroutine.
package solar
