// Package orbit provides the kinematic primitives the orrery is built on.
//
// Orbits are fixed kinematic paths, not integrated trajectories:
//
//   - [Offset]: maps a phase, radius and inclination to a 3D offset
//   - [Advance]: steps a phase by one frame of simulated time
//   - [Elements]: the orbital parameters of a single body
//   - [RingTable]: precomputed unit-circle samples for drawing orbit rings
//
// An inclined orbit is expressed by scaling the sine component onto the
// Y and Z axes rather than by a full rotation matrix. The projected path on
// the XY plane is an ellipse with semi-major axis r and semi-minor axis
// r·cos ι. This is visually adequate for the small inclinations of the
// planets and not plane-accurate near 90°.
//
// # Example
//
//	el := orbit.NewElements(70, 88, 7)
//	angle := orbit.Advance(0, el.Period, 1.0)
//	pos := orbit.Offset(angle, el.Distance, el.Inclination)
package orbit
