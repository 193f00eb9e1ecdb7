// Package viz draws the solar system in a terminal.
//
// [TermRenderer] implements the scene renderer on a braille [Canvas]: each
// cell packs 2x4 dots and carries one foreground color. A look-at [Camera]
// projects scene space onto the dot grid with perspective, and spheres are
// shaded by the angle between the viewer and the sun.
//
// Themes and lipgloss styles for the terminal HUD also live here.
package viz
