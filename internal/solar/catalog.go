package solar

// CatalogEntry is reference data about a real planet.
type CatalogEntry struct {
	Name  string  `json:"name" yaml:"name"`
	Size  float64 `json:"size" yaml:"size"`   // radius relative to Earth
	Moons int     `json:"moons" yaml:"moons"` // known natural satellites
}

// Catalog lists the eight planets. It is informational only: the scene is
// built from DefaultPlanets, whose distances and radii are chosen for
// display rather than scale.
var Catalog = []CatalogEntry{
	{Name: "Mercury", Size: 0.383, Moons: 0},
	{Name: "Venus", Size: 0.949, Moons: 0},
	{Name: "Earth", Size: 1.0, Moons: 1},
	{Name: "Mars", Size: 0.532, Moons: 2},
	{Name: "Jupiter", Size: 11.21, Moons: 79},
	{Name: "Saturn", Size: 9.45, Moons: 83},
	{Name: "Uranus", Size: 4.01, Moons: 27},
	{Name: "Neptune", Size: 3.88, Moons: 14},
}

// LookupCatalog returns the entry for name and whether it exists.
func LookupCatalog(name string) (CatalogEntry, bool) {
	for _, e := range Catalog {
		if e.Name == name {
			return e, true
		}
	}
	return CatalogEntry{}, false
}
