package solar_test

import (
	"fmt"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/solar"
)

var _ = Describe("SolarSystem", func() {
	var (
		rec *recordingRenderer
		sys *solar.SolarSystem
	)

	BeforeEach(func() {
		rec = newRecordingRenderer()
		sys = solar.New(rec)
	})

	Describe("construction", func() {
		It("has exactly eight planets in order", func() {
			Expect(sys.PlanetCount()).To(Equal(8))
			Expect(sys.PlanetName(0)).To(Equal("Mercury"))
			Expect(sys.PlanetName(7)).To(Equal("Neptune"))
			Expect(sys.SunRadius()).To(Equal(30.0))
		})

		It("places Mercury at (70,0,0) before any update", func() {
			Expect(sys.Planet("Mercury").Position()).To(Equal(orbit.Vec3{X: 70}))
		})

		It("starts with a unit time factor and a level view", func() {
			Expect(sys.TimeFactor()).To(Equal(1.0))
			Expect(sys.State().RotationX).To(BeZero())
			Expect(sys.State().RotationY).To(BeZero())
		})
	})

	Describe("planet table", func() {
		It("accepts every built-in planet", func() {
			for _, p := range solar.DefaultPlanets {
				Expect(p.Validate()).To(Succeed(), p.Name)
			}
		})

		It("rejects bad radius, distance and period", func() {
			p := solar.DefaultPlanets[2]
			p.Radius = 0
			Expect(p.Validate()).To(MatchError(orbit.ErrRadius))

			p = solar.DefaultPlanets[2]
			p.Distance = -1
			Expect(p.Validate()).To(MatchError(orbit.ErrDistance))

			p = solar.DefaultPlanets[2]
			p.Period = 0
			Expect(p.Validate()).To(MatchError(orbit.ErrPeriod))
		})

		It("builds from a custom table", func() {
			specs := solar.DefaultPlanets
			specs[0].Distance = 50
			custom := solar.New(celestial.NewNopRenderer(), solar.WithPlanets(specs))
			defer custom.Cleanup()
			Expect(custom.Planet("Mercury").Position()).To(Equal(orbit.Vec3{X: 50}))
		})

		It("falls back to the built-in planet for an invalid entry", func() {
			specs := solar.DefaultPlanets
			specs[0].Period = -3
			custom := solar.New(celestial.NewNopRenderer(), solar.WithPlanets(specs))
			defer custom.Cleanup()
			Expect(custom.Planet("Mercury").Elements().Period).To(Equal(88.0))
		})
	})

	Describe("Update", func() {
		It("advances Mercury by 2π/88 per frame at time factor 1", func() {
			sys.Update()
			mercury := sys.Planet("Mercury")
			Expect(mercury.Angle()).To(BeNumerically("~", 2*math.Pi/88, 1e-12))

			pos := mercury.Position()
			Expect(pos.X).To(BeNumerically("~", 69.82, 0.01))
			Expect(pos.Y).To(BeNumerically("~", 4.96, 0.01))
			Expect(pos.Z).To(BeNumerically("~", 0.61, 0.01))
		})

		It("keeps Earth in the XY plane", func() {
			for i := 0; i < 400; i++ {
				sys.Update()
				Expect(sys.Planet("Earth").Position().Z).To(BeZero())
			}
		})

		It("accumulates simulated time by the time factor", func() {
			Expect(sys.SetTimeFactor(2.5)).To(Succeed())
			sys.Update()
			sys.Update()
			Expect(sys.Elapsed()).To(BeNumerically("~", 5.0, 1e-12))
			Expect(sys.Frames()).To(Equal(2))
		})

		It("moves moons with their parent in the same frame", func() {
			sys.AddMoon(2)
			sys.AddMoon(2)
			earth := sys.Planet("Earth")
			for i := 0; i < 50; i++ {
				sys.Update()
				for _, m := range earth.Moons() {
					want := earth.Position().Add(m.Elements().At(m.Angle()))
					Expect(m.Position().Dist(want)).To(BeNumerically("<", 1e-9))
				}
			}
		})
	})

	Describe("SetTimeFactor", func() {
		It("rejects non-positive values and keeps the previous one", func() {
			Expect(sys.SetTimeFactor(0)).To(MatchError(solar.ErrTimeFactor))
			Expect(sys.SetTimeFactor(-1)).To(MatchError(solar.ErrTimeFactor))
			Expect(sys.TimeFactor()).To(Equal(1.0))
		})
	})

	Describe("moon management", func() {
		It("adds a moon at twice the radius of Earth", func() {
			sys.AddMoon(2)
			m := sys.Planet("Earth").Moons()[0]
			Expect(m.Elements().Distance).To(Equal(20.0))
			Expect(m.Elements().Period).To(Equal(30.0))
			Expect(sys.MoonCount(2)).To(Equal(1))
		})

		It("ignores removal on a planet without moons", func() {
			Expect(func() { sys.RemoveMoon(0) }).NotTo(Panic())
			Expect(sys.MoonCount(0)).To(Equal(0))
		})

		DescribeTable("ignores out-of-range indices",
			func(index int) {
				sys.AddMoon(index)
				sys.RemoveMoon(index)
				Expect(sys.MoonCount(index)).To(Equal(0))
				Expect(sys.PlanetName(index)).To(BeEmpty())
				Expect(sys.PlanetAt(index)).To(BeNil())
				total := 0
				for i := 0; i < sys.PlanetCount(); i++ {
					total += sys.MoonCount(i)
				}
				Expect(total).To(BeZero())
			},
			Entry("negative", -1),
			Entry("one past the end", 8),
			Entry("far out", 99),
		)

		It("keeps moon count equal to the moon slice length", func() {
			ops := []func(){
				func() { sys.AddMoon(4) },
				func() { sys.AddMoon(4) },
				func() { sys.RemoveMoon(4) },
				func() { sys.Planet("Jupiter").SetNumberOfMoons(6) },
				func() { sys.Planet("Jupiter").SetNumberOfMoons(-2) },
				func() { sys.RemoveMoon(4) },
				func() { sys.Planet("Jupiter").SetNumberOfMoons(3) },
			}
			jupiter := sys.Planet("Jupiter")
			for _, op := range ops {
				op()
				Expect(jupiter.MoonCount()).To(Equal(len(jupiter.Moons())))
			}
			Expect(jupiter.MoonCount()).To(Equal(3))
		})

		It("returns nil for unknown planet names", func() {
			Expect(sys.Planet("Pluto")).To(BeNil())
		})
	})

	Describe("RotateView", func() {
		It("scales the drag by one half", func() {
			sys.RotateView(10, -4)
			Expect(sys.State().RotationY).To(Equal(5.0))
			Expect(sys.State().RotationX).To(Equal(-2.0))
		})

		It("clamps pitch and leaves yaw unbounded", func() {
			for i := 0; i < 100; i++ {
				sys.RotateView(50, 30)
				Expect(sys.State().RotationX).To(BeNumerically("<=", 90))
			}
			Expect(sys.State().RotationX).To(Equal(90.0))
			Expect(sys.State().RotationY).To(Equal(2500.0))

			sys.RotateView(0, -1000)
			Expect(sys.State().RotationX).To(Equal(-90.0))
		})
	})

	Describe("Render", func() {
		It("walks sun, then ring, planet and moons per planet, under the view rotation", func() {
			sys.RotateView(20, 10)
			sys.AddMoon(0)
			sys.Update()
			rec.calls = nil

			sys.Render()

			mercury := sys.Planet("Mercury")
			moon := mercury.Moons()[0]
			Expect(rec.calls[0]).To(Equal("push:5:10"))
			Expect(rec.calls[1]).To(Equal("light"))
			Expect(rec.calls[2]).To(Equal(fmt.Sprintf("sphere:%d", sys.Sun().Mesh())))
			Expect(rec.calls[3:6]).To(Equal([]string{
				"ring",
				fmt.Sprintf("sphere:%d", mercury.Mesh()),
				fmt.Sprintf("sphere:%d", moon.Mesh()),
			}))
			Expect(rec.calls[len(rec.calls)-1]).To(Equal("pop"))
			// sun + 8 planets + 1 moon spheres, 8 rings, light, push, pop
			Expect(rec.calls).To(HaveLen(10 + 8 + 3))
		})

		It("places the light at the origin", func() {
			sys.Render()
			Expect(rec.lights).To(HaveLen(1))
			Expect(rec.lights[0].Position).To(Equal(orbit.Vec3{}))
		})

		It("draws moons at the position computed this frame", func() {
			sys.AddMoon(3)
			sys.Update()
			sys.Render()
			moon := sys.Planet("Mars").Moons()[0]
			Expect(rec.drawn[moon.Mesh()]).To(Equal(moon.Position()))
		})
	})

	Describe("Bodies", func() {
		It("lists bodies in render order", func() {
			sys.AddMoon(1)
			bodies := sys.Bodies()
			Expect(bodies).To(HaveLen(10))
			Expect(bodies[0].Name()).To(Equal("Sun"))
			Expect(bodies[2].Name()).To(Equal("Venus"))
			Expect(bodies[3].Name()).To(Equal("Moon"))
		})
	})

	Describe("Cleanup", func() {
		It("releases every mesh exactly once", func() {
			sys.AddMoon(2)
			sys.AddMoon(5)
			var meshes []celestial.Mesh
			meshes = append(meshes, sys.Sun().Mesh())
			for _, p := range sys.Planets() {
				meshes = append(meshes, p.Mesh())
				for _, m := range p.Moons() {
					meshes = append(meshes, m.Mesh())
				}
			}

			sys.Cleanup()
			sys.Cleanup()

			for _, m := range meshes {
				Expect(rec.released[m]).To(Equal(1))
			}
			Expect(rec.Live()).To(BeZero())
		})
	})
})
