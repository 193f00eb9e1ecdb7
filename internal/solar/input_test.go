package solar_test

import (
	"github.com/rs/zerolog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/solar"
)

var _ = Describe("ControlPanel", func() {
	var (
		sys   *solar.SolarSystem
		panel *solar.ControlPanel
	)

	key := func(k solar.Key) solar.Event {
		return solar.Event{Kind: solar.EventKeyDown, Key: k}
	}

	BeforeEach(func() {
		sys = solar.New(celestial.NewNopRenderer())
		panel = solar.NewControlPanel(sys, zerolog.Nop())
	})

	It("wraps the selection in both directions", func() {
		panel.HandleEvent(key(solar.KeyLeft))
		Expect(panel.Selected()).To(Equal(7))
		Expect(panel.SelectedName()).To(Equal("Neptune"))

		panel.HandleEvent(key(solar.KeyRight))
		panel.HandleEvent(key(solar.KeyRight))
		Expect(panel.Selected()).To(Equal(1))
	})

	It("adds and removes moons on the selected planet", func() {
		panel.Select(2)
		panel.HandleEvent(key(solar.KeyUp))
		panel.HandleEvent(key(solar.KeyUp))
		Expect(sys.MoonCount(2)).To(Equal(2))

		panel.HandleEvent(key(solar.KeyDown))
		panel.HandleEvent(key(solar.KeyDown))
		panel.HandleEvent(key(solar.KeyDown))
		Expect(sys.MoonCount(2)).To(Equal(0))
	})

	It("halves and doubles the speed", func() {
		panel.HandleEvent(key(solar.KeyBracketRight))
		Expect(sys.TimeFactor()).To(Equal(2.0))
		panel.HandleEvent(key(solar.KeyBracketLeft))
		panel.HandleEvent(key(solar.KeyBracketLeft))
		Expect(sys.TimeFactor()).To(Equal(0.5))
	})

	It("rotates only while the left button is held", func() {
		panel.HandleEvent(solar.Event{Kind: solar.EventMouseMotion, X: 100, Y: 100})
		Expect(sys.State().RotationY).To(BeZero())

		panel.HandleEvent(solar.Event{Kind: solar.EventMouseDown, Button: solar.ButtonLeft, X: 10, Y: 10})
		Expect(panel.Dragging()).To(BeTrue())
		panel.HandleEvent(solar.Event{Kind: solar.EventMouseMotion, X: 30, Y: 14})
		Expect(sys.State().RotationY).To(Equal(10.0))
		Expect(sys.State().RotationX).To(Equal(2.0))

		panel.HandleEvent(solar.Event{Kind: solar.EventMouseMotion, X: 40, Y: 14})
		Expect(sys.State().RotationY).To(Equal(15.0))

		panel.HandleEvent(solar.Event{Kind: solar.EventMouseUp, Button: solar.ButtonLeft})
		panel.HandleEvent(solar.Event{Kind: solar.EventMouseMotion, X: 400, Y: 400})
		Expect(sys.State().RotationY).To(Equal(15.0))
	})

	It("ignores drags with other buttons", func() {
		panel.HandleEvent(solar.Event{Kind: solar.EventMouseDown, Button: solar.ButtonRight})
		Expect(panel.Dragging()).To(BeFalse())
	})

	It("zooms with the wheel", func() {
		panel.HandleEvent(solar.Event{Kind: solar.EventMouseWheel, Wheel: 1})
		Expect(sys.State().Zoom).To(BeNumerically("~", 1.1, 1e-12))
		panel.HandleEvent(solar.Event{Kind: solar.EventMouseWheel, Wheel: -1})
		Expect(sys.State().Zoom).To(BeNumerically("~", 0.99, 1e-12))
	})

	Describe("HandleUserInput", func() {
		It("nudges speed while +/- are held", func() {
			panel.HandleUserInput(solar.KeySet{solar.KeyPlus: true})
			Expect(sys.TimeFactor()).To(BeNumerically("~", 1.05, 1e-12))
			panel.HandleUserInput(solar.KeySet{solar.KeyMinus: true})
			Expect(sys.TimeFactor()).To(BeNumerically("~", 1.05*0.95, 1e-12))
		})

		It("never drives the speed to zero", func() {
			for i := 0; i < 10000; i++ {
				panel.HandleUserInput(solar.KeySet{solar.KeyMinus: true})
			}
			Expect(sys.TimeFactor()).To(BeNumerically(">", 0))
		})

		It("resets the view on r", func() {
			sys.RotateView(40, 40)
			panel.HandleUserInput(solar.KeySet{solar.KeyR: true})
			Expect(sys.State().RotationX).To(BeZero())
			Expect(sys.State().RotationY).To(BeZero())
		})

		It("zooms while z/x are held", func() {
			panel.HandleUserInput(solar.KeySet{solar.KeyZ: true})
			Expect(sys.State().Zoom).To(BeNumerically(">", 1))
			panel.HandleUserInput(solar.KeySet{solar.KeyX: true})
			Expect(sys.State().Zoom).To(BeNumerically("~", 1, 1e-12))
		})
	})

	Describe("UpdateMoons", func() {
		It("sets the moons of a named planet and flags a refresh", func() {
			Expect(panel.UpdateMoons("Saturn", 4)).To(BeTrue())
			Expect(sys.Planet("Saturn").MoonCount()).To(Equal(4))
			Expect(panel.ConsumeRefresh()).To(BeTrue())
			Expect(panel.ConsumeRefresh()).To(BeFalse())
		})

		It("reports unknown planets", func() {
			Expect(panel.UpdateMoons("Vulcan", 1)).To(BeFalse())
			Expect(panel.ConsumeRefresh()).To(BeFalse())
		})
	})

	It("describes the selection in its HUD lines", func() {
		panel.Select(3)
		sys.AddMoon(3)
		lines := panel.Instructions()
		Expect(lines).To(ContainElement("selected planet: Mars"))
		Expect(lines).To(ContainElement("moons: 1"))
		Expect(lines).To(ContainElement(ContainSubstring("known moons: 2")))
	})
})
