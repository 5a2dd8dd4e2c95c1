// Package marquee is the presentation layer of a film-festival site built on
// [Ebitengine]: an infinite drag carousel of film cards with momentum and
// snapping, a depth parallax projection, an intro loader, a collapsible
// navigation panel and a hover-reveal call-to-action.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	stage, err := marquee.NewStage(marquee.SampleItems(), marquee.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	marquee.Run(stage, marquee.RunConfig{Title: "Festival", Width: 720, Height: 900})
//
// For full control, drive a [Carousel] yourself:
//
//	car, _ := marquee.NewCarousel(marquee.DefaultConfig())
//	car.Begin(400, 0)
//	car.Move(-300, 120*time.Millisecond)
//	car.End(-300, 130*time.Millisecond)
//	for car.State() != marquee.StateIdle {
//		car.Update(1.0 / 60)
//	}
//
// # Positions
//
// The carousel tracks a continuous logical position. The rendered container
// is translated by the physical position, the logical one folded into the
// wrap window [-itemHeight*itemCount, 0) by [Wrap]. Snapping is always done
// on the logical value so the seam never mis-rounds.
//
// # Gestures
//
// Input flows one way: a [GestureSource] turns mouse and touch state into
// [Intent] values, [Reduce] folds intents into a [Position], and [Parallax]
// projects the result for the renderer. Each piece is testable without a
// window. A press landing while the carousel settles stops the settle
// in place.
//
// # Tweens
//
// Settles, the loader, the nav panel and the reveal button animate with
// [TweenGroup], a thin layer over [gween].
//
// # Audio
//
// The stage asks a [CuePlayer] for short cues. The marquee/cue package
// synthesizes them with beep; a nil player keeps the stage silent.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package marquee
