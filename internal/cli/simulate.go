package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/marquee"
)

// defaultScript flings up, lets the carousel coast, then drags back slowly.
const defaultScript = `{"steps": [
	{"action": "drag", "fromX": 360, "fromY": 600, "toX": 360, "toY": 300, "frames": 12},
	{"action": "wait", "frames": 90},
	{"action": "drag", "fromX": 360, "fromY": 300, "toX": 360, "toY": 500, "frames": 60},
	{"action": "wait", "frames": 60}
]}`

var errSimulationTimeout = errors.New("simulation did not settle")

type simulateOptions struct {
	script    string
	tps       int
	maxFrames int
	every     int
}

func newSimulateCmd(opts *options) *cobra.Command {
	so := simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a gesture script headlessly and print carousel positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := opts.load()
			if err != nil {
				return err
			}
			var runner *marquee.ScriptRunner
			if so.script != "" {
				runner, err = loadScript(so.script)
			} else {
				runner, err = marquee.LoadScript([]byte(defaultScript))
			}
			if err != nil {
				return err
			}
			return simulate(cmd.OutOrStdout(), f.Carousel, runner, so)
		},
	}
	cmd.Flags().StringVar(&so.script, "script", "", "gesture script (JSON); defaults to a built-in fling")
	cmd.Flags().IntVar(&so.tps, "tps", 60, "simulated ticks per second")
	cmd.Flags().IntVar(&so.maxFrames, "max-frames", 3600, "give up after this many ticks")
	cmd.Flags().IntVar(&so.every, "every", 0, "also print every N ticks (0 prints state changes only)")
	return cmd
}

// simulate drives a carousel from the script without a window. It prints a
// line per state change and a summary once the script is done and the
// carousel is idle.
func simulate(out io.Writer, cfg marquee.Config, runner *marquee.ScriptRunner, so simulateOptions) error {
	items := marquee.SampleItems()
	cat, err := marquee.NewCatalogue(items)
	if err != nil {
		return err
	}
	cfg.ItemCount = cat.Len()
	car, err := marquee.NewCarousel(cfg)
	if err != nil {
		return err
	}
	if so.tps <= 0 {
		so.tps = 60
	}
	dt := float32(1.0 / float64(so.tps))
	tick := time.Second / time.Duration(so.tps)

	src := marquee.NewGestureSource()
	src.DeviceInput = false
	src.SetDragDeadZone(cfg.DragDeadZone)
	h := src.OnIntent(car.Apply)
	defer h.Remove()

	shoot := func(label string) {
		_, _ = fmt.Fprintf(out, "screenshot %q skipped (headless)\n", label)
	}
	report := func(frame int) {
		_, _ = fmt.Fprintf(out, "frame=%d state=%s logical=%.1f physical=%.1f index=%d\n",
			frame, car.State(), car.Logical(), car.Physical(), car.Index())
	}

	prev := car.State()
	report(0)
	for frame := 1; frame <= so.maxFrames; frame++ {
		runner.Step(src, shoot)
		src.Poll(tick)
		car.Update(dt)

		if st := car.State(); st != prev || (so.every > 0 && frame%so.every == 0) {
			report(frame)
			prev = st
		}
		if runner.Done() && src.Pending() == 0 && car.State() == marquee.StateIdle {
			it := cat.At(car.Index())
			_, err := fmt.Fprintf(out, "settled frame=%d index=%d item=%q\n", frame, car.Index(), it.Title)
			return err
		}
	}
	return fmt.Errorf("%w after %d frames", errSimulationTimeout, so.maxFrames)
}
