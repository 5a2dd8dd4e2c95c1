package marquee

import "github.com/tanema/gween/ease"

// Title roll defaults.
const (
	titleStagger  = 0.05
	titleDuration = 2
	titlePeriod   = 10
	titleRollRows = 7 // glyph heights a character travels at the top of its roll
)

// TitleRoll animates a title one character at a time: each glyph rolls down
// through a column of copies of itself and springs back, staggered left to
// right. The roll replays every Period seconds and restarts on SetText.
type TitleRoll struct {
	Text     string
	Stagger  float32
	Duration float32
	Period   float32

	elapsed float32
	cycle   int
}

// NewTitleRoll returns a roll for text with the site's timing.
func NewTitleRoll(text string) *TitleRoll {
	return &TitleRoll{
		Text:     text,
		Stagger:  titleStagger,
		Duration: titleDuration,
		Period:   titlePeriod,
	}
}

// SetText replaces the title and replays the roll.
func (r *TitleRoll) SetText(text string) {
	r.Text = text
	r.Restart()
}

// Restart replays the roll from the first character.
func (r *TitleRoll) Restart() {
	r.elapsed = 0
}

// Cycle returns how many times the roll has replayed on its own.
func (r *TitleRoll) Cycle() int { return r.cycle }

// Update advances the roll by dt seconds.
func (r *TitleRoll) Update(dt float32) {
	r.elapsed += dt
	if r.Period > 0 {
		for r.elapsed >= r.Period {
			r.elapsed -= r.Period
			r.cycle++
		}
	}
}

// Rolling reports whether any character is mid-roll.
func (r *TitleRoll) Rolling() bool {
	n := len([]rune(r.Text))
	if n == 0 {
		return false
	}
	return r.elapsed < r.Duration+float32(n-1)*r.Stagger
}

// Offset returns the roll of character i in glyph heights, 0 at rest. The
// roll rushes down to seven heights, rebounds to one and eases home over
// Duration.
func (r *TitleRoll) Offset(i int) float64 {
	if r.Duration <= 0 {
		return 0
	}
	local := r.elapsed - float32(i)*r.Stagger
	if local <= 0 || local >= r.Duration {
		return 0
	}
	p := local / r.Duration
	switch {
	case p < 0.4:
		return float64(ease.InQuart(p/0.4, 0, titleRollRows, 1))
	case p < 0.6:
		return float64(ease.InQuart((p-0.4)/0.2, titleRollRows, 1-titleRollRows, 1))
	default:
		return float64(ease.InOutQuart((p-0.6)/0.4, 1, -1, 1))
	}
}
