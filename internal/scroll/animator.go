package scroll

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// AnimatorOptions tunes the scroll spring.
type AnimatorOptions struct {
	Smooth    bool
	FPS       int
	Frequency float64 // angular frequency of the spring
	Damping   float64 // 1.0 is critically damped
}

// DefaultAnimatorOptions returns a quick, critically damped spring at 60 FPS.
func DefaultAnimatorOptions() AnimatorOptions {
	return AnimatorOptions{
		Smooth:    true,
		FPS:       60,
		Frequency: 8.0,
		Damping:   1.0,
	}
}

// settle thresholds, in lines and lines per second
const (
	posEpsilon = 0.5
	velEpsilon = 0.5
)

// Animator moves a scroll offset toward a target one frame at a time.
type Animator struct {
	opts      AnimatorOptions
	spring    harmonica.Spring
	pos       float64
	vel       float64
	target    float64
	active    bool
	frames    int
	maxFrames int
}

// NewAnimator creates an animator. Zero or negative option values fall back
// to the defaults.
func NewAnimator(opts AnimatorOptions) *Animator {
	def := DefaultAnimatorOptions()
	if opts.FPS <= 0 {
		opts.FPS = def.FPS
	}
	if opts.Frequency <= 0 {
		opts.Frequency = def.Frequency
	}
	if opts.Damping <= 0 {
		opts.Damping = def.Damping
	}
	return &Animator{
		opts:      opts,
		spring:    harmonica.NewSpring(harmonica.FPS(opts.FPS), opts.Frequency, opts.Damping),
		maxFrames: opts.FPS * 2,
	}
}

// Start begins a new animation from one offset to another, replacing any
// animation in progress. With smoothing off the animation completes on the
// first Step.
func (a *Animator) Start(from, to int) {
	if a.active {
		from = int(math.Round(a.pos))
	} else {
		a.vel = 0
	}
	a.pos = float64(from)
	a.target = float64(to)
	a.frames = 0
	a.active = true
}

// Step advances one frame and returns the offset to show. done is true on
// the frame that lands on the target.
func (a *Animator) Step() (offset int, done bool) {
	if !a.active {
		return int(a.target), true
	}
	if !a.opts.Smooth {
		return a.finish(), true
	}

	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	a.frames++
	if (math.Abs(a.pos-a.target) < posEpsilon && math.Abs(a.vel) < velEpsilon) || a.frames >= a.maxFrames {
		return a.finish(), true
	}
	return int(math.Round(a.pos)), false
}

func (a *Animator) finish() int {
	a.pos = a.target
	a.vel = 0
	a.active = false
	return int(a.target)
}

// Stop abandons the current animation where it is.
func (a *Animator) Stop() {
	a.active = false
	a.vel = 0
}

// Active reports whether an animation is in progress.
func (a *Animator) Active() bool {
	return a.active
}

// Target returns the offset the current or last animation heads for.
func (a *Animator) Target() int {
	return int(a.target)
}

// Frame is the delay between animation steps.
func (a *Animator) Frame() time.Duration {
	return time.Second / time.Duration(a.opts.FPS)
}

// Smooth reports whether steps are animated.
func (a *Animator) Smooth() bool {
	return a.opts.Smooth
}
