// Package sprite provides the fixed-capacity sprite pool that holds every
// renderable rectangle of the simulation.
//
// A sprite is inactive when its bounds have zero width and height; there is
// no separate active flag. Slots are handed out through Acquire so that each
// minigame names the slots it owns instead of relying on fixed indices.
package sprite

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/block-games/internal/core"
)

// Role names what a slot was acquired for.
type Role string

const (
	RoleNone   Role = ""
	RoleBlock  Role = "block"
	RoleTarget Role = "target"
	RoleShip   Role = "ship"
	RoleBullet Role = "bullet"
)

// Sprite is one renderable rectangle.
type Sprite struct {
	Bounds core.Rect // World-space position and size
	Atlas  core.Rect // Normalized (0..1) source rect in the sprite atlas
}

// Active reports whether the sprite should be drawn.
func (s Sprite) Active() bool {
	return !s.Bounds.Empty()
}

// Handle identifies an acquired slot in a Pool.
type Handle int

// Invalid is returned when a pool has no free slot left.
const Invalid Handle = -1

// Pool is a fixed-capacity array of sprites.
type Pool struct {
	sprites []Sprite
	used    int
	inert   Sprite
	roles   *intmap.Map[Handle, Role]
}

// New creates a pool with the given capacity, all slots inactive.
// The inactive form keeps the given atlas rect so renderers that do not
// skip zero-size sprites still sample a valid cell.
func New(capacity int, inactiveAtlas core.Rect) *Pool {
	p := &Pool{
		sprites: make([]Sprite, max(capacity, 0)),
		inert:   Sprite{Atlas: inactiveAtlas},
	}
	p.Reset()
	return p
}

// Reset deactivates every sprite and releases all handles.
func (p *Pool) Reset() {
	for i := range p.sprites {
		p.sprites[i] = p.inert
	}
	p.used = 0
	p.roles = intmap.New[Handle, Role](len(p.sprites))
}

// Cap returns the fixed capacity of the pool.
func (p *Pool) Cap() int {
	return len(p.sprites)
}

// Used returns the allocation high-water mark.
func (p *Pool) Used() int {
	return p.used
}

// Free returns how many slots can still be acquired.
func (p *Pool) Free() int {
	return len(p.sprites) - p.used
}

// Acquire reserves the next free slot for the given role.
// Returns Invalid and false when the pool is exhausted.
func (p *Pool) Acquire(role Role) (Handle, bool) {
	if p.used >= len(p.sprites) {
		return Invalid, false
	}
	h := Handle(p.used)
	p.used++
	p.roles.Put(h, role)
	return h, true
}

// AcquireN reserves n consecutive slots. Nothing is reserved if fewer than
// n slots are free.
func (p *Pool) AcquireN(n int, role Role) ([]Handle, bool) {
	if n < 0 || n > p.Free() {
		return nil, false
	}
	handles := make([]Handle, 0, n)
	for range n {
		h, _ := p.Acquire(role)
		handles = append(handles, h)
	}
	return handles, true
}

// Role returns the role a slot was acquired for.
func (p *Pool) Role(h Handle) Role {
	role, ok := p.roles.Get(h)
	if !ok {
		return RoleNone
	}
	return role
}

func (p *Pool) valid(h Handle) bool {
	return h >= 0 && int(h) < len(p.sprites)
}

// Get returns the sprite in slot h. Invalid handles yield the inactive form.
func (p *Pool) Get(h Handle) Sprite {
	if !p.valid(h) {
		return p.inert
	}
	return p.sprites[h]
}

// Set replaces the sprite in slot h.
func (p *Pool) Set(h Handle, s Sprite) {
	if !p.valid(h) {
		return
	}
	p.sprites[h] = s
}

// Bounds returns the bounds of slot h.
func (p *Pool) Bounds(h Handle) core.Rect {
	return p.Get(h).Bounds
}

// SetBounds updates only the bounds of slot h.
func (p *Pool) SetBounds(h Handle, r core.Rect) {
	if !p.valid(h) {
		return
	}
	p.sprites[h].Bounds = r
}

// Move translates slot h by (dx, dy), keeping its size.
func (p *Pool) Move(h Handle, dx, dy float32) {
	if !p.valid(h) {
		return
	}
	p.sprites[h].Bounds = p.sprites[h].Bounds.Translate(dx, dy)
}

// Deactivate collapses slot h to zero size. Its position is kept at x and y.
func (p *Pool) Deactivate(h Handle, x, y float32) {
	if !p.valid(h) {
		return
	}
	p.sprites[h].Bounds = core.Rect{X: x, Y: y}
}

// Active reports whether slot h currently holds a visible sprite.
func (p *Pool) Active(h Handle) bool {
	return p.Get(h).Active()
}

// ActiveCount returns the number of visible sprites.
func (p *Pool) ActiveCount() int {
	n := 0
	for _, s := range p.sprites {
		if s.Active() {
			n++
		}
	}
	return n
}

// Each calls fn for every acquired slot in allocation order.
func (p *Pool) Each(fn func(h Handle, s Sprite)) {
	for i := 0; i < p.used; i++ {
		fn(Handle(i), p.sprites[i])
	}
}

// Sprites returns a copy of the whole pool, inactive entries included.
func (p *Pool) Sprites() []Sprite {
	out := make([]Sprite, len(p.sprites))
	copy(out, p.sprites)
	return out
}
