package jitter

import "time"
import "math/rand"

// Default number of values in a [Cache] table.
const DefaultSize = 128

// Default regeneration interval for [Cache] tables.
const DefaultInterval = 80*time.Millisecond

// A table of pseudo-random values regenerated on a timer. See the
// package overview for the general idea.
//
// The zero value is not valid, use [New]() instead.
type Cache struct {
	values []uint16
	lastRegen time.Time
	interval time.Duration
	clock func() time.Time
	rng *rand.Rand
	regenCount uint64
}

// Creates a new cache with the given table size and regeneration
// interval. The table is generated right away. Non-positive sizes
// or negative intervals will panic.
func New(size int, interval time.Duration) *Cache {
	if size <= 0 { panic("jitter.New requires size > 0") }
	if interval < 0 { panic("jitter.New requires interval >= 0") }
	cache := &Cache{
		values: make([]uint16, size),
		interval: interval,
		clock: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano() ^ 0x36285016_051A1E33)),
	}
	cache.Regenerate()
	return cache
}

// Sets the clock used to determine when the table has to be
// regenerated. Mostly useful for tests and replays. Passing nil
// restores the default clock ([time.Now]).
func (self *Cache) SetClock(clock func() time.Time) {
	if clock == nil { clock = time.Now }
	self.clock = clock
	self.lastRegen = clock()
}

// Reseeds the random source. Combined with [Cache.SetClock](), this
// makes jitter sequences fully deterministic. The table is regenerated
// immediately.
func (self *Cache) Seed(seed int64) {
	self.rng = rand.New(rand.NewSource(seed))
	self.Regenerate()
}

// Sets the minimum time that must elapse before [Cache.Refresh]()
// regenerates the table. Negative values will panic.
func (self *Cache) SetInterval(interval time.Duration) {
	if interval < 0 { panic("negative jitter interval") }
	self.interval = interval
}

// Returns the current regeneration interval.
func (self *Cache) GetInterval() time.Duration { return self.interval }

// Returns the number of values in the table.
func (self *Cache) Size() int { return len(self.values) }

// Returns how many times the table has been generated.
func (self *Cache) Generation() uint64 { return self.regenCount }

// Regenerates the table if more than the configured interval has
// elapsed since the last regeneration. Returns whether the table
// was regenerated.
func (self *Cache) Refresh() bool {
	now := self.clock()
	if now.Sub(self.lastRegen) <= self.interval { return false }
	self.regenerateAt(now)
	return true
}

// Regenerates the table unconditionally.
func (self *Cache) Regenerate() {
	self.regenerateAt(self.clock())
}

func (self *Cache) regenerateAt(now time.Time) {
	for i := range self.values {
		self.values[i] = uint16(self.rng.Intn(1 << 16))
	}
	self.lastRegen = now
	self.regenCount += 1
}

// The largest intensity used by [Cache.Offset]. Higher values are
// clamped, since table values are 16 bits wide.
const MaxIntensity = 1 << 15 - 1

// Returns the offsets for the given glyph order and intensity, each
// within [-intensity, +intensity]. The same inputs always produce the
// same offsets until the table is regenerated. Zero or negative
// intensities return (0, 0), and intensities above [MaxIntensity]
// are clamped.
func (self *Cache) Offset(order int, intensity int) (dx, dy int) {
	if intensity <= 0 { return 0, 0 }
	if intensity > MaxIntensity { intensity = MaxIntensity }
	if order < 0 { order = -order }
	span := uint32(intensity)*2 + 1
	size := len(self.values)
	dx = int(uint32(self.values[(order*2) % size]) % span) - intensity
	dy = int(uint32(self.values[(order*2 + 1) % size]) % span) - intensity
	return dx, dy
}
