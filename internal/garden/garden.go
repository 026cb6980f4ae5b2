// Package garden lays out the practice garden. Every completed practice is
// one flower; its position and look depend only on the flower's index, so
// the garden never reshuffles between renders.
package garden

import (
	"math"
	"sort"

	"github.com/julianstephens/resurs/internal/constants"
)

// EmptyMessage is shown while the garden has no flowers.
const EmptyMessage = "Сад ждёт первых семян"

type Variant string

const (
	Rose      Variant = "rose"
	Daisy     Variant = "daisy"
	Tulip     Variant = "tulip"
	Lily      Variant = "lily"
	Sunflower Variant = "sunflower"
	Poppy     Variant = "poppy"
)

var Variants = []Variant{Rose, Daisy, Tulip, Lily, Sunflower, Poppy}

// Colors are opaque color tokens, indexed by the fifth random draw.
var Colors = []string{
	"text-rose-400",
	"text-pink-400",
	"text-purple-400",
	"text-amber-400",
	"text-red-400",
	"text-yellow-400",
	"text-orange-400",
}

// Placement describes one flower. Left and Top are percentages of the
// garden area; Delay and Sway are seconds.
type Placement struct {
	Index   int
	Left    float64
	Top     float64
	Scale   float64
	Variant Variant
	Color   string
	Delay   float64
	Sway    float64
	ZIndex  int
}

// Layout returns placements for the most recent flowers (at most
// GardenMaxRender), sorted by Top so nearer flowers come later.
func Layout(flowerCount int) []Placement {
	if flowerCount < 0 {
		flowerCount = 0
	}
	start := flowerCount - constants.GardenMaxRender
	if start < 0 {
		start = 0
	}

	out := make([]Placement, 0, flowerCount-start)
	for i := start; i < flowerCount; i++ {
		out = append(out, place(i))
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Top < out[b].Top
	})
	return out
}

func place(i int) Placement {
	seed := float64(i) * constants.GardenSeedStep
	rand := func(n float64) float64 {
		x := math.Sin(seed+n) * 10000
		return x - math.Floor(x)
	}

	return Placement{
		Index:   i,
		Left:    10 + rand(1)*80,
		Top:     25 + rand(2)*55,
		Scale:   0.8 + rand(3)*0.7,
		Variant: Variants[pick(rand(4), len(Variants))],
		Color:   Colors[pick(rand(5), len(Colors))],
		Delay:   rand(6) * 2,
		Sway:    4 + rand(7)*3,
		ZIndex:  int(math.Floor(rand(2) * 100)),
	}
}

// pick maps r in [0,1) onto an index below n.
func pick(r float64, n int) int {
	idx := int(math.Floor(r * float64(n)))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
