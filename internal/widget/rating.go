package widget

import (
	"math"
	"strings"
)

const MaxStars = 5

// Star glyphs
const (
	FullStar  = "★"
	HalfStar  = "⯪"
	EmptyStar = "☆"
)

// StarRating is a rating broken into five star slots
type StarRating struct {
	Full  int
	Half  bool
	Empty int
}

// Stars converts an average rating into star slots.
// Out of range input is clamped to [0, 5] and NaN counts as 0.
func Stars(rating float64) StarRating {
	switch {
	case math.IsNaN(rating) || rating < 0:
		rating = 0
	case rating > MaxStars:
		rating = MaxStars
	}

	full := int(math.Floor(rating))
	half := rating-float64(full) >= 0.5
	empty := MaxStars - full
	if half {
		empty--
	}
	return StarRating{Full: full, Half: half, Empty: empty}
}

// Glyphs returns the five glyphs: full stars, then the half star, then empty ones
func (s StarRating) Glyphs() []string {
	glyphs := make([]string, 0, MaxStars)
	for i := 0; i < s.Full; i++ {
		glyphs = append(glyphs, FullStar)
	}
	if s.Half {
		glyphs = append(glyphs, HalfStar)
	}
	for i := 0; i < s.Empty; i++ {
		glyphs = append(glyphs, EmptyStar)
	}
	return glyphs
}

func (s StarRating) String() string {
	return strings.Join(s.Glyphs(), "")
}
