package render

import (
	"image/color"

	"github.com/mazznoer/colorgrad"
)

// scoreGradient runs from green (growing population) to red (saturated).
var scoreGradient = buildScoreGradient()

func buildScoreGradient() colorgrad.Gradient {
	grad, err := colorgrad.NewGradient().
		Colors(
			color.RGBA{26, 150, 65, 255},
			color.RGBA{253, 174, 97, 255},
			color.RGBA{215, 25, 28, 255},
		).
		Build()
	if err != nil {
		panic(err)
	}
	return grad
}

// ScoreColor maps a saturation score in [0,1] to a gauge colour.
func ScoreColor(score float64) color.RGBA {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	r, g, b, _ := scoreGradient.At(score).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}
