// Package color provides display color generation for category badges.
package color

import "fmt"

// Default is the color used for unassigned slots and empty names.
const Default = "#A9D4FF"

// ForCategory generates a consistent pastel hex color for a category
// based on its name. The same name always gets the same color, so a
// category keeps its color across reloads. Hue comes from a string
// hash; saturation and lightness stay in a narrow pastel band so text
// on top remains readable.
func ForCategory(name string) string {
	if name == "" {
		return Default
	}

	h := 0
	for _, c := range name {
		h = 31*h + int(c)
	}
	if h < 0 {
		h = -h
	}

	hue := float64(h % 360)
	sat := float64(70+h%10) / 100
	light := float64(80+h%10) / 100

	r, g, b := hslToRGB(hue, sat, light)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// hslToRGB converts HSL color space to RGB.
// h: hue (0-360), s: saturation (0-1), l: lightness (0-1)
// Returns RGB values (0-255).
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	h /= 360.0

	var r1, g1, b1 float64

	if s == 0 {
		// Achromatic (gray)
		r1, g1, b1 = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r1 = hueToRGB(p, q, h+1.0/3.0)
		g1 = hueToRGB(p, q, h)
		b1 = hueToRGB(p, q, h-1.0/3.0)
	}

	r = uint8(r1 * 255)
	g = uint8(g1 * 255)
	b = uint8(b1 * 255)
	return
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
