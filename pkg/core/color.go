package core

// ToRGB8 converts an accumulated linear color into an 8-bit RGB triple:
// gamma 2 (sqrt per channel), clamp to [0,1], scale by 255.99 and truncate.
func ToRGB8(c Color) [3]uint8 {
	c = c.Sqrt().Clamp(0.0, 1.0).Multiply(255.99)
	return [3]uint8{uint8(c.X), uint8(c.Y), uint8(c.Z)}
}
