package main

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// writePPM encodes the image as plain-text PPM (P3), rows top to bottom
func writePPM(w io.Writer, img *image.RGBA) error {
	buf := bufio.NewWriter(w)

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(buf, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}

	return buf.Flush()
}
