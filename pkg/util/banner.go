package util

import "github.com/common-nighthawk/go-figure"

// GenerateASCIIArt renders text as an ASCII-art banner.
func GenerateASCIIArt(text string, font string) string {
	return figure.NewFigure(text, font, true).String()
}
