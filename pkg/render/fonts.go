package render

import (
	"image/color"
	"sync"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Labels are set in bold Liberation Sans. The Liberation collection ships
// with gonum/plot, so no font files need to be present on the system.
var (
	fontCacheOnce sync.Once
	fontCache     *font.Cache

	flatCacheOnce sync.Once
	flatCache     *font.Cache
)

func fonts() *font.Cache {
	fontCacheOnce.Do(func() {
		fontCache = font.NewCache(liberation.Collection())
	})
	return fontCache
}

// flatFonts returns a cache holding the bold Liberation Sans outlines
// under a normal-weight descriptor. Backends that embed the font derive
// its name from the descriptor at registration and then append a bold
// style modifier at draw time; the two names only agree when the
// descriptor itself is plain, so the boldness has to live in the glyph
// outlines alone.
func flatFonts() *font.Cache {
	flatCacheOnce.Do(func() {
		var faces font.Collection
		for _, f := range liberation.Collection() {
			if f.Font.Variant == "Sans" &&
				f.Font.Weight == xfont.WeightBold && f.Font.Style == xfont.StyleNormal {
				f.Font.Weight = xfont.WeightNormal
				faces = append(faces, f)
			}
		}
		flatCache = font.NewCache(faces)
	})
	return flatCache
}

// labelStyle builds the text style for one cell label. Alignment is left
// for the caller to fill in.
func labelStyle(size vg.Length, c color.Color) draw.TextStyle {
	return draw.TextStyle{
		Color: c,
		Font: font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
			Weight:   xfont.WeightBold,
			Size:     size,
		},
		Handler: text.Plain{Fonts: fonts()},
	}
}

// flatLabelStyle is labelStyle with the weight flattened into the glyph
// outlines, for font-embedding backends.
func flatLabelStyle(size vg.Length, c color.Color) draw.TextStyle {
	return draw.TextStyle{
		Color: c,
		Font: font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
			Size:     size,
		},
		Handler: text.Plain{Fonts: flatFonts()},
	}
}
