package report

import (
	"errors"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// PageLayout is the physical page size the raster is sliced into. The
// raster's pixel width maps onto WidthMm, which fixes the scale for the
// vertical split.
type PageLayout struct {
	WidthMm  float64
	HeightMm float64
}

// A4 is the default export page size.
var A4 = PageLayout{WidthMm: 210, HeightMm: 297}

// Page is one vertical slice of the raster. OffsetMm is the vertical
// translation of the full image relative to this page's viewport (page
// n sees the image shifted up by n page heights); VisibleMm is how much
// of the page the slice actually covers, equal to HeightMm everywhere
// but possibly short on the last page.
type Page struct {
	Index     int
	OffsetMm  float64
	VisibleMm float64
	Image     *image.NRGBA
}

// pageTops returns the pixel row at the top of each page. The cut
// positions are the single source of truth for both PageCount and
// Paginate: a rounded cut that lands on or past the image's last row
// starts no page, so a raster one rounding error short of a page
// boundary yields a full last page instead of an empty trailing slice.
func pageTops(widthPx, heightPx int, layout PageLayout) []int {
	pageHeightPx := layout.HeightMm * float64(widthPx) / layout.WidthMm

	var tops []int
	for i := 0; ; i++ {
		top := int(math.Round(float64(i) * pageHeightPx))
		if top >= heightPx {
			break
		}
		tops = append(tops, top)
	}
	return tops
}

// PageCount returns the number of pages Paginate produces for a raster
// of the given pixel dimensions: ceil of the image height in page
// heights, measured in pixel space. Every page holds at least one pixel
// row; an exact multiple yields no trailing blank page.
func PageCount(widthPx, heightPx int, layout PageLayout) int {
	return len(pageTops(widthPx, heightPx, layout))
}

// Paginate slices the raster into fixed-size pages. Every pixel row
// lands on exactly one page: no loss, no duplication, no empty slices.
func Paginate(img image.Image, layout PageLayout) ([]Page, error) {
	if layout.WidthMm <= 0 || layout.HeightMm <= 0 {
		return nil, errors.New("page dimensions must be positive")
	}
	bounds := img.Bounds()
	widthPx, heightPx := bounds.Dx(), bounds.Dy()
	if widthPx <= 0 || heightPx <= 0 {
		return nil, errors.New("raster image is empty")
	}

	pxPerMm := float64(widthPx) / layout.WidthMm
	tops := pageTops(widthPx, heightPx, layout)

	pages := make([]Page, 0, len(tops))
	for i, topPx := range tops {
		bottomPx := heightPx
		if i+1 < len(tops) {
			bottomPx = tops[i+1]
		}

		crop := imaging.Crop(img, image.Rect(bounds.Min.X, bounds.Min.Y+topPx, bounds.Min.X+widthPx, bounds.Min.Y+bottomPx))
		pages = append(pages, Page{
			Index:     i,
			OffsetMm:  -float64(i) * layout.HeightMm,
			VisibleMm: float64(bottomPx-topPx) / pxPerMm,
			Image:     crop,
		})
	}

	return pages, nil
}
