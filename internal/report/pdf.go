package report

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
)

// mm to PDF points (1 pt = 1/72 inch).
const ptPerMm = 72.0 / 25.4

const jpegQuality = 90

// EncodePDF assembles the final artifact: one fixed-size PDF page per
// raster slice, each slice embedded as a full-width JPEG anchored to the
// top of its page so the slices line up into the original document.
//
// Object layout:
//
//	1: Catalog
//	2: Pages
//	3..: per page: Page obj, Content stream obj, Image XObject (three per page)
func EncodePDF(pages []Page, layout PageLayout) ([]byte, error) {
	if len(pages) == 0 {
		return nil, errors.New("no pages")
	}

	pageWpt := layout.WidthMm * ptPerMm
	pageHpt := layout.HeightMm * ptPerMm

	firstPageID := 3
	objCount := 2 + len(pages)*3

	pageIDs := make([]int, len(pages))
	contentIDs := make([]int, len(pages))
	imageIDs := make([]int, len(pages))
	for i := range pages {
		pageIDs[i] = firstPageID + i*3
		contentIDs[i] = pageIDs[i] + 1
		imageIDs[i] = pageIDs[i] + 2
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	// Binary comment line so transfer tools treat the file as binary.
	buf.Write([]byte{0x25, 0xE2, 0xE3, 0xCF, 0xD3, '\n'})

	offsets := make([]int, objCount+1) // xref includes object 0

	writeObj := func(id int, body string) {
		offsets[id] = buf.Len()
		buf.WriteString(fmt.Sprintf("%d 0 obj\n", id))
		buf.WriteString(body)
		buf.WriteString("\nendobj\n")
	}

	writeStreamObj := func(id int, dict string, stream []byte) {
		offsets[id] = buf.Len()
		buf.WriteString(fmt.Sprintf("%d 0 obj\n", id))
		buf.WriteString(fmt.Sprintf("<< %s /Length %d >>\n", dict, len(stream)))
		buf.WriteString("stream\n")
		buf.Write(stream)
		buf.WriteString("\nendstream\nendobj\n")
	}

	// Catalog and page tree
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	var kids bytes.Buffer
	kids.WriteString("[")
	for i := range pages {
		if i > 0 {
			kids.WriteString(" ")
		}
		kids.WriteString(fmt.Sprintf("%d 0 R", pageIDs[i]))
	}
	kids.WriteString("]")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids %s /Count %d >>", kids.String(), len(pages)))

	for i, pg := range pages {
		var jpg bytes.Buffer
		if err := imaging.Encode(&jpg, pg.Image, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", i+1, err)
		}

		writeObj(pageIDs[i], fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Contents %d 0 R /Resources << /XObject << /Im0 %d 0 R >> >> >>",
			pageWpt, pageHpt, contentIDs[i], imageIDs[i]))

		// Scale the unit image square to the slice's physical size and
		// anchor it to the top edge of the page.
		sliceHpt := pg.VisibleMm * ptPerMm
		content := fmt.Sprintf("q\n%.2f 0 0 %.2f 0 %.2f cm\n/Im0 Do\nQ\n",
			pageWpt, sliceHpt, pageHpt-sliceHpt)
		writeStreamObj(contentIDs[i], "", []byte(content))

		bounds := pg.Image.Bounds()
		writeStreamObj(imageIDs[i], fmt.Sprintf(
			"/Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode",
			bounds.Dx(), bounds.Dy()), jpg.Bytes())
	}

	// Cross-reference table
	startXRef := buf.Len()
	buf.WriteString("xref\n")
	buf.WriteString(fmt.Sprintf("0 %d\n", objCount+1))
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= objCount; i++ {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}

	buf.WriteString("trailer\n")
	buf.WriteString(fmt.Sprintf("<< /Size %d /Root 1 0 R >>\n", objCount+1))
	buf.WriteString("startxref\n")
	buf.WriteString(fmt.Sprintf("%d\n", startXRef))
	buf.WriteString("%%EOF\n")

	return buf.Bytes(), nil
}
