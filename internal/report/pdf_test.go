package report

import (
	"bytes"
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodePDFStructure(t *testing.T) {
	pages, err := Paginate(image.NewRGBA(image.Rect(0, 0, SurfaceWidthPx, 2500)), A4)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	data, err := EncodePDF(pages, A4)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, []byte("%PDF-1.4\n")))
	require.True(t, bytes.HasSuffix(data, []byte("%%EOF\n")))
	require.Contains(t, string(data[:512]), "/Type /Catalog")
	require.Contains(t, string(data), fmt.Sprintf("/Count %d", len(pages)))
	require.Contains(t, string(data), "/Filter /DCTDecode")

	// One page object per slice.
	require.Equal(t, len(pages), bytes.Count(data, []byte("/Type /Page ")))

	// xref must index every object plus the free head entry.
	objCount := 2 + len(pages)*3
	require.Contains(t, string(data), fmt.Sprintf("xref\n0 %d\n", objCount+1))
	require.Contains(t, string(data), fmt.Sprintf("/Size %d", objCount+1))
}

func TestEncodePDFNoPages(t *testing.T) {
	_, err := EncodePDF(nil, A4)
	require.Error(t, err)
}

func TestEncodePDFOffsetsResolve(t *testing.T) {
	pages, err := Paginate(image.NewRGBA(image.Rect(0, 0, 210, 297)), A4)
	require.NoError(t, err)

	data, err := EncodePDF(pages, A4)
	require.NoError(t, err)

	// Object 1 must actually start at the offset recorded in the xref
	// table's first in-use entry.
	idx := bytes.Index(data, []byte("xref\n"))
	require.Greater(t, idx, 0)
	var free, offset int
	var gen1, gen2 int
	n, err := fmt.Sscanf(string(data[idx:]), "xref\n0 %d\n%010d 65535 f \n%010d %05d n", &free, &gen1, &offset, &gen2)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.True(t, bytes.HasPrefix(data[offset:], []byte("1 0 obj")))
}
