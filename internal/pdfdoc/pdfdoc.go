// Package pdfdoc reads guidebook pages from the PDF: plain text, positioned
// words, and link annotations. All vertical coordinates are top-down
// (y = pageHeight - pdfY), matching how the extraction heuristics reason
// about the page.
package pdfdoc

import (
	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rotisserie/eris"
)

// Word is a positioned word on a page. Top is the word's vertical offset
// from the top of the page.
type Word struct {
	Text string
	Top  float64
}

// Link is a URI annotation on a page with its rectangle converted to
// top-down coordinates.
type Link struct {
	URI     string
	X0      float64
	X1      float64
	YTop    float64
	YBottom float64
}

// Page is one guidebook page: extractable plain text, positioned words, and
// link annotations in annotation order.
type Page struct {
	Number int
	Height float64
	Text   string
	Words  []Word
	Links  []Link
}

// ReadPage loads a single page from the PDF. Page numbers are 1-indexed.
// Link annotations come from the page dictionary; text and word positions
// from the content stream. A page without annotations yields an empty link
// list, not an error.
func ReadPage(path string, pageNum int) (*Page, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "pdfdoc: read %s", path)
	}
	if pageNum < 1 || pageNum > ctx.PageCount {
		return nil, eris.Errorf("pdfdoc: page %d out of range [1, %d]", pageNum, ctx.PageCount)
	}

	pageDict, _, attrs, err := ctx.PageDict(pageNum, false)
	if err != nil {
		return nil, eris.Wrapf(err, "pdfdoc: page dict %d", pageNum)
	}

	height := 792.0 // US Letter fallback
	if attrs != nil && attrs.MediaBox != nil {
		height = attrs.MediaBox.Height()
	}

	links := extractLinks(ctx.XRefTable, pageDict, height)

	f, reader, err := lpdf.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "pdfdoc: open %s", path)
	}
	defer f.Close()

	page := &Page{Number: pageNum, Height: height, Links: links}

	lp := reader.Page(pageNum)
	if lp.V.IsNull() {
		return page, nil
	}
	page.Text, page.Words = buildText(lp.Content().Text, height)

	return page, nil
}
