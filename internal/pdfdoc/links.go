package pdfdoc

import (
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// extractLinks walks a page's annotation array and returns every URI link
// with its rectangle converted to top-down coordinates, in annotation order.
// Pages without annotations yield an empty list.
func extractLinks(xref *pdfmodel.XRefTable, pageDict types.Dict, pageHeight float64) []Link {
	links := []Link{}

	annots, ok := pageDict["Annots"]
	if !ok {
		return links
	}

	for _, obj := range derefArray(xref, annots) {
		annot := derefDict(xref, obj)
		if annot == nil {
			continue
		}
		if name, ok := annot["Subtype"].(types.Name); !ok || string(name) != "Link" {
			continue
		}

		action := derefDict(xref, annot["A"])
		if action == nil {
			continue
		}
		uri := stringValue(action["URI"])
		if uri == "" {
			continue
		}

		rect := derefArray(xref, annot["Rect"])
		if len(rect) != 4 {
			continue
		}

		links = append(links, Link{
			URI: uri,
			X0:  numberValue(rect[0]),
			X1:  numberValue(rect[2]),
			// PDF rects are bottom-up: rect[3] is the upper edge.
			YTop:    pageHeight - numberValue(rect[3]),
			YBottom: pageHeight - numberValue(rect[1]),
		})
	}

	return links
}

func derefDict(xref *pdfmodel.XRefTable, obj types.Object) types.Dict {
	switch v := obj.(type) {
	case types.Dict:
		return v
	case types.IndirectRef, *types.IndirectRef:
		if xref == nil {
			return nil
		}
		d, err := xref.DereferenceDict(obj)
		if err != nil {
			return nil
		}
		return d
	}
	return nil
}

func derefArray(xref *pdfmodel.XRefTable, obj types.Object) types.Array {
	switch v := obj.(type) {
	case types.Array:
		return v
	case types.IndirectRef, *types.IndirectRef:
		if xref == nil {
			return nil
		}
		arr, err := xref.DereferenceArray(obj)
		if err != nil {
			return nil
		}
		return arr
	}
	return nil
}

func stringValue(obj types.Object) string {
	switch v := obj.(type) {
	case types.StringLiteral:
		return string(v)
	case types.HexLiteral:
		return string(v)
	}
	return ""
}

func numberValue(obj types.Object) float64 {
	switch v := obj.(type) {
	case types.Integer:
		return float64(v)
	case types.Float:
		return float64(v)
	}
	return 0
}
