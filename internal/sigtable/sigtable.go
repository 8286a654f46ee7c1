// Package sigtable maps sniffed file headers to coarse content categories.
//
// Most signatures are matched through github.com/h2non/filetype. A small
// curated prefix table covers the 3D asset formats filetype does not know
// (ASCII STL, PLY, binary glTF, DXF). Prefixes in the curated table must not
// overlap one another; that invariant is asserted by the package tests, not
// at runtime.
package sigtable

import (
	"bytes"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/h2non/filetype/types"
)

// Category is the coarse content class of a sniffed header.
type Category int

const (
	None Category = iota
	Image
	Document
	Archive
	Asset3D
)

func (c Category) String() string {
	switch c {
	case Image:
		return "image"
	case Document:
		return "document"
	case Archive:
		return "archive"
	case Asset3D:
		return "3d-asset"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// SniffLen is how many bytes of a file the classifier wants to see. The
// deepest matchers (MS Office container probing) look a few hundred bytes in;
// 262 is the read size filetype itself documents.
const SniffLen = 262

// assetSignatures are byte prefixes for 3D asset formats. filetype has no
// matchers for these, so they are checked before delegating to it.
var assetSignatures = [][]byte{
	[]byte("solid "),       // ASCII STL
	[]byte("ply\n"),        // PLY (LF header)
	[]byte("ply\r\n"),      // PLY (CRLF header)
	[]byte("glTF"),         // binary glTF
	[]byte("0\nSECTION"),   // DXF
	[]byte("0\r\nSECTION"), // DXF (CRLF)
}

// documents are filetype matches reported as Document here even though
// filetype groups some of them (pdf, rtf, ps, epub) under "archive".
var documents = map[types.Type]struct{}{
	matchers.TypePdf:  {},
	matchers.TypeRtf:  {},
	matchers.TypePs:   {},
	matchers.TypeEpub: {},
	matchers.TypeDoc:  {},
	matchers.TypeDocx: {},
	matchers.TypeXls:  {},
	matchers.TypeXlsx: {},
	matchers.TypePpt:  {},
	matchers.TypePptx: {},
}

// Classify maps header bytes to a Category. Empty or unrecognized headers
// return None; the caller decides what to do with the miss (extension
// heuristics, null-byte scan). Pure prefix matching, no I/O.
func Classify(header []byte) Category {
	if len(header) == 0 {
		return None
	}

	for _, sig := range assetSignatures {
		if bytes.HasPrefix(header, sig) {
			return Asset3D
		}
	}

	match, err := filetype.Match(header)
	if err != nil || match == types.Unknown {
		return None
	}
	if _, ok := documents[match]; ok {
		return Document
	}
	if match.MIME.Type == "image" {
		return Image
	}
	if _, ok := matchers.Archive[match]; ok {
		return Archive
	}
	if _, ok := matchers.Document[match]; ok {
		return Document
	}
	// Audio, video, fonts and the like: no category of their own. They fall
	// out as None and are caught downstream by the null-byte heuristic.
	return None
}
