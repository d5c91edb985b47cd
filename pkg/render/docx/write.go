// Package docx packs flow-document elements into an Office Open XML
// word-processing container.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/yaklabco/markview/pkg/render/flow"
)

// Part names inside the container, in write order.
const (
	PartContentTypes = "[Content_Types].xml"
	PartRels         = "_rels/.rels"
	PartDocument     = "word/document.xml"
	PartDocumentRels = "word/_rels/document.xml.rels"
	PartStyles       = "word/styles.xml"
	PartNumbering    = "word/numbering.xml"
)

// Write encodes elems as a .docx container to w.
func Write(w io.Writer, elems []flow.Element) error {
	body, err := Document(elems)
	if err != nil {
		return err
	}

	parts := []struct {
		name string
		data []byte
	}{
		{PartContentTypes, []byte(contentTypesXML)},
		{PartRels, []byte(packageRelsXML)},
		{PartDocument, body},
		{PartDocumentRels, []byte(documentRelsXML)},
		{PartStyles, []byte(stylesXML)},
		{PartNumbering, []byte(numberingXML)},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		entry, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("docx: create %s: %w", p.name, err)
		}
		if _, err := entry.Write(p.data); err != nil {
			return fmt.Errorf("docx: write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("docx: close container: %w", err)
	}
	return nil
}

// Document returns the word/document.xml part for elems.
func Document(elems []flow.Element) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(documentHeader)

	for _, e := range elems {
		var style, text string
		switch e := e.(type) {
		case flow.Heading:
			style = "Heading" + strconv.Itoa(min(max(e.Level, 1), 6)) //nolint:mnd // six heading styles
			text = e.Text
		case flow.Paragraph:
			text = e.Text
		case flow.ListItem:
			style = "ListBullet"
			if e.Ordered {
				style = "ListNumber"
			}
			text = e.Text
		}
		if err := writeParagraph(&buf, style, text); err != nil {
			return nil, err
		}
	}

	buf.WriteString(documentFooter)
	return buf.Bytes(), nil
}

func writeParagraph(buf *bytes.Buffer, style, text string) error {
	buf.WriteString("<w:p>")
	if style != "" {
		fmt.Fprintf(buf, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, style)
	}
	if text != "" {
		buf.WriteString(`<w:r><w:t xml:space="preserve">`)
		if err := xml.EscapeText(buf, []byte(text)); err != nil {
			return fmt.Errorf("docx: escape text: %w", err)
		}
		buf.WriteString("</w:t></w:r>")
	}
	buf.WriteString("</w:p>\n")
	return nil
}
