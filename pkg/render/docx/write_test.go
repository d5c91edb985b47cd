package docx_test

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markview/pkg/document"
	"github.com/yaklabco/markview/pkg/render/docx"
	"github.com/yaklabco/markview/pkg/render/flow"
)

func readParts(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		parts[f.Name] = string(content)
	}
	return parts
}

func TestWrite_Container(t *testing.T) {
	t.Parallel()

	elems := flow.Render(document.BuildText("# Title\n\n- a & b\n1. <one>\n```\nskipped\n```\n"))

	var buf bytes.Buffer
	require.NoError(t, docx.Write(&buf, elems))

	parts := readParts(t, buf.Bytes())
	for _, name := range []string{
		docx.PartContentTypes, docx.PartRels, docx.PartDocument,
		docx.PartDocumentRels, docx.PartStyles, docx.PartNumbering,
	} {
		assert.Contains(t, parts, name)
	}

	doc := parts[docx.PartDocument]
	assert.Contains(t, doc, `<w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t xml:space="preserve">Title</w:t>`)
	assert.Contains(t, doc, `<w:pStyle w:val="ListBullet"/>`)
	assert.Contains(t, doc, "a &amp; b")
	assert.Contains(t, doc, `<w:pStyle w:val="ListNumber"/>`)
	assert.Contains(t, doc, "&lt;one&gt;")
	assert.NotContains(t, doc, "skipped")
	assert.Contains(t, parts[docx.PartStyles], `w:styleId="Heading6"`)
}

func TestDocument_WellFormed(t *testing.T) {
	t.Parallel()

	elems := []flow.Element{
		flow.Heading{Level: 9, Text: "clamped"},
		flow.Paragraph{},
		flow.Paragraph{Text: "**kept** `as is`"},
		flow.ListItem{Ordered: true, Text: "x"},
	}

	body, err := docx.Document(elems)
	require.NoError(t, err)

	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	assert.Contains(t, string(body), `w:val="Heading6"`)
	assert.Contains(t, string(body), "<w:p></w:p>")
	assert.Contains(t, string(body), "**kept** `as is`")
}

func TestWrite_StaticPartsWellFormed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, docx.Write(&buf, nil))

	for name, content := range readParts(t, buf.Bytes()) {
		dec := xml.NewDecoder(bytes.NewReader([]byte(content)))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			require.NoError(t, err, name)
		}
	}
}
