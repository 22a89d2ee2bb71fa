package resume

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/spigell/careerbuddy/internal/apperr"
)

// MaxUploadSize is the largest resume payload accepted.
const MaxUploadSize = 5 << 20

const extractOp = "extract text"

// ErrUnsupportedFormat is returned for files other than PDF, DOCX and TXT.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// SupportedExtension reports whether filename has an extension ExtractText handles.
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".txt":
		return true
	}
	return false
}

// ExtractText returns the plain text of a resume file. Input problems are
// InputValidation errors. When a PDF or DOCX cannot be read the text is empty
// and the error is Upstream, so callers may carry on with an empty resume.
func ExtractText(data []byte, filename string) (string, error) {
	if len(data) > MaxUploadSize {
		return "", apperr.Invalid(extractOp, "%s is %d bytes, limit is %d", filename, len(data), MaxUploadSize)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		if !utf8.Valid(data) {
			return "", apperr.Invalid(extractOp, "%s is not valid UTF-8", filename)
		}
		return string(data), nil
	case ".docx":
		text, err := docxText(data)
		if err != nil {
			return "", apperr.New(apperr.Upstream, extractOp, fmt.Errorf("%s: %w", filename, err))
		}
		return text, nil
	case ".pdf":
		text, err := pdfText(data)
		if err != nil {
			return "", apperr.New(apperr.Upstream, extractOp, fmt.Errorf("%s: %w", filename, err))
		}
		return text, nil
	default:
		return "", apperr.New(apperr.InputValidation, extractOp, fmt.Errorf("%s: %w", filename, ErrUnsupportedFormat))
	}
}

// docxText reads word/document.xml and emits one line per paragraph.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}

	for _, file := range zr.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("opening document.xml: %w", err)
		}
		defer rc.Close()

		return paragraphsText(rc)
	}

	return "", errors.New("document.xml not found")
}

func paragraphsText(r io.Reader) (string, error) {
	var b strings.Builder
	decoder := xml.NewDecoder(r)
	inText := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding document.xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), nil
}

func pdfText(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("reading pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var b bytes.Buffer
	if _, err := b.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	return b.String(), nil
}
