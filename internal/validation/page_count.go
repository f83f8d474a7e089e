package validation

import (
	"bytes"
	"fmt"
	"io"

	pdf "github.com/ledongthuc/pdf"
)

// withReader opens data and runs fn on it. The reader panics on malformed
// object data, so a panic anywhere in open or fn becomes a PDFReadError.
func withReader[T any](data []byte, fn func(*pdf.Reader) (T, error)) (out T, err error) {
	if len(data) == 0 {
		return out, &PDFReadError{Message: "document is empty"}
	}

	defer func() {
		if r := recover(); r != nil {
			var zero T
			out, err = zero, &PDFReadError{Message: "malformed document", Cause: fmt.Errorf("%v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return out, &PDFReadError{Message: "failed to open document", Cause: err}
	}
	return fn(r)
}

// CountPDFPages counts the pages of an in-memory PDF
func CountPDFPages(data []byte) (int, error) {
	return withReader(data, func(r *pdf.Reader) (int, error) {
		return r.NumPage(), nil
	})
}

// ExtractText returns the plain text content of an in-memory PDF
func ExtractText(data []byte) (string, error) {
	return withReader(data, func(r *pdf.Reader) (string, error) {
		rs, err := r.GetPlainText()
		if err != nil {
			return "", &PDFReadError{Message: "failed to extract text", Cause: err}
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, rs); err != nil {
			return "", &PDFReadError{Message: "failed to read extracted text", Cause: err}
		}
		return buf.String(), nil
	})
}
