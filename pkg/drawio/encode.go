package drawio

import (
	"bufio"
	"encoding/xml"
	"io"

	"github.com/matzehuels/seqdraw/pkg/errors"
)

// sinkWriter remembers the first error returned by the underlying writer,
// so a failed write can be told apart from a failed encoding.
type sinkWriter struct {
	w   io.Writer
	err error
}

func (s *sinkWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil && s.err == nil {
		s.err = err
	}
	return n, err
}

// Encode writes doc to w as indented, UTF-8 draw.io XML.
//
// Failures of w are reported as IO_ERROR, failures to encode doc as
// SERIALIZATION_ERROR.
func Encode(w io.Writer, doc *Document) error {
	sink := &sinkWriter{w: w}
	bw := bufio.NewWriter(sink)
	fail := func(err error) error {
		if sink.err != nil {
			return errors.Wrap(errors.ErrCodeIO, sink.err, "write document")
		}
		return errors.Wrap(errors.ErrCodeSerialization, err, "encode document")
	}

	if _, err := bw.WriteString(xml.Header); err != nil {
		return fail(err)
	}
	enc := xml.NewEncoder(bw)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fail(err)
	}
	if err := enc.Close(); err != nil {
		return fail(err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	return nil
}

// Decode reads a document previously written by [Encode].
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSerialization, err, "decode document")
	}
	return &doc, nil
}
