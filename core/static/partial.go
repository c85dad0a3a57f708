package static

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/dmitrymomot/fileserve/core/logger"
)

const (
	// maxRanges caps the parts of one multipart/byteranges response.
	maxRanges = 32
	// maxMultipartBytes caps the buffered payload of one multipart response.
	maxMultipartBytes = 32 << 20
)

// multipartAllowed reports whether ranges fit the multipart limits. Requests
// over the limits get the full body instead.
func multipartAllowed(ranges []ByteRange) bool {
	if len(ranges) > maxRanges {
		return false
	}
	var total uint64
	for _, br := range ranges {
		total += br.Length()
		if total > maxMultipartBytes {
			return false
		}
	}
	return true
}

// serveSingleRange streams one range as a plain 206 body.
func (s *Server) serveSingleRange(w http.ResponseWriter, r *http.Request, f *os.File, info FileInfo, contentType string, br ByteRange) error {
	h := w.Header()
	setContentType(h, contentType)
	h.Set("Content-Range", br.ContentRange(info.Size))
	h.Set("Content-Length", strconv.FormatUint(br.Length(), 10))

	w.WriteHeader(http.StatusPartialContent)

	n, err := io.Copy(w, io.NewSectionReader(f, int64(br.Low), int64(br.Length())))
	if err == nil && uint64(n) < br.Length() {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		s.logPartialRead(f.Name(), br, err)
		return &ReadError{Path: f.Name(), Err: err}
	}
	return nil
}

// serveMultiRange writes a buffered multipart/byteranges body.
func (s *Server) serveMultiRange(w http.ResponseWriter, f *os.File, info FileInfo, contentType string, ranges []ByteRange) error {
	boundary := s.boundary()

	var buf bytes.Buffer
	for _, br := range ranges {
		buf.WriteString("--" + boundary + "\r\n")
		buf.WriteString("Content-Range: " + br.ContentRange(info.Size) + "\r\n")
		if contentType != "" {
			buf.WriteString("Content-Type: " + contentType + "\r\n")
		}
		buf.WriteString("\r\n")
		buf.Write(s.readRange(f, br))
		buf.WriteString("\r\n")
	}
	buf.WriteString("--" + boundary + "--")

	h := w.Header()
	h.Set("Content-Type", "multipart/byteranges; boundary="+boundary)
	h.Set("Content-Length", strconv.Itoa(buf.Len()))

	w.WriteHeader(http.StatusPartialContent)
	_, err := w.Write(buf.Bytes())
	return err
}

// readRange returns the bytes of br. Any failure yields an empty slice so a
// single bad part does not abort the response.
func (s *Server) readRange(f *os.File, br ByteRange) []byte {
	buf := make([]byte, br.Length())
	if _, err := io.ReadFull(io.NewSectionReader(f, int64(br.Low), int64(br.Length())), buf); err != nil {
		s.logPartialRead(f.Name(), br, err)
		return []byte{}
	}
	return buf
}

func (s *Server) logPartialRead(path string, br ByteRange, err error) {
	s.logger.Warn("range read failed",
		logger.Component(component),
		logger.Key("file", path),
		slog.String("range", strconv.FormatUint(br.Low, 10)+"-"+strconv.FormatUint(br.High, 10)),
		logger.Error(err),
	)
}
