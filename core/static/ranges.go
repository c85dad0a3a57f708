package static

import (
	"fmt"
	"strconv"
	"strings"
)

// rangeUnit is the only range unit this package understands.
const rangeUnit = "bytes"

// ByteRange is an inclusive span [Low, High] of a file's bytes.
// Valid ranges satisfy Low <= High < file size.
type ByteRange struct {
	Low  uint64
	High uint64
}

// Length returns the number of bytes covered by the range.
func (b ByteRange) Length() uint64 {
	return b.High - b.Low + 1
}

// ContentRange formats the Content-Range header value for a file of the given size.
func (b ByteRange) ContentRange(size uint64) string {
	return fmt.Sprintf("%s %d-%d/%d", rangeUnit, b.Low, b.High, size)
}

// RangeRequest is a parsed Range header. Ranges keep header order and may
// overlap or be unsorted.
type RangeRequest struct {
	Unit   string
	Ranges []ByteRange
}

// ParseRange parses a Range header value such as "bytes=0-99,200-,-50"
// against a file of the given size. Invalid specs are skipped. It reports
// false when the unit is not "bytes" or no spec is valid; callers then
// ignore the header and send the full body.
func ParseRange(header string, size uint64) (RangeRequest, bool) {
	unit, specs, ok := strings.Cut(strings.TrimSpace(header), "=")
	if !ok || !strings.EqualFold(strings.TrimSpace(unit), rangeUnit) {
		return RangeRequest{}, false
	}

	var ranges []ByteRange
	for _, spec := range strings.Split(specs, ",") {
		if br, ok := parseRangeSpec(strings.TrimSpace(spec), size); ok {
			ranges = append(ranges, br)
		}
	}
	if len(ranges) == 0 {
		return RangeRequest{}, false
	}

	return RangeRequest{Unit: rangeUnit, Ranges: ranges}, true
}

// parseRangeSpec parses one of "N-M", "N-" or "-N".
func parseRangeSpec(spec string, size uint64) (ByteRange, bool) {
	first, last, ok := strings.Cut(spec, "-")
	if !ok || size == 0 {
		return ByteRange{}, false
	}
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)

	// Suffix form: the final N bytes.
	if first == "" {
		n, err := strconv.ParseUint(last, 10, 64)
		if err != nil || n == 0 {
			return ByteRange{}, false
		}
		low := uint64(0)
		if n < size {
			low = size - n
		}
		return ByteRange{Low: low, High: size - 1}, true
	}

	low, err := strconv.ParseUint(first, 10, 64)
	if err != nil {
		return ByteRange{}, false
	}

	if last == "" {
		if low >= size {
			return ByteRange{}, false
		}
		return ByteRange{Low: low, High: size - 1}, true
	}

	high, err := strconv.ParseUint(last, 10, 64)
	if err != nil || low > high || high >= size {
		return ByteRange{}, false
	}
	return ByteRange{Low: low, High: high}, true
}
