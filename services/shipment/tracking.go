package shipment

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

const (
	// TrackingPrefix heads every tracking number handed to a customer.
	TrackingPrefix = "SWS"

	trackingCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	segmentLength   = 4
)

// Older shipments carry a single segment after the prefix, so the validator
// accepts both forms. New numbers are always two segments.
var trackingPattern = regexp.MustCompile(`(?i)^` + TrackingPrefix + `-[A-Z0-9]{4}(-[A-Z0-9]{4})?$`)

// GenerateTrackingNumber returns a fresh SWS-XXXX-XXXX candidate. Uniqueness
// is the store's job, not the generator's; callers must treat a duplicate as
// a signal to draw again.
func GenerateTrackingNumber() string {
	return fmt.Sprintf("%s-%s-%s", TrackingPrefix, randomSegment(), randomSegment())
}

func randomSegment() string {
	// Bytes at or above the limit are redrawn so every charset index stays
	// equally likely; 256 is not a multiple of 36.
	limit := 256 - 256%len(trackingCharset)
	out := make([]byte, 0, segmentLength)
	buf := make([]byte, segmentLength)
	for len(out) < segmentLength {
		if _, err := rand.Read(buf); err != nil {
			panic(fmt.Sprintf("system randomness unavailable: %v", err))
		}
		for _, v := range buf {
			if int(v) >= limit {
				continue
			}
			out = append(out, trackingCharset[int(v)%len(trackingCharset)])
			if len(out) == segmentLength {
				break
			}
		}
	}
	return string(out)
}

func IsValidTrackingNumber(s string) bool {
	return trackingPattern.MatchString(s)
}
