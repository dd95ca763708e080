package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const trackingPrefix = "TRX"

// GenerateTrackingID builds a public order identifier of the form
// TRX-<base36 unix millis>-<random suffix>. The suffix comes from a v4 UUID,
// so ids are not guessable from the timestamp and never sequential.
func GenerateTrackingID(nowMillis int64) string {
	ts := strings.ToUpper(strconv.FormatInt(nowMillis, 36))
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	return trackingPrefix + "-" + ts + "-" + suffix
}
