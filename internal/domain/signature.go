package domain

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

// sigTimestampLayout is the 14-digit second-precision form the signature is
// computed over. Sub-second digits and zone information are discarded.
const sigTimestampLayout = "20060102150405"

// timestampLayouts are the accepted request timestamp shapes. Partners send
// ISO-8601 with seven fractional digits and a literal Z, but plain RFC 3339
// is tolerated.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a request timestamp and normalizes it to UTC.
func ParseTimestamp(ts string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", ts)
}

// Sign derives the request signature: SHA-256 over the concatenation of the
// second-precision timestamp, partner key, partner reference number, the
// decimal total amount and the partner password exactly as supplied (still
// Base64), encoded as standard Base64.
func Sign(timestamp, partnerKey, partnerRefNo string, totalAmount int64, partnerPassword string) (string, error) {
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		return "", err
	}

	payload := t.Format(sigTimestampLayout) +
		partnerKey +
		partnerRefNo +
		strconv.FormatInt(totalAmount, 10) +
		partnerPassword

	digest := sha256.Sum256([]byte(payload))
	return base64.StdEncoding.EncodeToString(digest[:]), nil
}
