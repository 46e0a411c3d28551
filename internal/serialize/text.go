package serialize

import (
	"bytes"
	"fmt"

	"github.com/iamNilotpal/checksum/internal/core/domain"
)

// MarshalText renders one line per result: the checksum in hex, the payload
// size and the path.
func MarshalText(report *domain.Report) []byte {
	var buf bytes.Buffer
	for _, r := range report.Results {
		path := r.Path
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(&buf, "%08x  %d  %s\n", r.Checksum, r.Size, path)
	}
	return buf.Bytes()
}
