package formatter

import (
	"encoding/json"
	"time"

	"github.com/theoremus-urban-solutions/gpx-align/align"
)

// Summary wraps a batch result with the response timestamp. It is the
// shape returned by the HTTP surface and by the CLI in -format json mode.
type Summary struct {
	ResponseTimestamp string             `json:"response_timestamp"`
	Result            *align.BatchResult `json:"result"`
}

// BuildJSON serializes a batch result to an indented JSON summary.
func BuildJSON(res *align.BatchResult) []byte {
	s := Summary{
		ResponseTimestamp: iso8601Now(),
		Result:            res,
	}
	b, _ := json.MarshalIndent(s, "", "  ")
	return b
}

func iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
