package apifootball

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

type eventsEnvelope struct {
	Data       []eventItem `json:"data"`
	Pagination pagination  `json:"pagination"`
}

type pagination struct {
	Count       int  `json:"count"`
	PerPage     int  `json:"per_page"`
	CurrentPage int  `json:"current_page"`
	HasMore     bool `json:"has_more"`
}

type eventItem struct {
	ID        int64  `json:"id"`
	HomeName  string `json:"home_name"`
	AwayName  string `json:"away_name"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Status    string `json:"status"`
	EventDate string `json:"event_date"` // "YYYY-MM-DD HH:MM:SS", RFC3339 on some mirrors
}

// buildCurlPreview renders a copy-pasteable request for failure logs with the
// token already redacted.
func buildCurlPreview(method, fullURL string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart("-X")
	appendPart(method)
	appendPart(shellQuote(redactAPIURL(fullURL)))
	appendPart("-H")
	appendPart(shellQuote("accept: application/json"))

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}
