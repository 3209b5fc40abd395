package domain

import (
	"log/slog"
	"math"
	"time"
)

type AccountID string

// Account is one linked Copilot account. Token is the raw credential
// and must never appear in logs or rendered output in full.
type Account struct {
	ID                      AccountID
	Username                string
	Email                   string
	Plan                    string
	MonthlyIncludedRequests *int64
	Token                   string
	Quota                   *Quota
	Tags                    []string
	CreatedAt               time.Time
	LastUsed                time.Time
}

func (a Account) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RedactedToken keeps enough of the credential to recognize it.
func (a Account) RedactedToken() string {
	const keep = 4
	if len(a.Token) <= 2*keep {
		return "****"
	}
	return a.Token[:keep] + "…" + a.Token[len(a.Token)-keep:]
}

// LogValue keeps the credential out of log records.
func (a Account) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", string(a.ID)),
		slog.String("username", a.Username),
		slog.String("token", a.RedactedToken()),
	)
}

// Quota is a point-in-time usage snapshot. RawData carries the
// provider response verbatim for diagnostics and is never interpreted.
type Quota struct {
	UsedRequests      int64
	IncludedRequests  *int64
	RemainingRequests *int64
	UsageItemsCount   int
	Plan              string
	ResetDate         string
	RawData           []byte
}

// UsedPercent reports the percentage of included requests consumed,
// clamped to [0,100]. The second return is false when no included
// ceiling is known; callers must render that as unavailable, not zero.
func (q Quota) UsedPercent() (int, bool) {
	if q.IncludedRequests == nil || *q.IncludedRequests <= 0 {
		return 0, false
	}

	ratio := float64(q.UsedRequests) / float64(*q.IncludedRequests)
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	return int(math.Round(ratio * 100)), true
}
