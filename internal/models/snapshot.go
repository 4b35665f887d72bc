package models

// RateSnapshot is the event published after each fresh upstream fetch of
// latest rates.
type RateSnapshot struct {
	SnapshotID string           `json:"snapshot_id"` // SnapshotID is a unique identifier for the snapshot.
	Timestamp  int64            `json:"timestamp"`   // Timestamp is the Unix time (seconds) the rates were fetched.
	Base       Code             `json:"base"`        // Base is the pivot currency of Rates.
	Date       string           `json:"date"`        // Date is the upstream "as of" date.
	Rates      map[Code]float64 `json:"rates"`       // Rates are units per one unit of Base.
	Source     string           `json:"source"`      // Source names the upstream, e.g. "frankfurter".
}
