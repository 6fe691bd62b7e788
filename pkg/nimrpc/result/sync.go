package result

import (
	"encoding/json"
	"errors"
)

// SyncStatus is the polymorphic result of the syncing call. The node
// answers with a bare boolean when it is not syncing (false) and with a
// progress object while a sync is running. Candidates are tried in the
// declared order boolean, progress; the two shapes cannot overlap, the
// order is fixed only to keep the decode deterministic.
type SyncStatus struct {
	// Syncing reports whether a sync is in progress. It is true whenever
	// Progress is set.
	Syncing bool
	// Progress holds the sync progress and is nil for the bare boolean
	// form.
	Progress *SyncProgress
}

// SyncProgress describes a running sync.
type SyncProgress struct {
	StartingBlock uint32 `json:"startingBlock"`
	CurrentBlock  uint32 `json:"currentBlock"`
	HighestBlock  uint32 `json:"highestBlock"`
}

var syncProgressFields = []string{"startingBlock", "currentBlock", "highestBlock"}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *SyncStatus) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return wrapDecode("sync status", err)
		}
		*s = SyncStatus{Syncing: b}
		return nil
	case '{':
		fields, err := objectFields(data, "sync status")
		if err != nil {
			return err
		}
		if err := checkRequired(fields, "sync status", syncProgressFields); err != nil {
			return err
		}
		var p SyncProgress
		if err := json.Unmarshal(data, &p); err != nil {
			return wrapDecode("sync status", err)
		}
		*s = SyncStatus{Syncing: true, Progress: &p}
		return nil
	}
	return wrapDecode("sync status", errors.New("payload is neither a boolean nor a progress object"))
}
