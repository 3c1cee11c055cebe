package configuration

import "time"

type RecorderConfig struct {
	Enabled bool `json:"enabled"`

	// MaxSessions caps how many recorded sessions are kept in the
	// database before the oldest are rotated out.
	MaxSessions int `json:"maxSessions"`

	// SnapshotRate is the interval between recorded snapshots.
	SnapshotRate time.Duration `json:"snapshotRate"`
}
