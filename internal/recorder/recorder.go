// Package recorder persists flight data snapshots of the control loop
// to a local database, organized into recording sessions.
package recorder

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jetforge/fadecd/internal/controller"
	"github.com/jetforge/fadecd/internal/engines"
	"github.com/jetforge/fadecd/internal/ui"
)

const sessionBucketPrefix = "session-"

// EngineRecord is the recorded state of one engine at one instant.
type EngineRecord struct {
	Mode              string  `json:"mode"`
	Axis              float64 `json:"axis"`
	ThrustTarget      float64 `json:"thrustTarget"`
	MeasuredThrust    float64 `json:"measuredThrust"`
	CommandedThrottle float64 `json:"commandedThrottle"`
	VisualThrottle    float64 `json:"visualThrottle"`
	FadecEnabled      bool    `json:"fadecEnabled"`
}

// Record is one flight data snapshot covering both engines. Dt is the
// control interval the step integrated over, in seconds.
type Record struct {
	Timestamp        time.Time    `json:"timestamp"`
	Dt               float64      `json:"dt"`
	Mach             float64      `json:"mach"`
	AmbientDensity   float64      `json:"ambientDensity"`
	PressureAltitude float64      `json:"pressureAltitude"`
	Engine1          EngineRecord `json:"engine1"`
	Engine2          EngineRecord `json:"engine2"`
}

// RecordFromSnapshot flattens a control loop snapshot into a Record.
func RecordFromSnapshot(timestamp time.Time, snapshot controller.Snapshot) Record {
	flatten := func(state controller.EngineState) EngineRecord {
		return EngineRecord{
			Mode:              state.Mode.String(),
			Axis:              float64(state.Axis),
			ThrustTarget:      float64(state.ThrustTarget),
			MeasuredThrust:    state.MeasuredThrust,
			CommandedThrottle: float64(state.CommandedThrottle),
			VisualThrottle:    float64(state.VisualThrottle),
			FadecEnabled:      state.FadecEnabled,
		}
	}
	return Record{
		Timestamp:        timestamp,
		Dt:               snapshot.Dt.Seconds(),
		Mach:             snapshot.Mach,
		AmbientDensity:   snapshot.AmbientDensity,
		PressureAltitude: snapshot.PressureAltitude,
		Engine1:          flatten(snapshot.Engines.Get(engines.Engine1)),
		Engine2:          flatten(snapshot.Engines.Get(engines.Engine2)),
	}
}

type Persistence interface {
	Init() error

	SaveRecord(sessionId string, record Record) error
	LoadSession(sessionId string) ([]Record, error)
	Sessions() ([]string, error)
	DeleteSession(sessionId string) error

	// EnsureSessionLimit deletes the oldest sessions until at most
	// maxSessions remain.
	EnsureSessionLimit(maxSessions int) error
}

func NewPersistence(dbPath string) Persistence {
	return &persistence{dbPath: dbPath}
}

type persistence struct {
	dbPath string
}

func (p *persistence) openPersistence() (*bolt.DB, error) {
	db, err := bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		ui.Error("Could not open database file: %s", p.dbPath)
		return nil, err
	}
	return db, nil
}

func (p *persistence) Init() error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	return db.Close()
}

func sessionBucketName(sessionId string) []byte {
	return []byte(sessionBucketPrefix + sessionId)
}

func (p *persistence) SaveRecord(sessionId string, record Record) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer db.Close()

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(sessionBucketName(sessionId))
		if err != nil {
			return err
		}
		key := []byte(record.Timestamp.UTC().Format(time.RFC3339Nano))
		return bucket.Put(key, data)
	})
}

func (p *persistence) LoadSession(sessionId string) ([]Record, error) {
	db, err := p.openPersistence()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var records []Record
	err = db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionBucketName(sessionId))
		if bucket == nil {
			return fmt.Errorf("no such session: %s", sessionId)
		}
		return bucket.ForEach(func(k, v []byte) error {
			var record Record
			if err := json.Unmarshal(v, &record); err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
	})
	return records, err
}

func (p *persistence) Sessions() ([]string, error) {
	db, err := p.openPersistence()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var sessions []string
	err = db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			if strings.HasPrefix(string(name), sessionBucketPrefix) {
				sessions = append(sessions, strings.TrimPrefix(string(name), sessionBucketPrefix))
			}
			return nil
		})
	})
	sort.Strings(sessions)
	return sessions, err
}

func (p *persistence) DeleteSession(sessionId string) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		return tx.DeleteBucket(sessionBucketName(sessionId))
	})
}

func (p *persistence) EnsureSessionLimit(maxSessions int) error {
	sessions, err := p.Sessions()
	if err != nil {
		return err
	}
	// session ids are timestamps, so lexical order is age order
	for len(sessions) > maxSessions {
		oldest := sessions[0]
		ui.Info("Rotating out recorded session: %s", oldest)
		if err := p.DeleteSession(oldest); err != nil {
			return err
		}
		sessions = sessions[1:]
	}
	return nil
}

// Recorder periodically snapshots the control loop into a new session.
type Recorder struct {
	persistence Persistence
	driver      *controller.Driver
	rate        time.Duration
	maxSessions int
	sessionId   string
}

// NewRecorder creates a recorder writing to a fresh session named
// after the current time.
func NewRecorder(persistence Persistence, driver *controller.Driver, rate time.Duration, maxSessions int) *Recorder {
	return &Recorder{
		persistence: persistence,
		driver:      driver,
		rate:        rate,
		maxSessions: maxSessions,
		sessionId:   time.Now().UTC().Format("20060102T150405Z"),
	}
}

// SessionId returns the id of the session this recorder writes to.
func (r *Recorder) SessionId() string {
	return r.sessionId
}

// Run records snapshots until the context is cancelled.
func (r *Recorder) Run(ctx context.Context) error {
	if err := r.persistence.EnsureSessionLimit(r.maxSessions); err != nil {
		return err
	}
	ui.Info("Recording flight data to session %s every %s", r.sessionId, r.rate)

	tick := time.NewTicker(r.rate)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-tick.C:
			record := RecordFromSnapshot(now, r.driver.Snapshot())
			if err := r.persistence.SaveRecord(r.sessionId, record); err != nil {
				ui.Warning("Unable to record flight data snapshot: %v", err)
			}
		}
	}
}
