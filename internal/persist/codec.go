// internal/persist/codec.go
package persist

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/unoflip/engine"
	"golang.org/x/crypto/blake2b"
)

// SchemaVersion is written into every envelope; Decode rejects others.
const SchemaVersion = 1

// Envelope wraps an encoded snapshot. Checksum is the hex BLAKE2b-256 of
// Payload exactly as stored.
type Envelope struct {
	Version  int             `json:"version"`
	SaveID   uuid.UUID       `json:"saveId"`
	SavedAt  time.Time       `json:"savedAt"`
	Checksum string          `json:"checksum"`
	Payload  json.RawMessage `json:"payload"`
}

// Codec converts snapshots to and from save bytes.
type Codec struct {
	now func() time.Time
}

// NewCodec returns a Codec stamping saves with the wall clock.
func NewCodec() *Codec {
	return &Codec{now: time.Now}
}

// Encode serialises s into an envelope.
func (c *Codec) Encode(s engine.Snapshot) ([]byte, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: encode snapshot: %v", ErrPersistence, err)
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("%w: save id: %v", ErrPersistence, err)
	}
	env := Envelope{
		Version:  SchemaVersion,
		SaveID:   id,
		SavedAt:  c.now().UTC(),
		Checksum: checksum(payload),
		Payload:  payload,
	}
	// Plain Marshal keeps Payload byte-identical so the checksum still holds.
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("%w: encode envelope: %v", ErrPersistence, err)
	}
	return data, nil
}

// Decode parses and fully validates a save. The snapshot is only returned
// when the envelope, checksum and game state are all consistent.
func (c *Codec) Decode(data []byte) (engine.Snapshot, Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return engine.Snapshot{}, Envelope{}, fmt.Errorf("%w: envelope: %v", ErrCorrupt, err)
	}
	if env.Version != SchemaVersion {
		return engine.Snapshot{}, env, fmt.Errorf("%w: schema version %d, want %d", ErrCorrupt, env.Version, SchemaVersion)
	}
	if len(env.Payload) == 0 {
		return engine.Snapshot{}, env, fmt.Errorf("%w: empty payload", ErrCorrupt)
	}
	if got := checksum(env.Payload); got != env.Checksum {
		return engine.Snapshot{}, env, fmt.Errorf("%w: checksum %s, want %s", ErrCorrupt, got, env.Checksum)
	}

	var s engine.Snapshot
	if err := json.Unmarshal(env.Payload, &s); err != nil {
		return engine.Snapshot{}, env, fmt.Errorf("%w: payload: %v", ErrCorrupt, err)
	}
	if err := s.Validate(); err != nil {
		return engine.Snapshot{}, env, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return s, env, nil
}

// Save encodes s and writes it to st under key.
func (c *Codec) Save(ctx context.Context, st Store, key string, s engine.Snapshot) error {
	data, err := c.Encode(s)
	if err != nil {
		return err
	}
	return st.Put(ctx, key, data)
}

// Load reads key from st and decodes it.
func (c *Codec) Load(ctx context.Context, st Store, key string) (engine.Snapshot, error) {
	data, err := st.Get(ctx, key)
	if err != nil {
		return engine.Snapshot{}, err
	}
	s, _, err := c.Decode(data)
	return s, err
}

func checksum(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}
