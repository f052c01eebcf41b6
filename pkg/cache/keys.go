package cache

import (
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// SchemaVersion is mixed into every sequence key. Bump it whenever the
// step format or a generator's output changes so stale entries miss.
const SchemaVersion = 1

// Key type labels reported to cache hooks.
const (
	KeyTypeSequence = "sequence"
	KeyTypeFrame    = "frame"
)

// Keyer derives cache keys.
type Keyer interface {
	// SequenceKey identifies the sequence of algorithm on in.
	SequenceKey(algorithm string, in step.Input) string

	// FrameKey identifies a rendered frame of a sequence.
	FrameKey(sequenceKey string, index int, format string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SequenceKey implements Keyer.
func (DefaultKeyer) SequenceKey(algorithm string, in step.Input) string {
	return hashKey("seq", SchemaVersion, algorithm, in)
}

// FrameKey implements Keyer.
func (DefaultKeyer) FrameKey(sequenceKey string, index int, format string) string {
	return hashKey("frame", sequenceKey, index, format)
}

// ScopedKeyer prefixes every key of an inner Keyer, for example to keep the
// entries of several server deployments apart in one Redis.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SequenceKey implements Keyer.
func (k *ScopedKeyer) SequenceKey(algorithm string, in step.Input) string {
	return k.prefix + k.inner.SequenceKey(algorithm, in)
}

// FrameKey implements Keyer.
func (k *ScopedKeyer) FrameKey(sequenceKey string, index int, format string) string {
	return k.prefix + k.inner.FrameKey(sequenceKey, index, format)
}
