package granary

import "github.com/sirupsen/logrus"

const (
	// DefaultMaxEntities is the entity capacity used when Config.MaxEntities
	// is left zero.
	DefaultMaxEntities = 5000

	// MaxComponentTypes bounds how many distinct component types a Directory
	// can register. It matches the signature mask width.
	MaxComponentTypes = 64
)

// Config holds construction options for a Context.
type Config struct {
	// MaxEntities fixes the entity capacity for the lifetime of the Context.
	// Zero selects DefaultMaxEntities.
	MaxEntities int

	// Log receives lifecycle events at debug level. Nil discards them.
	Log *logrus.Logger
}
