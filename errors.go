package mapreduce

import "github.com/pkg/errors"

// Configuration errors, returned by Run before any worker is spawned.
// Callers can test for these with errors.Is; the message is still
// wrapped with context by ValidateConfig.
var (
	// ErrNoArgs is returned when args is nil.
	ErrNoArgs = errors.New("mapreduce: args must not be nil")
	// ErrNoInputFiles is returned when args has no file names (len(args) < 2).
	ErrNoInputFiles = errors.New("mapreduce: no input files")
	// ErrNoMappers is returned when numMappers is zero.
	ErrNoMappers = errors.New("mapreduce: numMappers must be > 0")
	// ErrNoReducers is returned when numReducers is zero.
	ErrNoReducers = errors.New("mapreduce: numReducers must be > 0")
)

// ValidateConfig reports the configuration errors spec'd for Run:
// a nil args slice, zero input files, zero mappers, or zero reducers.
// It is called once at the top of Run, before any partition or worker
// goroutine is created.
func ValidateConfig(args []string, numMappers, numReducers int) error {
	if args == nil {
		return errors.WithStack(ErrNoArgs)
	}
	if len(args) < 2 {
		return errors.WithStack(ErrNoInputFiles)
	}
	if numMappers <= 0 {
		return errors.WithStack(ErrNoMappers)
	}
	if numReducers <= 0 {
		return errors.WithStack(ErrNoReducers)
	}
	return nil
}
