// Package driver renders sign classifications for a sequence of inputs.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muliwe/go-sign-classifier/internal/classifier"
)

// DefaultBanner is written once before any input is processed
const DefaultBanner = "--- Execution ---"

// ErrNoInputs is returned when a Driver is created without inputs
var ErrNoInputs = errors.New("driver: no inputs to classify")

// Samples is the fixed input sequence of the default run
func Samples() []int {
	return []int{-5, 0, 7}
}

// Recorder persists classification results
type Recorder interface {
	Record(runID string, result classifier.Result) error
}

// Config holds driver configuration
type Config struct {
	Inputs []int
	Banner string
}

// DefaultConfig returns the fixed sample run
func DefaultConfig() Config {
	return Config{
		Inputs: Samples(),
		Banner: DefaultBanner,
	}
}

// Option configures optional Driver dependencies
type Option func(*Driver)

// WithLogger sets the diagnostic logger
func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) {
		d.log = l
	}
}

// WithRecorder sets a recorder that receives every result
func WithRecorder(r Recorder) Option {
	return func(d *Driver) {
		d.recorder = r
	}
}

// Driver writes one labeled line per input to out
type Driver struct {
	cfg      Config
	out      io.Writer
	log      *zap.Logger
	recorder Recorder
}

// New creates a driver writing to out
func New(cfg Config, out io.Writer, opts ...Option) (*Driver, error) {
	if len(cfg.Inputs) == 0 {
		return nil, ErrNoInputs
	}

	d := &Driver{
		cfg: cfg,
		out: out,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Run writes the banner and then classifies each input in order
func (d *Driver) Run(ctx context.Context) error {
	runID := uuid.New().String()
	log := d.log.With(zap.String("run_id", runID))
	log.Debug("run started", zap.Int("inputs", len(d.cfg.Inputs)))

	if d.cfg.Banner != "" {
		if _, err := fmt.Fprintln(d.out, d.cfg.Banner); err != nil {
			return fmt.Errorf("failed to write banner: %w", err)
		}
	}

	for _, num := range d.cfg.Inputs {
		if err := ctx.Err(); err != nil {
			log.Warn("run cancelled", zap.Error(err))
			return err
		}

		if _, err := fmt.Fprintf(d.out, "Input: %d -> Output: ", num); err != nil {
			return fmt.Errorf("failed to write prompt for %d: %w", num, err)
		}

		result := classifier.Evaluate(num)

		if _, err := fmt.Fprintln(d.out, result.Message); err != nil {
			return fmt.Errorf("failed to write result for %d: %w", num, err)
		}

		log.Debug("classified",
			zap.Int("input", num),
			zap.Stringer("classification", result.Classification),
		)

		if d.recorder != nil {
			if err := d.recorder.Record(runID, result); err != nil {
				return fmt.Errorf("failed to record result for %d: %w", num, err)
			}
		}
	}

	log.Debug("run finished")
	return nil
}
