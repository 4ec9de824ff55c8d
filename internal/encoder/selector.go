package encoder

import (
	"context"
	"log/slog"
	"runtime"

	"chapsplit/internal/logging"
)

// Prober runs one probe invocation of the external tool for a candidate
// encoder. Implemented by the ffmpeg client; faked in tests.
type Prober interface {
	ProbeEncoder(ctx context.Context, encoderID string, extraArgs []string) error
}

// Selector resolves the hardware encoder configuration for a run. Probe
// failures are never fatal: they degrade to the next candidate or to the
// null configuration.
type Selector struct {
	prober Prober
	logger *slog.Logger
	goos   string
}

// NewSelector constructs a selector for the current host OS.
func NewSelector(prober Prober, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Selector{prober: prober, logger: logger, goos: runtime.GOOS}
}

// Resolve picks the encoder configuration for this run. It is called exactly
// once per invocation; the caller reuses the result for every chapter.
func (s *Selector) Resolve(ctx context.Context, mode Mode, name string) Config {
	switch mode {
	case ModeDisabled:
		return Null()
	case ModeExplicit:
		candidate, ok := Lookup(name)
		if !ok {
			s.logger.Warn("unknown hardware encoder, using software path", logging.String("name", name))
			return Null()
		}
		return s.probe(ctx, candidate)
	default:
		for _, candidate := range candidatesFor(s.goos) {
			if resolved := s.probe(ctx, candidate); !resolved.IsNull() {
				return resolved
			}
		}
		return Null()
	}
}

func (s *Selector) probe(ctx context.Context, candidate Candidate) Config {
	if err := s.prober.ProbeEncoder(ctx, candidate.EncoderID, candidate.ExtraArgs); err != nil {
		s.logger.Debug("encoder probe failed",
			logging.String("encoder", candidate.EncoderID),
			logging.Error(err))
		return Null()
	}
	s.logger.Info("hardware encoder available", logging.String("encoder", candidate.EncoderID))
	return Config{
		Name:      candidate.Name,
		EncoderID: candidate.EncoderID,
		ExtraArgs: append([]string(nil), candidate.ExtraArgs...),
	}
}
