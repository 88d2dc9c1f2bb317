package service

import (
	"context"
	"fmt"
	"maps"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/validators"
	"github.com/MKhiriev/go-resource-client/models"
)

type faultService struct {
	mu     sync.RWMutex
	faults map[string]models.Fault

	// roll returns a number in [0, 1) compared against a fault's rate.
	roll func() float64

	validator validators.Validator
	logger    *logger.Logger
}

func NewFaultService(logger *logger.Logger) FaultService {
	return &faultService{
		faults:    make(map[string]models.Fault),
		roll:      rand.Float64,
		validator: validators.NewResourceValidator(),
		logger:    logger,
	}
}

func (s *faultService) SetFault(ctx context.Context, path string, fault models.Fault) (models.Fault, error) {
	if path == "" {
		return models.Fault{}, ErrFaultPathIsEmpty
	}
	if err := s.validator.Validate(ctx, fault); err != nil {
		return models.Fault{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if fault.Rate == 0 {
		fault.Rate = 1
	}

	s.mu.Lock()
	s.faults[path] = fault
	s.mu.Unlock()

	s.logger.Info().
		Str("path", path).
		Int("status", fault.StatusCode).
		Int("delay_ms", fault.DelayMS).
		Float64("rate", fault.Rate).
		Bool("drop", fault.Drop).
		Msg("fault registered")
	return fault, nil
}

func (s *faultService) RemoveFault(ctx context.Context, path string) error {
	s.mu.Lock()
	_, ok := s.faults[path]
	delete(s.faults, path)
	s.mu.Unlock()

	if !ok {
		return ErrFaultNotFound
	}

	s.logger.Info().Str("path", path).Msg("fault removed")
	return nil
}

func (s *faultService) Faults(ctx context.Context) map[string]models.Fault {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.faults)
}

func (s *faultService) Reset(ctx context.Context) {
	s.mu.Lock()
	clear(s.faults)
	s.mu.Unlock()

	s.logger.Info().Msg("faults reset")
}

func (s *faultService) Match(path string) (models.Fault, bool) {
	s.mu.RLock()
	fault, ok := s.faults[path]
	if !ok {
		fault, ok = s.matchPrefix(path)
	}
	s.mu.RUnlock()

	if !ok {
		return models.Fault{}, false
	}
	if fault.Rate < 1 && s.roll() >= fault.Rate {
		return models.Fault{}, false
	}
	return fault, true
}

// matchPrefix returns the fault of the longest "*" key prefixing path.
// The caller holds s.mu.
func (s *faultService) matchPrefix(path string) (models.Fault, bool) {
	var (
		best    models.Fault
		bestLen = -1
	)
	for key, fault := range s.faults {
		prefix, ok := strings.CutSuffix(key, "*")
		if !ok || !strings.HasPrefix(path, prefix) || len(prefix) <= bestLen {
			continue
		}
		best, bestLen = fault, len(prefix)
	}
	return best, bestLen >= 0
}
