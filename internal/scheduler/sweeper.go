package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Rodolf-GitHub/jatishop-back/internal/services"
)

// Sweeper owns the background license sweep. It replaces the old
// start-if-not-running module singleton with an explicit lifecycle managed
// by the composition root.
type Sweeper struct {
	licenciaSvc services.LicenciaService
	interval    time.Duration
	eager       bool

	mu      sync.Mutex
	runMu   sync.Mutex
	cron    *cron.Cron
	running bool
}

func NewSweeper(licenciaSvc services.LicenciaService, interval time.Duration, eager bool) *Sweeper {
	return &Sweeper{
		licenciaSvc: licenciaSvc,
		interval:    interval,
		eager:       eager,
	}
}

// Start runs the sweep once eagerly (when configured) and then on the fixed
// interval. Calling Start on a running sweeper is an error, not a silent
// second timer.
func (s *Sweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("sweeper already running")
	}

	if s.eager {
		go s.run()
	}

	s.cron = cron.New()
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), s.run)
	if err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}
	s.cron.Start()
	s.running = true

	logrus.WithField("interval", s.interval.String()).Info("Sweeper de licencias iniciado")
	return nil
}

func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	logrus.Info("Sweeper de licencias detenido")
}

func (s *Sweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// run serializes overlapping invocations: a slow sweep delays the next tick
// instead of running beside it.
func (s *Sweeper) run() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	result := s.licenciaSvc.Sweep()
	logrus.WithFields(logrus.Fields{
		"activas":  result.Activas,
		"vencidas": result.Vencidas,
		"creadas":  result.Creadas,
	}).Info("Sweep de licencias completado")
}
