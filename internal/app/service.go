package app

import (
	"context"
	"time"

	"trendclip/internal/export"
	"trendclip/internal/storage"
	"trendclip/internal/wizard"
	"trendclip/pkg/config"
)

type Service struct {
	cfg      *config.Config
	backend  wizard.Backend
	copier   wizard.Copier
	exporter *export.Exporter
	local    *storage.LocalStorage
	gcs      *storage.GCSStorage
	wizard   *wizard.Wizard
	now      func() time.Time
}

type ServiceOptions struct {
	Config   *config.Config
	Backend  wizard.Backend
	Copier   wizard.Copier
	Exporter *export.Exporter
	Local    *storage.LocalStorage
	GCS      *storage.GCSStorage
	Now      func() time.Time
}

func NewService(opts ServiceOptions) *Service {
	if opts.Config == nil {
		opts.Config = &config.Config{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		cfg:      opts.Config,
		backend:  opts.Backend,
		copier:   opts.Copier,
		exporter: opts.Exporter,
		local:    opts.Local,
		gcs:      opts.GCS,
		now:      opts.Now,
	}
}

func (s *Service) Config() *config.Config              { return s.cfg }
func (s *Service) Backend() wizard.Backend             { return s.backend }
func (s *Service) Exporter() *export.Exporter          { return s.exporter }
func (s *Service) LocalStorage() *storage.LocalStorage { return s.local }
func (s *Service) GCSStorage() *storage.GCSStorage     { return s.gcs }

// Wizard returns the current wizard, creating one on first use.
func (s *Service) Wizard() *wizard.Wizard {
	if s.wizard == nil {
		s.NewWizard()
	}
	return s.wizard
}

// NewWizard replaces the current wizard with one holding an empty store.
func (s *Service) NewWizard() *wizard.Wizard {
	s.wizard = wizard.New(wizardOptions(s.cfg, s.backend, s.copier))
	return s.wizard
}

// Export writes the package generated for the current selections.
func (s *Service) Export(ctx context.Context) ([]string, error) {
	bundle, err := export.BundleFromState(s.Wizard().Store.Snapshot(), s.now())
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(ctx, bundle)
}

// Exports lists export directories from every configured storage.
func (s *Service) Exports(ctx context.Context) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, target := range s.exporter.Targets() {
		dirs, err := target.List(ctx)
		if err != nil {
			return nil, err
		}
		out[targetName(target)] = dirs
	}
	return out, nil
}

func targetName(target storage.Storage) string {
	switch t := target.(type) {
	case *storage.LocalStorage:
		return t.Dir()
	case *storage.GCSStorage:
		return t.URL()
	default:
		return "storage"
	}
}

func (s *Service) Close() error {
	if s.gcs != nil {
		return s.gcs.Close()
	}
	return nil
}
