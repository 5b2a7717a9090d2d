package app

import (
	"context"
	"net/http"
	"os"

	"trendclip/internal/backend"
	"trendclip/internal/clipboard"
	"trendclip/internal/export"
	"trendclip/internal/storage"
	"trendclip/internal/wizard"
	"trendclip/pkg/config"
	"trendclip/pkg/httputil"
)

type BuildOptions struct {
	// NoClipboard skips the system clipboard and goes straight to the
	// terminal fallbacks.
	NoClipboard bool
}

// BuildService wires the backend client, clipboard, exporters and a fresh
// wizard from cfg.
func BuildService(ctx context.Context, cfg *config.Config, opts BuildOptions) (*Service, error) {
	retryCfg := httputil.DefaultRetryConfig()
	retryCfg.MaxRetries = cfg.Backend.MaxRetries
	httpClient := httputil.NewRetryClient(&http.Client{Timeout: cfg.Backend.Timeout}, retryCfg)

	client := backend.NewClient(backend.Options{
		BaseURL:    cfg.Backend.BaseURL,
		HTTPClient: httpClient,
	})

	copier := clipboard.New(clipboard.Options{
		Terminal:      os.Stderr,
		Manual:        os.Stdout,
		DisableSystem: opts.NoClipboard,
	})

	local := storage.NewLocalStorage(cfg.Export.Dir)
	targets := []storage.Storage{local}

	var gcs *storage.GCSStorage
	if cfg.Export.GCS.Enabled && cfg.Export.GCS.Bucket != "" {
		var err error
		gcs, err = storage.NewGCSStorage(ctx, cfg.Export.GCS.Bucket, cfg.Export.GCS.Prefix, cfg.Export.GCS.CredentialsFile)
		if err != nil {
			return nil, err
		}
		targets = append(targets, gcs)
	}

	service := NewService(ServiceOptions{
		Config:   cfg,
		Backend:  client,
		Copier:   copier,
		Exporter: export.New(targets...),
		Local:    local,
		GCS:      gcs,
	})
	service.NewWizard()

	return service, nil
}

func wizardOptions(cfg *config.Config, b wizard.Backend, copier wizard.Copier) wizard.Options {
	return wizard.Options{
		Backend:         b,
		Copier:          copier,
		Country:         cfg.News.Country,
		DefaultCategory: cfg.News.DefaultCategory,
		Platform:        cfg.Content.Platform,
		Style:           cfg.Content.Style,
	}
}
