package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Adda-Baaj/sentiment-client/internal/config"
	"github.com/Adda-Baaj/sentiment-client/internal/domain"
	"github.com/Adda-Baaj/sentiment-client/internal/logger"
	"github.com/Adda-Baaj/sentiment-client/internal/samples"
	"github.com/Adda-Baaj/sentiment-client/internal/storage"
	"github.com/Adda-Baaj/sentiment-client/pkg/publishers"
	"github.com/Adda-Baaj/sentiment-client/pkg/sentiment"
)

// Analyzer sends one text to the sentiment endpoint and returns the raw response body.
type Analyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (string, error)
	Endpoint() string
}

// Summary tallies one integration run.
type Summary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Published int `json:"published"`
}

// Demo runs the sample texts through the analyzer and prints a transcript.
// Successful analyses are optionally fanned out to downstream publishers.
type Demo struct {
	samples  []string
	analyzer Analyzer
	fanout   *publishers.Fanout
	store    storage.Store
	out      io.Writer
	errOut   io.Writer
	log      logger.Logger
	now      func() time.Time
}

// NewDemo builds the demo runtime from config.
func NewDemo(ctx context.Context, cfg *config.Config, log logger.Logger) (*Demo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	mode, err := sentiment.ParseEscapeMode(cfg.EscapeMode)
	if err != nil {
		return nil, fmt.Errorf("sentiment escape mode: %w", err)
	}
	client := sentiment.New(sentiment.Options{
		EndpointURL:    cfg.EndpointURL,
		ConnectTimeout: cfg.ConnectTimeout,
		RequestTimeout: cfg.RequestTimeout,
		Escaping:       mode,
	}, log)

	texts := samples.Default()
	if strings.TrimSpace(cfg.SamplesFile) != "" {
		texts, err = samples.Load(cfg.SamplesFile)
		if err != nil {
			return nil, fmt.Errorf("load samples: %w", err)
		}
	}
	log.InfoObj("samples loaded", "samples_meta", map[string]any{
		"count": len(texts),
		"file":  cfg.SamplesFile,
	})

	fanout, err := buildFanout(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		EntryTTL:        cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		_ = fanout.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"entry_ttl_seconds":        int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	return &Demo{
		samples:  texts,
		analyzer: client,
		fanout:   fanout,
		store:    store,
		out:      os.Stdout,
		errOut:   os.Stderr,
		log:      log,
		now:      time.Now,
	}, nil
}

// buildFanout returns an empty fanout when no publishers file is configured.
func buildFanout(ctx context.Context, cfg *config.Config, log logger.Logger) (*publishers.Fanout, error) {
	if strings.TrimSpace(cfg.PublishersFile) == "" {
		return publishers.NewFanout(nil), nil
	}

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}
	enabled := publisherReg.Enabled()
	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}

	summaries := make([]map[string]string, 0, len(enabled))
	for _, pubCfg := range enabled {
		summaries = append(summaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(summaries),
		"publishers": summaries,
	})
	return publishers.NewFanout(pubClients), nil
}

// Run analyzes every sample in order. A failing sample is reported and the run
// moves on; cancellation stops the run before the next sample.
func (d *Demo) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	if d == nil || d.analyzer == nil {
		return sum, fmt.Errorf("demo is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d.log.InfoObj("demo run starting", "demo_state", map[string]any{
		"samples_count":    len(d.samples),
		"publishers_count": d.fanout.Size(),
		"endpoint":         d.analyzer.Endpoint(),
	})
	fmt.Fprint(d.out, "Starting sentiment API integration run...\n\n")

	for _, text := range d.samples {
		if err := ctx.Err(); err != nil {
			d.log.InfoObj("demo run interrupted", "demo_summary", sum)
			return sum, err
		}

		sum.Total++
		fmt.Fprintf(d.out, "Analyzing: \"%s\"\n", text)

		body, err := d.analyzer.AnalyzeSentiment(ctx, text)
		if err != nil {
			sum.Failed++
			fmt.Fprintf(d.errOut, "Error: %s\n", err.Error())
			continue
		}

		sum.Succeeded++
		fmt.Fprintf(d.out, "Response: %s\n\n", body)

		if d.publish(ctx, text, body) {
			sum.Published++
		}
	}

	d.log.InfoObj("demo run completed", "demo_summary", sum)
	return sum, nil
}

// publish fans the analysis out to downstream sinks unless the journal has
// already seen the text. It reports whether at least one sink accepted it.
func (d *Demo) publish(ctx context.Context, text, body string) bool {
	if d.fanout.Size() == 0 {
		return false
	}

	id := domain.TextID(text)
	if d.store != nil {
		seen, err := d.store.SeenText(id)
		if err != nil {
			d.log.WarnObj("journal lookup failed", "journal_error", map[string]any{
				"id":    id,
				"error": err.Error(),
			})
		} else if seen {
			d.log.DebugObj("text already published", "journal_skip", map[string]any{"id": id})
			return false
		}
	}

	analysis := domain.Analysis{
		ID:         id,
		Text:       text,
		Response:   body,
		Endpoint:   d.analyzer.Endpoint(),
		AnalyzedAt: d.now(),
	}
	if res, err := sentiment.ParseResult(body); err == nil {
		analysis.Label = string(res.Sentiment)
		analysis.Confidence = res.ConfidenceScore
	} else {
		d.log.DebugObj("response not decoded", "result_decode", map[string]any{
			"id":    id,
			"error": err.Error(),
		})
	}

	count, err := d.fanout.Publish(ctx, publishers.NewEvent(analysis))
	if err != nil {
		d.log.ErrorObj("publish failed", "publish_error", map[string]any{
			"id":        id,
			"delivered": count,
			"error":     err.Error(),
		})
	}
	if count == 0 {
		return false
	}

	if d.store != nil {
		if err := d.store.MarkText(id); err != nil {
			d.log.WarnObj("journal write failed", "journal_error", map[string]any{
				"id":    id,
				"error": err.Error(),
			})
		}
	}
	return true
}

// Close releases publishers and the journal.
func (d *Demo) Close() error {
	if d == nil {
		return nil
	}
	var errs []error
	if err := d.fanout.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close publishers: %w", err))
	}
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	return errors.Join(errs...)
}
