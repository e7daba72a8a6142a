package cors

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain/entity"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/observability"
)

type Status string

const (
	StatusSkipped              Status = "skipped"
	StatusAlreadyConfigured    Status = "already_configured"
	StatusInstalled            Status = "installed"
	StatusManualActionRequired Status = "manual_action_required"
	StatusFailed               Status = "failed"
)

type Result struct {
	Status Status
	Err    error
}

// Ready reports whether browsers can be expected to reach signed URLs.
func (r Result) Ready() bool {
	return r.Status == StatusAlreadyConfigured || r.Status == StatusInstalled
}

var manualSteps = []string{
	"1. Go to: https://secure.backblaze.com/b2_buckets.htm",
	"2. Click on your bucket, then Bucket Settings",
	"3. Find the CORS Rules section",
	"4. DELETE the existing B2 Native rule",
	`5. Add a NEW rule for "S3 Compatible API": origins *, operations s3_get s3_head s3_put, headers *, max age 3600`,
	"6. Save and restart this server",
}

// Reconciler makes sure the bucket lets browsers use signed URLs directly.
// It runs once at startup and never fails the process.
type Reconciler struct {
	bucket  storage.BucketCORS
	rules   []entity.CORSRule
	enabled bool
	logger  *zap.Logger
	metrics *observability.Metrics
}

func NewReconciler(bucket storage.BucketCORS, enabled bool, logger *zap.Logger, metrics *observability.Metrics) *Reconciler {
	return &Reconciler{
		bucket:  bucket,
		rules:   entity.DefaultCORSRules(),
		enabled: enabled,
		logger:  logger,
		metrics: metrics,
	}
}

func (r *Reconciler) Reconcile(ctx context.Context) Result {
	result := r.reconcile(ctx)
	r.report(result)
	r.metrics.ObserveCORSReconcile(string(result.Status))
	return result
}

func (r *Reconciler) reconcile(ctx context.Context) Result {
	if !r.enabled {
		return Result{Status: StatusSkipped}
	}

	r.logger.Info("checking bucket cors configuration")

	existing, err := r.bucket.GetCORSRules(ctx)
	switch {
	case errors.Is(err, domain.ErrCORSNotConfigured):
		existing = nil
	case errors.Is(err, domain.ErrLegacyCORSRules):
		return Result{Status: StatusManualActionRequired, Err: err}
	case err != nil:
		return Result{Status: StatusFailed, Err: fmt.Errorf("reading bucket cors: %w", err)}
	case entity.AnyAllowsBrowserUploads(existing):
		return Result{Status: StatusAlreadyConfigured}
	}

	// Existing rules are kept so other consumers of the bucket keep working.
	rules := append(append([]entity.CORSRule{}, existing...), r.rules...)
	if err := r.bucket.PutCORSRules(ctx, rules); err != nil {
		if errors.Is(err, domain.ErrLegacyCORSRules) {
			return Result{Status: StatusManualActionRequired, Err: err}
		}
		return Result{Status: StatusFailed, Err: fmt.Errorf("writing bucket cors: %w", err)}
	}

	return Result{Status: StatusInstalled}
}

func (r *Reconciler) report(result Result) {
	switch result.Status {
	case StatusSkipped:
		r.logger.Info("bucket cors setup disabled")
	case StatusAlreadyConfigured:
		r.logger.Info("bucket cors is configured")
	case StatusInstalled:
		r.logger.Info("bucket cors installed", zap.Int("rules", len(r.rules)))
	case StatusManualActionRequired:
		r.logger.Warn("bucket has B2 Native CORS rules, update them manually in the B2 web console",
			zap.Strings("steps", manualSteps),
			zap.Error(result.Err),
		)
	default:
		r.logger.Warn("could not verify or set up bucket cors automatically", zap.Error(result.Err))
	}
}
