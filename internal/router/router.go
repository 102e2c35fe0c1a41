// Package router sequences the classification pipeline: scope guard, remote
// tier, heuristic fallback, category rule engine. It always returns a
// Result; no classification path is fatal.
package router

import (
	"context"
	"log/slog"
	"strings"

	"anota/internal/classify"
	"anota/internal/common"
	"anota/internal/model"
	"anota/internal/rules"
)

// Router orchestrates one classification per call. Each call operates on its
// own input and a read-only rule snapshot, so concurrent invocations are
// safe without locking.
type Router struct {
	guard     *classify.ScopeGuard
	remote    classify.Classifier
	heuristic classify.Classifier
	logger    *slog.Logger
}

// New creates a router. remote may be nil when the remote tier is disabled
// by policy; the heuristic tier is mandatory.
func New(remote, heuristic classify.Classifier, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		guard:     classify.NewScopeGuard(),
		remote:    remote,
		heuristic: heuristic,
		logger:    logger,
	}
}

// Route classifies the text and, for money results, assigns a category from
// the engine snapshot. The scope guard runs first and is unconditional. The
// remote tier is tried next when configured; any failure (timeout, non-2xx,
// schema violation) falls through to the heuristic tier without surfacing
// the error. An unexpected panic degrades to the general low-confidence
// result rather than breaking the caller.
func (r *Router) Route(ctx context.Context, text string, engine *rules.Engine) (result model.Result, err error) {
	if strings.TrimSpace(text) == "" {
		return model.Result{}, common.ErrEmptyInput
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("classification panic recovered", "panic", rec)
			result = model.EntryResult(model.DomainGeneral, classify.ConfidenceDefault, text, nil)
			err = nil
		}
	}()

	if term, rejected := r.guard.Reject(strings.ToLower(text)); rejected {
		r.logger.Debug("scope guard rejection", "term", term)
		return r.guard.Rejection(), nil
	}

	result = r.classify(ctx, text)

	if result.IsMoney() && engine != nil {
		matchText := strings.TrimSpace(result.Money.Merchant + " " + result.Money.Description)
		if categoryID, ok := engine.Categorize(matchText); ok {
			result.Money.CategoryID = categoryID
		}
	}

	return result, nil
}

func (r *Router) classify(ctx context.Context, text string) model.Result {
	if r.remote != nil {
		result, remoteErr := r.remote.Classify(ctx, text)
		if remoteErr == nil {
			return result
		}
		// Timeouts, transport failures, and contract violations are all
		// the same here: fall through, no retry, nothing shown to the
		// user.
		r.logger.Warn("remote classifier failed, falling back to heuristics",
			"error", remoteErr)
	}

	result, herr := r.heuristic.Classify(ctx, text)
	if herr != nil {
		r.logger.Error("heuristic classifier failed", "error", herr)
		return model.EntryResult(model.DomainGeneral, classify.ConfidenceDefault, text, nil)
	}
	return result
}
