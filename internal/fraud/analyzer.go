// Package fraud implements the concurrent weighted risk evaluation for card
// purchases. The check set is fixed for this version of the service; it is
// not a pluggable rule engine.
package fraud

import (
	"context"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultAnalysisTimeout is the shared deadline for one analysis run. When it
// elapses before every check reports, the analyzer fails closed.
const DefaultAnalysisTimeout = 800 * time.Millisecond

type check func(ctx context.Context, payload models.PurchaseRequest) (models.CheckResult, error)

// Analyzer runs the fixed fraud checks concurrently under one deadline and
// aggregates their weighted results into a single verdict.
type Analyzer struct {
	timeout time.Duration
	checks  []check
}

type Option func(*Analyzer)

// WithTimeout overrides the analysis deadline. Used by tests and tuning.
func WithTimeout(timeout time.Duration) Option {
	return func(a *Analyzer) {
		a.timeout = timeout
	}
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		timeout: DefaultAnalysisTimeout,
	}
	a.checks = []check{
		checkBlacklist,
		checkVelocity,
		checkRiskScore,
		checkCountryMatch,
		checkAvsAndCvc,
		checkSpendingPattern,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze evaluates the payload against all checks. Ordinary risk outcomes,
// including the deadline elapsing, come back as a result; the returned error
// is non-nil only when the caller's own context was cancelled.
func (a *Analyzer) Analyze(ctx context.Context, payload models.PurchaseRequest) (models.FraudAnalysisResult, error) {
	analysisCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	results := make(chan models.CheckResult, len(a.checks))
	var wg sync.WaitGroup

	for _, run := range a.checks {
		wg.Add(1)
		go func(run check) {
			defer wg.Done()
			result, err := run(analysisCtx, payload)
			if err != nil {
				// Cancelled mid-flight; the partial result must not
				// influence the aggregate.
				return
			}
			results <- result
		}(run)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		close(results)
		collected := make([]models.CheckResult, 0, len(a.checks))
		for result := range results {
			collected = append(collected, result)
		}
		return Aggregate(collected), nil
	case <-analysisCtx.Done():
		if err := ctx.Err(); err != nil {
			return models.FraudAnalysisResult{}, err
		}
		logrus.Warnf("Fraud analysis timed out after %s for transaction %s", a.timeout, payload.TransactionID)
		return models.FraudAnalysisResult{
			Approved:  false,
			Reason:    "analysis timeout",
			RiskLevel: models.RiskLevelHigh,
		}, nil
	}
}

// delay models the latency of the downstream lookup behind a check while
// honoring cooperative cancellation.
func delay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func checkBlacklist(ctx context.Context, p models.PurchaseRequest) (models.CheckResult, error) {
	if err := delay(ctx, 50*time.Millisecond); err != nil {
		return models.CheckResult{}, err
	}

	if p.RiskScore != nil && p.RiskScore.IsBlacklisted {
		return models.CheckResult{Passed: false, Reason: "Card in blacklist", Weight: 1000}, nil
	}
	return models.CleanCheck(), nil
}

func checkVelocity(ctx context.Context, p models.PurchaseRequest) (models.CheckResult, error) {
	if err := delay(ctx, 100*time.Millisecond); err != nil {
		return models.CheckResult{}, err
	}

	var velocity int
	if p.RiskScore != nil {
		velocity = p.RiskScore.TransactionVelocity
	}
	if velocity > 10 {
		return models.CheckResult{Passed: false, Reason: "High transaction velocity", Weight: 300}, nil
	}
	return models.CleanCheck(), nil
}

func checkRiskScore(ctx context.Context, p models.PurchaseRequest) (models.CheckResult, error) {
	if err := delay(ctx, 150*time.Millisecond); err != nil {
		return models.CheckResult{}, err
	}

	var score float64
	if p.RiskScore != nil {
		score = p.RiskScore.Score
	}

	switch {
	case score >= 800:
		return models.CheckResult{Passed: false, Reason: "Critical risk score", Weight: 500}, nil
	case score >= 500:
		return models.CheckResult{Passed: false, Reason: "High risk score", Weight: 300}, nil
	case score >= 300:
		return models.CheckResult{Passed: true, Reason: "Medium risk", Weight: 100}, nil
	default:
		return models.CleanCheck(), nil
	}
}

func checkCountryMatch(ctx context.Context, p models.PurchaseRequest) (models.CheckResult, error) {
	if err := delay(ctx, 50*time.Millisecond); err != nil {
		return models.CheckResult{}, err
	}

	if p.RiskScore != nil && p.RiskScore.CountryMatch != nil && !*p.RiskScore.CountryMatch {
		return models.CheckResult{Passed: false, Reason: "Country mismatch", Weight: 200}, nil
	}
	return models.CleanCheck(), nil
}

func checkAvsAndCvc(ctx context.Context, p models.PurchaseRequest) (models.CheckResult, error) {
	if err := delay(ctx, 80*time.Millisecond); err != nil {
		return models.CheckResult{}, err
	}

	avsMatch, cvcMatch := "U", "U"
	if p.RiskScore != nil {
		if p.RiskScore.AvsMatch != "" {
			avsMatch = p.RiskScore.AvsMatch
		}
		if p.RiskScore.CvcMatch != "" {
			cvcMatch = p.RiskScore.CvcMatch
		}
	}

	if avsMatch == "N" || cvcMatch == "N" {
		return models.CheckResult{Passed: false, Reason: "AVS/CVC mismatch", Weight: 400}, nil
	}
	return models.CleanCheck(), nil
}

func checkSpendingPattern(ctx context.Context, p models.PurchaseRequest) (models.CheckResult, error) {
	if err := delay(ctx, 120*time.Millisecond); err != nil {
		return models.CheckResult{}, err
	}

	pattern := "NORMAL"
	if p.RiskScore != nil && p.RiskScore.SpendingPattern != "" {
		pattern = p.RiskScore.SpendingPattern
	}

	switch pattern {
	case "SUSPICIOUS":
		return models.CheckResult{Passed: false, Reason: "Suspicious pattern", Weight: 600}, nil
	case "UNUSUAL":
		return models.CheckResult{Passed: true, Reason: "Unusual pattern", Weight: 150}, nil
	default:
		return models.CleanCheck(), nil
	}
}
