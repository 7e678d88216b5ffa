// internal/service/aggregator.go
package service

import (
    "fmt"

    "github.com/google/uuid"
)

// SaveReport is the consolidated outcome of one save cycle. Success is true
// iff no hard failures exist; warnings count toward SuccessCount because
// they represent backend state the user asked for.
type SaveReport struct {
    BatchID      string            `json:"batch_id"`
    Success      bool              `json:"success"`
    SuccessCount int               `json:"success_count"`
    Failures     []OperationResult `json:"failures"`
    Warnings     []OperationResult `json:"warnings"`
    Results      []OperationResult `json:"results"`
}

// AggregateResults merges per-operation outcomes into a single report.
func AggregateResults(results []OperationResult) SaveReport {
    report := SaveReport{
        BatchID:  uuid.NewString(),
        Failures: []OperationResult{},
        Warnings: []OperationResult{},
        Results:  results,
    }

    for _, res := range results {
        if !res.Success {
            report.Failures = append(report.Failures, res)
            continue
        }
        report.SuccessCount++
        if res.Warning {
            report.Warnings = append(report.Warnings, res)
        }
    }

    report.Success = len(report.Failures) == 0
    return report
}

// Summary renders a one-line human-readable outcome for logs and toasts.
func (r SaveReport) Summary() string {
    if r.Success && len(r.Warnings) == 0 {
        return fmt.Sprintf("%d change(s) saved", r.SuccessCount)
    }
    if r.Success {
        return fmt.Sprintf("%d change(s) saved, %d warning(s)", r.SuccessCount, len(r.Warnings))
    }
    return fmt.Sprintf("%d change(s) saved, %d failed, %d warning(s)",
        r.SuccessCount, len(r.Failures), len(r.Warnings))
}
