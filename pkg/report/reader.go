package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tron-wallet-monitor/pkg/types"
)

// ReadWalletJSONs loads the per-wallet summaries a previous run wrote under
// <outputDir>/summaries. Unreadable files are skipped; finding none at all
// is an error.
func ReadWalletJSONs(outputDir string) ([]types.WalletReport, error) {
	pattern := filepath.Join(outputDir, summariesDir, "*_summary.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var reports []types.WalletReport
	var skipped []string
	for _, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, path)
			continue
		}
		var r types.WalletReport
		if err := json.Unmarshal(raw, &r); err != nil || r.ID == "" {
			skipped = append(skipped, path)
			continue
		}
		reports = append(reports, r)
	}

	if len(reports) == 0 {
		return nil, fmt.Errorf("no wallet summaries found under %s (skipped %d unreadable)",
			filepath.Join(outputDir, summariesDir), len(skipped))
	}
	return reports, nil
}
