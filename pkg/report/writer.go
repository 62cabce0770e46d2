package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	"tron-wallet-monitor/pkg/types"
)

const (
	rawDataDir   = "raw_data"
	summariesDir = "summaries"
)

// Writer emits the run's flat-file outputs under a single output directory.
type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) (*Writer, error) {
	for _, dir := range []string{outputDir, filepath.Join(outputDir, rawDataDir), filepath.Join(outputDir, summariesDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	return &Writer{outputDir: outputDir}, nil
}

func timestamp() string {
	return time.Now().Format("20060102_150405")
}

// WriteSummaryJSON writes the full run summary as one timestamped document.
func (w *Writer) WriteSummaryJSON(summary *types.RunSummary) (string, error) {
	path := filepath.Join(w.outputDir, fmt.Sprintf("run_summary_%s.json", timestamp()))
	raw, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteCSV writes one row per wallet, sorted the same way the summary is.
func (w *Writer) WriteCSV(summary *types.RunSummary) (string, error) {
	rows := make([]*WalletRow, 0, len(summary.Reports))
	for _, r := range summary.Reports {
		row := NewWalletRow(r)
		rows = append(rows, &row)
	}

	path := filepath.Join(w.outputDir, fmt.Sprintf("wallet_report_%s.csv", timestamp()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return "", err
	}
	return path, nil
}

// WriteBalanceCSV writes the balance-only tabular report. Rows are sorted by
// company, then wallet id.
func (w *Writer) WriteBalanceCSV(rows []*BalanceRow) (string, error) {
	sorted := make([]*BalanceRow, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Company != sorted[j].Company {
			return sorted[i].Company < sorted[j].Company
		}
		return sorted[i].WalletID < sorted[j].WalletID
	})

	path := filepath.Join(w.outputDir, fmt.Sprintf("wallet_balances_%s.csv", timestamp()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&sorted, f); err != nil {
		return "", err
	}
	return path, nil
}

// WriteJSON writes an arbitrary document under the output directory with a
// timestamped name.
func (w *Writer) WriteJSON(prefix string, doc interface{}) (string, error) {
	path := filepath.Join(w.outputDir, fmt.Sprintf("%s_%s.json", prefix, timestamp()))
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteWalletJSON writes one wallet's report twice: the full record with the
// raw token list under raw_data/, and a trimmed summary under summaries/.
// The summaries are what the consolidate workflow re-reads later.
func (w *Writer) WriteWalletJSON(report types.WalletReport) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	rawPath := filepath.Join(w.outputDir, rawDataDir, fmt.Sprintf("%s_raw_data.json", report.ID))
	if err := os.WriteFile(rawPath, raw, 0o644); err != nil {
		return err
	}

	trimmed := report
	trimmed.Balance.Tokens = nil
	out, err := json.MarshalIndent(trimmed, "", "  ")
	if err != nil {
		return err
	}
	summaryPath := filepath.Join(w.outputDir, summariesDir, fmt.Sprintf("%s_summary.json", report.ID))
	return os.WriteFile(summaryPath, out, 0o644)
}
