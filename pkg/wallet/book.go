package wallet

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"tron-wallet-monitor/pkg/types"
)

type bookEntry struct {
	Address string `json:"address"`
	Company string `json:"company"`
	Wallet  string `json:"wallet"`
	Name    string `json:"name"`
}

// LoadBook reads the address book document, a JSON object keyed by wallet id.
// An unreadable or empty book is an error: it is the only condition that
// halts a run before any network activity.
func LoadBook(path string) ([]types.WalletRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read address book %s: %w", path, err)
	}

	var entries map[string]bookEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse address book %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("address book %s contains no wallets", path)
	}

	records := make([]types.WalletRecord, 0, len(entries))
	for id, e := range entries {
		company := e.Company
		if company == "" {
			company = "Unknown"
		}
		name := e.Wallet
		if name == "" {
			name = e.Name
		}
		if name == "" {
			name = "Unknown"
		}
		records = append(records, types.WalletRecord{
			ID:          id,
			Address:     e.Address,
			Company:     company,
			DisplayName: name,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}
