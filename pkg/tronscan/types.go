package tronscan

// TokenBalance is one entry of the account/tokens response. Balance is the
// raw integer amount in the token's minor unit, returned as a string.
type TokenBalance struct {
	TokenID   string `json:"tokenId"`
	TokenName string `json:"tokenName"`
	TokenAbbr string `json:"tokenAbbr"`
	Balance   string `json:"balance"`
}

type accountTokensResponse struct {
	Data []TokenBalance `json:"data"`
}

// Account is the account endpoint response. Balance is the TRX balance in sun.
type Account struct {
	Balance               int64 `json:"balance"`
	TotalTransactionCount int64 `json:"totalTransactionCount"`
	TransactionsIn        int64 `json:"transactions_in"`
	TransactionsOut       int64 `json:"transactions_out"`
}

type Transaction struct {
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
}

type TransactionList struct {
	Total int64         `json:"total"`
	Data  []Transaction `json:"data"`
}

// TRC20Transfer carries both field spellings Tronscan has used for the
// counterparty addresses; From/To normalize them.
type TRC20Transfer struct {
	FromAddress      string `json:"from_address"`
	ToAddress        string `json:"to_address"`
	FromAddressCamel string `json:"fromAddress"`
	ToAddressCamel   string `json:"toAddress"`
	Quant            string `json:"quant"`
	ContractAddress  string `json:"contract_address"`
	Timestamp        int64  `json:"block_ts"`
}

func (t TRC20Transfer) From() string {
	if t.FromAddress != "" {
		return t.FromAddress
	}
	return t.FromAddressCamel
}

func (t TRC20Transfer) To() string {
	if t.ToAddress != "" {
		return t.ToAddress
	}
	return t.ToAddressCamel
}

type TransferList struct {
	Total          int64           `json:"total"`
	TokenTransfers []TRC20Transfer `json:"token_transfers"`
	Data           []TRC20Transfer `json:"data"`
}

// Transfers returns whichever list the endpoint populated.
func (l TransferList) Transfers() []TRC20Transfer {
	if len(l.TokenTransfers) > 0 {
		return l.TokenTransfers
	}
	return l.Data
}
