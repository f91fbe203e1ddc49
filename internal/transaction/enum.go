package transaction

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

type Provider string

const (
	ProviderOrangeMoney Provider = "orange_money"
	ProviderMoovMoney   Provider = "moov_money"
)

var AllProviders = []Provider{
	ProviderOrangeMoney,
	ProviderMoovMoney,
}

func (p Provider) IsValid() bool {
	for _, v := range AllProviders {
		if p == v {
			return true
		}
	}
	return false
}
