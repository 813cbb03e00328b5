package storage

// Storage defines the root interface for the entire data layer.
// Components should depend on the granular interfaces (UserStore, TransactionStore, etc.) instead of this one.
type Storage interface {
	UserStore
	CredentialVerifier
	TransactionStore
	WalletReader
	ReportReader
}
