package transactions

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/chris/gateway-dashboard/pkg/api"
	"github.com/chris/gateway-dashboard/pkg/handlers/respond"
	"github.com/chris/gateway-dashboard/pkg/mapping"
	"github.com/chris/gateway-dashboard/pkg/models"
	"github.com/chris/gateway-dashboard/pkg/service"
	"github.com/chris/gateway-dashboard/pkg/validation"
	"github.com/chris/gateway-dashboard/pkg/websockets"
)

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	Transactions service.TransactionService
	Wallet       service.WalletService
	Publisher    websockets.Publisher
	Logger       *slog.Logger

	// sendMu serializes the balance check and the create of SendMoney.
	sendMu sync.Mutex
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(txs service.TransactionService, wallet service.WalletService, publisher websockets.Publisher, logger *slog.Logger) *TransactionsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionsHandler{Transactions: txs, Wallet: wallet, Publisher: publisher, Logger: logger}
}

// ListTransactions returns the transaction log, most recent first, narrowed by the optional filter.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request, params api.ListTransactionsParams) {
	filter := models.FilterAll
	if params.Filter != nil {
		f, err := models.ParseTransactionFilter(*params.Filter)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid filter: %v", err), http.StatusBadRequest)
			return
		}
		filter = f
	}

	txs, err := h.Transactions.FetchTransactions(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusInternalServerError)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiTransactions(models.FilterTransactions(txs, filter)))
}

// SendMoney validates a payment against the available balance and records it as a pending debit.
func (h *TransactionsHandler) SendMoney(w http.ResponseWriter, r *http.Request) {
	var newTx api.NewTransaction
	if err := json.NewDecoder(r.Body).Decode(&newTx); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	created, ok := h.checkAndCreate(w, r, &newTx)
	if !ok {
		return
	}

	apiTx := mapping.ToApiTransaction(created)
	h.publishWalletUpdate(r, apiTx)

	respond.JSON(w, http.StatusCreated, apiTx)
}

// checkAndCreate validates the payment against the available balance and creates it.
// Both steps run under sendMu so concurrent sends cannot spend the same funds twice.
func (h *TransactionsHandler) checkAndCreate(w http.ResponseWriter, r *http.Request, newTx *api.NewTransaction) (*models.Transaction, bool) {
	h.sendMu.Lock()
	defer h.sendMu.Unlock()

	balance, err := h.Wallet.FetchWalletBalance(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve wallet balance: %v", err), http.StatusInternalServerError)
		return nil, false
	}

	if err := validation.ValidateTransfer(newTx.Amount, newTx.Recipient, balance.Available); err != nil {
		respond.Invalid(w, err)
		return nil, false
	}

	description := ""
	if newTx.Description != nil {
		description = *newTx.Description
	}
	description = validation.DefaultDescription(description, newTx.Recipient)

	created, err := h.Transactions.CreateTransaction(r.Context(), newTx.Amount, newTx.Recipient, description)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create transaction: %v", err), http.StatusInternalServerError)
		return nil, false
	}
	return created, true
}

// publishWalletUpdate pushes the new transaction and balance to live clients.
// Failures are logged and never fail the request.
func (h *TransactionsHandler) publishWalletUpdate(r *http.Request, tx *api.Transaction) {
	balance, err := h.Wallet.FetchWalletBalance(r.Context())
	if err != nil {
		h.Logger.Error("failed to get wallet balance for websocket message", "error", err)
		return
	}

	msg := websockets.Message{
		Type: websockets.MessageTypeWalletUpdate,
		Payload: websockets.WalletUpdatePayload{
			Transaction: *tx,
			Balance:     *mapping.ToApiWalletBalance(balance),
		},
	}
	if err := h.Publisher.Publish(r.Context(), msg); err != nil {
		h.Logger.Error("failed to publish websocket message", "error", err)
	}
}
