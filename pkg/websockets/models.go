package websockets

import "github.com/chris/gateway-dashboard/pkg/api"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeWalletUpdate follows a new outgoing transaction.
	MessageTypeWalletUpdate MessageType = "walletUpdate"
	// MessageTypeUserStatusChanged follows an activation toggle.
	MessageTypeUserStatusChanged MessageType = "userStatusChanged"
	MessageTypeAdminAdded        MessageType = "adminAdded"
	MessageTypeAdminRemoved      MessageType = "adminRemoved"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// WalletUpdatePayload is the payload for a walletUpdate message.
type WalletUpdatePayload struct {
	Transaction api.Transaction   `json:"transaction"`
	Balance     api.WalletBalance `json:"balance"`
}

// UserStatusPayload is the payload for a userStatusChanged message.
type UserStatusPayload struct {
	UserID   string `json:"userId"`
	IsActive bool   `json:"isActive"`
}

// AdminAddedPayload is the payload for an adminAdded message.
type AdminAddedPayload struct {
	Admin api.User `json:"admin"`
}

// AdminRemovedPayload is the payload for an adminRemoved message.
type AdminRemovedPayload struct {
	AdminID string `json:"adminId"`
}
