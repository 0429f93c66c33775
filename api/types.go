package api

import "github.com/automuteus/bank/pkg/discord"

// InvokerRequest is the part every authorized request shares: the guild the command was issued in,
// who issued it, and the language to answer in.
type InvokerRequest struct {
	GuildID string           `json:"guildID"`
	Invoker *discord.Invoker `json:"invoker"`
	Lang    string           `json:"lang"`
}

type NameRequest struct {
	InvokerRequest
	Name string `json:"name"`
}

type AmountRequest struct {
	InvokerRequest
	Amount int64 `json:"amount"`
}

type BalanceRequest struct {
	InvokerRequest
	UserID string `json:"userID"`
	Amount int64  `json:"amount"`
}

type ToggleGlobalRequest struct {
	Invoker *discord.Invoker `json:"invoker"`
	Confirm bool             `json:"confirm"`
	Prefix  string           `json:"prefix"`
	Lang    string           `json:"lang"`
}

type TransferRequest struct {
	GuildID string `json:"guildID"`
	From    string `json:"from"`
	To      string `json:"to"`
	Amount  int64  `json:"amount"`
	Lang    string `json:"lang"`
}

type SettingsResponse struct {
	Global         bool   `json:"global"`
	BankName       string `json:"bankName"`
	Currency       string `json:"currency"`
	DefaultBalance int64  `json:"defaultBalance"`
	MaxBalance     int64  `json:"maxBalance"`
	Summary        string `json:"summary"`
}

type BalanceResponse struct {
	UserID   string `json:"userID"`
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
	Message  string `json:"message"`
}

type TransferResponse struct {
	ID          string `json:"id"`
	From        string `json:"from"`
	To          string `json:"to"`
	Amount      int64  `json:"amount"`
	FromBalance int64  `json:"fromBalance"`
	ToBalance   int64  `json:"toBalance"`
	Time        int64  `json:"time"`
}

type LeaderboardEntry struct {
	Rank    int    `json:"rank"`
	UserID  string `json:"userID"`
	Balance int64  `json:"balance"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HttpError struct {
	StatusCode int
	Error      string
}
