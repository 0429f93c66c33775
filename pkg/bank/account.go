package bank

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

type Account struct {
	Scope     Scope  `json:"-"`
	UserID    uint64 `json:"userID"`
	Balance   int64  `json:"balance"`
	CreatedAt int64  `json:"createdAt"`
}

type Transfer struct {
	ID          uuid.UUID `json:"id"`
	Scope       Scope     `json:"-"`
	From        uint64    `json:"from"`
	To          uint64    `json:"to"`
	Amount      int64     `json:"amount"`
	FromBalance int64     `json:"fromBalance"`
	ToBalance   int64     `json:"toBalance"`
	Time        time.Time `json:"time"`
}

func clamp[T constraints.Integer](v, max T) T {
	if v > max {
		return max
	}
	return v
}
