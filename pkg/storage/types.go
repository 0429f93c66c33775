package storage

import (
	"bytes"
	"fmt"

	"github.com/automuteus/bank/pkg/bank"
)

type PostgresAccount struct {
	ScopeID   uint64 `db:"scope_id"`
	UserID    uint64 `db:"user_id"`
	Balance   int64  `db:"balance"`
	CreatedAt int64  `db:"created_at"`
}

func (a *PostgresAccount) ToAccount() *bank.Account {
	return &bank.Account{
		Scope:     bank.Guild(a.ScopeID),
		UserID:    a.UserID,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
	}
}

func AccountsToCSV(a []*bank.Account) string {
	s := bytes.NewBufferString("scope_id,user_id,balance,created_at,\n")
	for _, v := range a {
		if v != nil {
			s.WriteString(fmt.Sprintf("%d,%d,%d,%d,\n", v.Scope.Key(), v.UserID, v.Balance, v.CreatedAt))
		}
	}
	return s.String()
}
