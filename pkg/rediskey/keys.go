package rediskey

import "strconv"

const BankGlobal = "automuteus:bank:global"

// BankScopes is the set of scope keys that currently hold a config or accounts.
const BankScopes = "automuteus:bank:scopes"

func ScopeKey(scopeKey uint64) string {
	return strconv.FormatUint(scopeKey, 10)
}

func BankConfig(scopeKey string) string {
	return "automuteus:bank:config:" + scopeKey
}

func BankAccounts(scopeKey string) string {
	return "automuteus:bank:accounts:" + scopeKey
}

func BankLock(name string) string {
	return "automuteus:bank:lock:" + name
}
