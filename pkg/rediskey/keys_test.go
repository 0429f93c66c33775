package rediskey

import "testing"

func TestBankKeys(t *testing.T) {
	if ScopeKey(0) != "0" {
		t.Error("global scope should map to key 0")
	}
	key := ScopeKey(141082723635691529)
	if BankConfig(key) != "automuteus:bank:config:141082723635691529" {
		t.Error("unexpected config key: " + BankConfig(key))
	}
	if BankAccounts(key) != "automuteus:bank:accounts:141082723635691529" {
		t.Error("unexpected accounts key: " + BankAccounts(key))
	}
	if BankLock("mode") != "automuteus:bank:lock:mode" {
		t.Error("unexpected lock key: " + BankLock("mode"))
	}
}
