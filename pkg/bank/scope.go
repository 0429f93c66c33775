package bank

import "strconv"

// Scope is the partition unit for account data. The zero value is Global.
type Scope struct {
	GuildID uint64
}

var Global = Scope{}

func Guild(guildID uint64) Scope {
	return Scope{GuildID: guildID}
}

func (s Scope) IsGlobal() bool {
	return s.GuildID == 0
}

// AcceptsConfig reports whether the scope's config may be written while the bank is in the given
// mode. Guild configs only exist in per-guild mode; the global config can be set up from either.
func (s Scope) AcceptsConfig(global bool) bool {
	return s.IsGlobal() || !global
}

// Key is the storage key of the scope; 0 is reserved for Global.
func (s Scope) Key() uint64 {
	return s.GuildID
}

func (s Scope) String() string {
	if s.IsGlobal() {
		return "global"
	}
	return "guild:" + strconv.FormatUint(s.GuildID, 10)
}
