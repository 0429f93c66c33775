package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

type mode bool

func (m mode) IsGlobal(_ context.Context) (bool, error) {
	return bool(m), nil
}

type brokenMode struct{}

func (brokenMode) IsGlobal(_ context.Context) (bool, error) {
	return false, errors.New("store unavailable")
}

const (
	UserID  = "123123123123123123"
	AdminID = "141101495071408128"
)

var ctx = context.Background()

func TestCanManageBankSettings(t *testing.T) {
	member := &Invoker{UserID: UserID, InGuildChannel: true}
	ok, err := CanManageBankSettings(ctx, mode(false), member)
	if err != nil {
		t.Error(err)
	}
	if ok {
		t.Error("a plain member should not manage bank settings")
	}

	admin := &Invoker{UserID: UserID, InGuildChannel: true, Permissions: discordgo.PermissionAdministrator}
	ok, _ = CanManageBankSettings(ctx, mode(false), admin)
	if !ok {
		t.Error("a guild administrator should manage per-guild bank settings")
	}

	owner := &Invoker{UserID: UserID, InGuildChannel: true, GuildOwner: true}
	ok, _ = CanManageBankSettings(ctx, mode(false), owner)
	if !ok {
		t.Error("the guild owner should manage per-guild bank settings")
	}

	ok, _ = CanManageBankSettings(ctx, mode(true), owner)
	if ok {
		t.Error("only a bot owner should manage a global bank")
	}

	dm := &Invoker{UserID: UserID, BotOwner: true}
	ok, _ = CanManageBankSettings(ctx, mode(false), dm)
	if ok {
		t.Error("per-guild settings should never be managed outside a guild channel")
	}
	ok, _ = CanManageBankSettings(ctx, mode(true), dm)
	if !ok {
		t.Error("a bot owner should manage a global bank from anywhere")
	}
}

func TestCanAdministerBank(t *testing.T) {
	manager := &Invoker{UserID: UserID, InGuildChannel: true, Permissions: discordgo.PermissionManageServer}
	ok, err := CanAdministerBank(ctx, mode(false), manager)
	if err != nil {
		t.Error(err)
	}
	if !ok {
		t.Error("Manage Server should pass the admin check")
	}

	ok, _ = CanManageBankSettings(ctx, mode(false), manager)
	if ok {
		t.Error("Manage Server alone should not pass the guild owner check")
	}

	roleHolder := &Invoker{UserID: UserID, InGuildChannel: true, RoleIDs: []string{AdminID}, AdminRoleIDs: []string{AdminID}}
	ok, _ = CanAdministerBank(ctx, mode(false), roleHolder)
	if !ok {
		t.Error("holding an admin role should pass the admin check")
	}

	ok, _ = CanAdministerBank(ctx, mode(true), roleHolder)
	if ok {
		t.Error("only a bot owner should administer a global bank")
	}

	_, err = CanAdministerBank(ctx, brokenMode{}, roleHolder)
	if err == nil {
		t.Error("expected the mode lookup failure to surface")
	}
}

func TestCanToggleGlobal(t *testing.T) {
	if CanToggleGlobal(nil) {
		t.Error("nil invoker should never toggle")
	}
	if CanToggleGlobal(&Invoker{UserID: UserID, GuildOwner: true, Permissions: discordgo.PermissionAdministrator}) {
		t.Error("only a bot owner should toggle the bank mode")
	}
	if !CanToggleGlobal(&Invoker{UserID: UserID, BotOwner: true}) {
		t.Error("a bot owner should toggle the bank mode")
	}
}

func TestInvoker_Validate(t *testing.T) {
	var nilInvoker *Invoker
	if !errors.Is(nilInvoker.Validate(), ErrNoInvoker) {
		t.Error("expected ErrNoInvoker for a nil invoker")
	}

	invoker := &Invoker{UserID: "123"}
	if invoker.Validate() == nil {
		t.Error("expected an error for a user ID prior to the discord epoch")
	}

	invoker = &Invoker{UserID: UserID, RoleIDs: []string{"<@&" + AdminID + ">"}}
	if err := invoker.Validate(); err != nil {
		t.Error(err)
	}
	if invoker.RoleIDs[0] != AdminID {
		t.Error("role mention was not normalized to its ID")
	}
}
