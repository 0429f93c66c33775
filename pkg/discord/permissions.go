package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/exp/slices"
)

// Invoker holds the already-resolved facts about the author of a bank command.
type Invoker struct {
	UserID         string   `json:"userID"`
	BotOwner       bool     `json:"botOwner"`
	GuildOwner     bool     `json:"guildOwner"`
	InGuildChannel bool     `json:"inGuildChannel"`
	Permissions    int64    `json:"permissions"`
	RoleIDs        []string `json:"roleIDs"`
	AdminRoleIDs   []string `json:"adminRoleIDs"`
}

type ModeReader interface {
	IsGlobal(ctx context.Context) (bool, error)
}

var ErrNoInvoker = errors.New("no invoker provided")

func (invoker *Invoker) Validate() error {
	if invoker == nil {
		return ErrNoInvoker
	}
	if err := ValidateSnowflake(invoker.UserID); err != nil {
		return err
	}
	for i, role := range invoker.RoleIDs {
		id, err := ExtractRoleIDFromText(role)
		if err != nil {
			return err
		}
		invoker.RoleIDs[i] = id
	}
	for i, role := range invoker.AdminRoleIDs {
		id, err := ExtractRoleIDFromText(role)
		if err != nil {
			return err
		}
		invoker.AdminRoleIDs[i] = id
	}
	return nil
}

func (invoker *Invoker) hasPermission(perm int64) bool {
	// administrator implies every other channel permission
	return invoker.Permissions&discordgo.PermissionAdministrator != 0 || invoker.Permissions&perm != 0
}

func (invoker *Invoker) hasAdminRole() bool {
	for _, role := range invoker.RoleIDs {
		if slices.Contains(invoker.AdminRoleIDs, role) {
			return true
		}
	}
	return false
}

// CanManageBankSettings is the guild owner check: in global mode only a bot owner passes, otherwise
// the bot owner, the guild owner or a guild administrator.
func CanManageBankSettings(ctx context.Context, mode ModeReader, invoker *Invoker) (bool, error) {
	if invoker == nil {
		return false, ErrNoInvoker
	}
	global, err := mode.IsGlobal(ctx)
	if err != nil {
		return false, err
	}
	if global {
		return invoker.BotOwner, nil
	}
	if !invoker.InGuildChannel {
		return false, nil
	}
	return invoker.BotOwner || invoker.GuildOwner || invoker.hasPermission(discordgo.PermissionAdministrator), nil
}

// CanAdministerBank is the admin check: in global mode only a bot owner passes, otherwise the bot
// owner, the guild owner, anyone with Manage Server, or a holder of one of the guild's admin roles.
func CanAdministerBank(ctx context.Context, mode ModeReader, invoker *Invoker) (bool, error) {
	if invoker == nil {
		return false, ErrNoInvoker
	}
	global, err := mode.IsGlobal(ctx)
	if err != nil {
		return false, err
	}
	if global {
		return invoker.BotOwner, nil
	}
	if !invoker.InGuildChannel {
		return false, nil
	}
	if invoker.BotOwner || invoker.GuildOwner {
		return true, nil
	}
	return invoker.hasPermission(discordgo.PermissionManageServer) || invoker.hasAdminRole(), nil
}

func CanToggleGlobal(invoker *Invoker) bool {
	return invoker != nil && invoker.BotOwner
}
