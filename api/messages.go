package api

import "github.com/nicksnyder/go-i18n/v2/i18n"

var (
	msgSettings = &i18n.Message{
		ID: "bank.settings.summary",
		Other: "Bank settings:\n\nBank name: {{.BankName}}\nCurrency: {{.Currency}}\n" +
			"Default balance: {{.DefaultBalance}}\nMaximum allowed balance: {{.MaxBalance}}",
	}
	msgPerServer = &i18n.Message{
		ID:    "bank.toggleglobal.perserver",
		Other: "per-server",
	}
	msgGlobal = &i18n.Message{
		ID:    "bank.toggleglobal.global",
		Other: "global",
	}
	msgToggleWarning = &i18n.Message{
		ID: "bank.toggleglobal.warning",
		Other: "This will toggle the bank to be {{.BankType}}, deleting all accounts " +
			"in the process! If you're sure, type `{{.Command}}`",
	}
	msgToggled = &i18n.Message{
		ID:    "bank.toggleglobal.done",
		Other: "The bank is now {{.BankType}}.",
	}
	msgBankName = &i18n.Message{
		ID:    "bank.bankname.done",
		Other: "Bank name has been set to: {{.Name}}",
	}
	msgCurrencyName = &i18n.Message{
		ID:    "bank.creditsname.done",
		Other: "Currency name has been set to: {{.Name}}",
	}
	msgMaxBalance = &i18n.Message{
		ID:    "bank.maxbal.done",
		Other: "Maximum balance has been set to: {{.Amount}}",
	}
	msgMaxBalanceInvalid = &i18n.Message{
		ID:    "bank.maxbal.invalid",
		Other: "Amount must be greater than zero and less than {{.Max}}.",
	}
	msgDefaultBalance = &i18n.Message{
		ID:    "bank.defaultbal.done",
		Other: "Default balance has been set to: {{.Amount}}",
	}
	msgDefaultBalanceInvalid = &i18n.Message{
		ID:    "bank.defaultbal.invalid",
		Other: "Amount must be zero or more and no greater than the maximum balance of {{.Max}}.",
	}
	msgBalance = &i18n.Message{
		ID:    "bank.balance",
		Other: "{{.User}}'s balance is {{.Balance}} {{.Currency}}",
	}
	msgForbidden = &i18n.Message{
		ID:    "bank.forbidden",
		Other: "You don't have permission to do that.",
	}
	msgEmptyName = &i18n.Message{
		ID:    "bank.error.emptyname",
		Other: "The name can't be empty.",
	}
	msgInvalidAmount = &i18n.Message{
		ID:    "bank.error.invalidamount",
		Other: "Amount must be greater than zero.",
	}
	msgBalanceTooHigh = &i18n.Message{
		ID:    "bank.error.toohigh",
		Other: "That would put the balance over the maximum of {{.Max}} {{.Currency}}.",
	}
	msgInsufficientFunds = &i18n.Message{
		ID:    "bank.error.insufficient",
		Other: "There aren't enough {{.Currency}} in that account.",
	}
	msgSameAccount = &i18n.Message{
		ID:    "bank.error.sameaccount",
		Other: "You can't transfer {{.Currency}} to yourself.",
	}
	msgScopeInactive = &i18n.Message{
		ID:    "bank.error.scopeinactive",
		Other: "The bank mode changed while processing that request, try again.",
	}
	msgGuildRequired = &i18n.Message{
		ID:    "bank.error.guildrequired",
		Other: "The bank is per-server, so a server is required.",
	}
	msgAccountNotFound = &i18n.Message{
		ID:    "bank.error.noaccount",
		Other: "That user doesn't have a bank account.",
	}
)
