package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/automuteus/bank/docs"
	"github.com/automuteus/bank/pkg"
	"github.com/automuteus/bank/pkg/bank"
	"github.com/automuteus/bank/pkg/discord"
	"github.com/automuteus/bank/pkg/locale"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const DefaultLeaderboardSize = 10

type Api struct {
	url       string
	adminPass string
	ledger    *bank.Ledger
}

func NewApi(url, adminPass string, ledger *bank.Ledger) *Api {
	return &Api{
		url:       url,
		adminPass: adminPass,
		ledger:    ledger,
	}
}

func (api *Api) Router() *gin.Engine {
	r := gin.Default()

	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "AutoMuteUs Bank"
	docs.SwaggerInfo.Version = pkg.Version
	docs.SwaggerInfo.Description = "AutoMuteUs Bank API"
	var schemes []string
	host := api.url
	if strings.HasPrefix(host, "http://") {
		schemes = append(schemes, "http")
		host = strings.Replace(host, "http://", "", 1)
	} else if strings.HasPrefix(host, "https://") {
		schemes = append(schemes, "https")
		host = strings.Replace(host, "https://", "", 1)
	}
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = schemes

	bankGroup := r.Group("/bank", gin.BasicAuth(gin.Accounts{
		"admin": api.adminPass,
	}))
	bankGroup.GET("/settings", handleGetSettings(api))
	bankGroup.POST("/toggleglobal", handlePostToggleGlobal(api))
	bankGroup.PUT("/name", handlePutBankName(api))
	bankGroup.PUT("/currency", handlePutCurrencyName(api))
	bankGroup.PUT("/maxbalance", handlePutMaxBalance(api))
	bankGroup.PUT("/defaultbalance", handlePutDefaultBalance(api))
	bankGroup.GET("/balance", handleGetBalance(api))
	bankGroup.POST("/balance", handlePostBalance(api, setBalance))
	bankGroup.POST("/deposit", handlePostBalance(api, deposit))
	bankGroup.POST("/withdraw", handlePostBalance(api, withdraw))
	bankGroup.POST("/transfer", handlePostTransfer(api))
	bankGroup.GET("/leaderboard", handleGetLeaderboard(api))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// StartServer serves the API on port in the background. The caller shuts the returned server down.
func (api *Api) StartServer(port string) *http.Server {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: api.Router(),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println(err)
		}
	}()
	log.Printf("[Api] Listening on :%s", port)
	return srv
}

// GetSettings godoc
// @Summary Get Bank Settings
// @Schemes GET
// @Description Get the bank settings that apply to a guild (or the global bank)
// @Security BasicAuth
// @Tags bank
// @Accept json
// @Produce json
// @Param guildID query string false "Guild ID, required when the bank is per-server"
// @Param lang query string false "Language of the summary"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bank/settings [get]
func handleGetSettings(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		scope, ok := api.resolveScope(c, c.Query("guildID"), lang)
		if !ok {
			return
		}
		cfg, err := api.ledger.Config(c, scope)
		if err != nil {
			api.abortWithBankError(c, scope, err, lang)
			return
		}
		c.JSON(http.StatusOK, SettingsResponse{
			Global:         scope.IsGlobal(),
			BankName:       cfg.BankName,
			Currency:       cfg.CurrencyName,
			DefaultBalance: cfg.DefaultBalance,
			MaxBalance:     cfg.MaxBalance,
			Summary: locale.LocalizeMessage(msgSettings, map[string]interface{}{
				"BankName":       cfg.BankName,
				"Currency":       cfg.CurrencyName,
				"DefaultBalance": locale.HumanizeNumber(cfg.DefaultBalance, lang),
				"MaxBalance":     locale.HumanizeNumber(cfg.MaxBalance, lang),
			}, lang),
		})
	}
}

// ToggleGlobal godoc
// @Summary Toggle Global Bank
// @Schemes POST
// @Description Switch the bank between global and per-server, deleting every account of the mode being left. Without confirm, only the warning is returned.
// @Security BasicAuth
// @Tags bank
// @Accept json
// @Produce json
// @Param ToggleGlobalRequest body ToggleGlobalRequest true "Invoker and confirmation"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} HttpError
// @Failure 403 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bank/toggleglobal [post]
func handlePostToggleGlobal(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		var p ToggleGlobalRequest
		if !bindRequest(c, &p) {
			return
		}
		if err := p.Invoker.Validate(); err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if !discord.CanToggleGlobal(p.Invoker) {
			abortWithError(c, http.StatusForbidden, locale.LocalizeMessage(msgForbidden, nil, p.Lang))
			return
		}

		current, err := api.ledger.IsGlobal(c)
		if err != nil {
			api.abortWithBankError(c, bank.Global, err, p.Lang)
			return
		}
		word := locale.LocalizeMessage(msgGlobal, nil, p.Lang)
		if current {
			word = locale.LocalizeMessage(msgPerServer, nil, p.Lang)
		}

		if !p.Confirm {
			c.JSON(http.StatusOK, MessageResponse{
				Message: locale.LocalizeMessage(msgToggleWarning, map[string]interface{}{
					"BankType": word,
					"Command":  p.Prefix + "bankset toggleglobal yes",
				}, p.Lang),
			})
			return
		}

		if err := api.ledger.SetGlobal(c, !current); err != nil {
			api.abortWithBankError(c, bank.Global, err, p.Lang)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{
			Message: locale.LocalizeMessage(msgToggled, map[string]interface{}{
				"BankType": word,
			}, p.Lang),
		})
	}
}

// SetBankName godoc
// @Summary Set Bank Name
// @Schemes PUT
// @Description Set the bank's name
// @Security BasicAuth
// @Tags bank
// @Accept json
// @Produce json
// @Param NameRequest body NameRequest true "Guild, invoker and new name"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} HttpError
// @Failure 403 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bank/name [put]
func handlePutBankName(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		var p NameRequest
		if !bindRequest(c, &p) {
			return
		}
		scope, ok := api.authorize(c, &p.InvokerRequest, discord.CanManageBankSettings)
		if !ok {
			return
		}
		if err := api.ledger.SetBankName(c, p.Name, scope); err != nil {
			api.abortWithBankError(c, scope, err, p.Lang)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{
			Message: locale.LocalizeMessage(msgBankName, map[string]interface{}{"Name": p.Name}, p.Lang),
		})
	}
}

// SetCurrencyName godoc
// @Summary Set Currency Name
// @Schemes PUT
// @Description Set the name of the bank's currency
// @Security BasicAuth
// @Tags bank
// @Accept json
// @Produce json
// @Param NameRequest body NameRequest true "Guild, invoker and new name"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} HttpError
// @Failure 403 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bank/currency [put]
func handlePutCurrencyName(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		var p NameRequest
		if !bindRequest(c, &p) {
			return
		}
		scope, ok := api.authorize(c, &p.InvokerRequest, discord.CanManageBankSettings)
		if !ok {
			return
		}
		if err := api.ledger.SetCurrencyName(c, p.Name, scope); err != nil {
			api.abortWithBankError(c, scope, err, p.Lang)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{
			Message: locale.LocalizeMessage(msgCurrencyName, map[string]interface{}{"Name": p.Name}, p.Lang),
		})
	}
}

// SetMaxBalance godoc
// @Summary Set Max Balance
// @Schemes PUT
// @Description Set the maximum balance a user can get. Balances above it are lowered to it.
// @Security BasicAuth
// @Tags bank
// @Accept json
// @Produce json
// @Param AmountRequest body AmountRequest true "Guild, invoker and amount"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} HttpError
// @Failure 403 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bank/maxbalance [put]
func handlePutMaxBalance(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		var p AmountRequest
		if !bindRequest(c, &p) {
			return
		}
		scope, ok := api.authorize(c, &p.InvokerRequest, discord.CanManageBankSettings)
		if !ok {
			return
		}
		err := api.ledger.SetMaxBalance(c, p.Amount, scope)
		if errors.Is(err, bank.ErrInvalidAmount) {
			abortWithError(c, http.StatusBadRequest, locale.LocalizeMessage(msgMaxBalanceInvalid, map[string]interface{}{
				"Max": locale.HumanizeNumber(bank.MaxBalance, p.Lang),
			}, p.Lang))
			return
		} else if err != nil {
			api.abortWithBankError(c, scope, err, p.Lang)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{
			Message: locale.LocalizeMessage(msgMaxBalance, map[string]interface{}{
				"Amount": locale.HumanizeNumber(p.Amount, p.Lang),
			}, p.Lang),
		})
	}
}

// SetDefaultBalance godoc
// @Summary Set Default Balance
// @Schemes PUT
// @Description Set the balance new accounts start with
// @Security BasicAuth
// @Tags bank
// @Accept json
// @Produce json
// @Param AmountRequest body AmountRequest true "Guild, invoker and amount"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} HttpError
// @Failure 403 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bank/defaultbalance [put]
func handlePutDefaultBalance(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		var p AmountRequest
		if !bindRequest(c, &p) {
			return
		}
		scope, ok := api.authorize(c, &p.InvokerRequest, discord.CanAdministerBank)
		if !ok {
			return
		}
		err := api.ledger.SetDefaultBalance(c, p.Amount, scope)
		if errors.Is(err, bank.ErrInvalidAmount) {
			maxBalance, maxErr := api.ledger.GetMaxBalance(c, scope)
			if maxErr != nil {
				api.abortWithBankError(c, scope, maxErr, p.Lang)
				return
			}
			abortWithError(c, http.StatusBadRequest, locale.LocalizeMessage(msgDefaultBalanceInvalid, map[string]interface{}{
				"Max": locale.HumanizeNumber(maxBalance, p.Lang),
			}, p.Lang))
			return
		} else if err != nil {
			api.abortWithBankError(c, scope, err, p.Lang)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{
			Message: locale.LocalizeMessage(msgDefaultBalance, map[string]interface{}{
				"Amount": locale.HumanizeNumber(p.Amount, p.Lang),
			}, p.Lang),
		})
	}
}

// GetBalance godoc
// @Summary Get Balance
// @Schemes GET
// @Description Get a user's balance. Users without an account have the default balance.
// @Security BasicAuth
// @Tags bank
// @Accept json
// @Produce json
// @Param guildID query string false "Guild ID, required when the bank is per-server"
// @Param userID query string true "User ID or mention"
// @Param lang query string false "Language of the message"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bank/balance [get]
func handleGetBalance(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		userID, err := discord.ParseUserID(c.Query("userID"))
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid user ID")
			return
		}
		scope, ok := api.resolveScope(c, c.Query("guildID"), lang)
		if !ok {
			return
		}
		balance, err := api.ledger.Balance(c, scope, userID)
		if err != nil {
			api.abortWithBankError(c, scope, err, lang)
			return
		}
		api.respondBalance(c, scope, userID, balance, lang)
	}
}

type balanceOp func(ctx context.Context, ledger *bank.Ledger, scope bank.Scope, userID uint64, amount int64) (int64, error)

func deposit(ctx context.Context, ledger *bank.Ledger, scope bank.Scope, userID uint64, amount int64) (int64, error) {
	return ledger.Deposit(ctx, scope, userID, amount)
}

func withdraw(ctx context.Context, ledger *bank.Ledger, scope bank.Scope, userID uint64, amount int64) (int64, error) {
	return ledger.Withdraw(ctx, scope, userID, amount)
}

func setBalance(ctx context.Context, ledger *bank.Ledger, scope bank.Scope, userID uint64, amount int64) (int64, error) {
	return ledger.SetBalance(ctx, scope, userID, amount)
}

// ChangeBalance godoc
// @Summary Change Balance
// @Schemes POST
// @Description Deposit into, withdraw from, or set a user's balance (/bank/deposit, /bank/withdraw, /bank/balance)
// @Security BasicAuth
// @Tags bank
// @Accept json
// @Produce json
// @Param BalanceRequest body BalanceRequest true "Guild, invoker, user and amount"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} HttpError
// @Failure 403 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bank/deposit [post]
func handlePostBalance(api *Api, op balanceOp) func(c *gin.Context) {
	return func(c *gin.Context) {
		var p BalanceRequest
		if !bindRequest(c, &p) {
			return
		}
		userID, err := discord.ParseUserID(p.UserID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid user ID")
			return
		}
		scope, ok := api.authorize(c, &p.InvokerRequest, discord.CanAdministerBank)
		if !ok {
			return
		}
		balance, err := op(c, api.ledger, scope, userID, p.Amount)
		if err != nil {
			api.abortWithBankError(c, scope, err, p.Lang)
			return
		}
		api.respondBalance(c, scope, userID, balance, p.Lang)
	}
}

// Transfer godoc
// @Summary Transfer
// @Schemes POST
// @Description Move currency from one user's account to another's
// @Security BasicAuth
// @Tags bank
// @Accept json
// @Produce json
// @Param TransferRequest body TransferRequest true "Guild, sender, recipient and amount"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bank/transfer [post]
func handlePostTransfer(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		var p TransferRequest
		if !bindRequest(c, &p) {
			return
		}
		from, err := discord.ParseUserID(p.From)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid sender ID")
			return
		}
		to, err := discord.ParseUserID(p.To)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid recipient ID")
			return
		}
		scope, ok := api.resolveScope(c, p.GuildID, p.Lang)
		if !ok {
			return
		}
		transfer, err := api.ledger.Transfer(c, scope, from, to, p.Amount)
		if err != nil {
			api.abortWithBankError(c, scope, err, p.Lang)
			return
		}
		c.JSON(http.StatusOK, TransferResponse{
			ID:          transfer.ID.String(),
			From:        strconv.FormatUint(transfer.From, 10),
			To:          strconv.FormatUint(transfer.To, 10),
			Amount:      transfer.Amount,
			FromBalance: transfer.FromBalance,
			ToBalance:   transfer.ToBalance,
			Time:        transfer.Time.Unix(),
		})
	}
}

// GetLeaderboard godoc
// @Summary Get Leaderboard
// @Schemes GET
// @Description Get the accounts with the highest balances
// @Security BasicAuth
// @Tags bank
// @Accept json
// @Produce json
// @Param guildID query string false "Guild ID, required when the bank is per-server"
// @Param n query int false "Number of accounts, 0 for all"
// @Success 200 {object} []LeaderboardEntry
// @Failure 400 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bank/leaderboard [get]
func handleGetLeaderboard(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		n := DefaultLeaderboardSize
		if nStr := c.Query("n"); nStr != "" {
			var err error
			n, err = strconv.Atoi(nStr)
			if err != nil || n < 0 {
				abortWithError(c, http.StatusBadRequest, "invalid leaderboard size")
				return
			}
		}
		scope, ok := api.resolveScope(c, c.Query("guildID"), lang)
		if !ok {
			return
		}
		accounts, err := api.ledger.Leaderboard(c, scope, n)
		if err != nil {
			api.abortWithBankError(c, scope, err, lang)
			return
		}
		entries := make([]LeaderboardEntry, len(accounts))
		for i, acc := range accounts {
			entries[i] = LeaderboardEntry{
				Rank:    i + 1,
				UserID:  strconv.FormatUint(acc.UserID, 10),
				Balance: acc.Balance,
			}
		}
		c.JSON(http.StatusOK, entries)
	}
}

func bindRequest(c *gin.Context, p interface{}) bool {
	if err := c.ShouldBindBodyWith(p, binding.JSON); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (api *Api) resolveScope(c *gin.Context, guildID, lang string) (bank.Scope, bool) {
	var gid uint64
	if guildID != "" {
		var err error
		gid, err = discord.ParseSnowflake(guildID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid guild ID")
			return bank.Global, false
		}
	}
	scope, err := api.ledger.Resolve(c, gid)
	if err != nil {
		api.abortWithBankError(c, scope, err, lang)
		return scope, false
	}
	return scope, true
}

type predicate func(ctx context.Context, mode discord.ModeReader, invoker *discord.Invoker) (bool, error)

// scopeMode answers IsGlobal from an already resolved scope, so a permission check always judges
// the scope the request is about to touch.
type scopeMode bank.Scope

func (mode scopeMode) IsGlobal(_ context.Context) (bool, error) {
	return bank.Scope(mode).IsGlobal(), nil
}

// authorize validates the invoker, resolves the scope the request applies to and runs check against
// that scope. A mode switch after this point makes the ledger reject the write with ErrScopeInactive.
func (api *Api) authorize(c *gin.Context, p *InvokerRequest, check predicate) (bank.Scope, bool) {
	if err := p.Invoker.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return bank.Global, false
	}
	scope, ok := api.resolveScope(c, p.GuildID, p.Lang)
	if !ok {
		return scope, false
	}
	allowed, err := check(c, scopeMode(scope), p.Invoker)
	if err != nil {
		api.abortWithBankError(c, scope, err, p.Lang)
		return scope, false
	}
	if !allowed {
		abortWithError(c, http.StatusForbidden, locale.LocalizeMessage(msgForbidden, nil, p.Lang))
		return scope, false
	}
	return scope, true
}

func (api *Api) respondBalance(c *gin.Context, scope bank.Scope, userID uint64, balance int64, lang string) {
	currency, err := api.ledger.CurrencyName(c, scope)
	if err != nil {
		api.abortWithBankError(c, scope, err, lang)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{
		UserID:   strconv.FormatUint(userID, 10),
		Balance:  balance,
		Currency: currency,
		Message: locale.LocalizeMessage(msgBalance, map[string]interface{}{
			"User":     discord.MentionByUserID(userID),
			"Balance":  locale.HumanizeNumber(balance, lang),
			"Currency": currency,
		}, lang),
	})
}

func (api *Api) abortWithBankError(c *gin.Context, scope bank.Scope, err error, lang string) {
	var msg *i18n.Message
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, bank.ErrEmptyName):
		msg = msgEmptyName
	case errors.Is(err, bank.ErrInvalidAmount):
		msg = msgInvalidAmount
	case errors.Is(err, bank.ErrBalanceTooHigh):
		msg = msgBalanceTooHigh
	case errors.Is(err, bank.ErrInsufficientFunds):
		msg = msgInsufficientFunds
	case errors.Is(err, bank.ErrSameAccount):
		msg = msgSameAccount
	case errors.Is(err, bank.ErrScopeInactive):
		msg = msgScopeInactive
	case errors.Is(err, bank.ErrGuildRequired):
		msg = msgGuildRequired
	case errors.Is(err, bank.ErrAccountNotFound):
		msg = msgAccountNotFound
		status = http.StatusNotFound
	default:
		log.Printf("[Api] %s: %s", scope, err)
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	data := map[string]interface{}{}
	if msg == msgBalanceTooHigh || msg == msgInsufficientFunds || msg == msgSameAccount {
		if cfg, cfgErr := api.ledger.Config(c, scope); cfgErr == nil {
			data["Currency"] = cfg.CurrencyName
			data["Max"] = locale.HumanizeNumber(cfg.MaxBalance, lang)
		}
	}
	abortWithError(c, status, locale.LocalizeMessage(msg, data, lang))
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, HttpError{
		StatusCode: status,
		Error:      msg,
	})
}
