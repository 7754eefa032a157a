package api

import (
	"errors"
	"net/http"

	"github.com/SwiftShip/SwiftShip-Backend/api/apistrings"
	models "github.com/SwiftShip/SwiftShip-Backend/api/models"
	basemodels "github.com/SwiftShip/SwiftShip-Backend/models"
	"github.com/SwiftShip/SwiftShip-Backend/services/payment"
	"github.com/SwiftShip/SwiftShip-Backend/services/wallet"
	"github.com/SwiftShip/SwiftShip-Backend/utils"
	"github.com/gin-gonic/gin"
)

const paystackSignatureHeader = "x-paystack-signature"

type Payment struct {
	server         *Server
	depositService *payment.DepositService
	reconciler     *payment.Reconciler
}

func (p Payment) router(server *Server) {
	p.server = server

	paystack := server.fiatProvider()
	walletService := wallet.NewWalletService(server.store, server.logger)
	depositService, err := payment.NewDepositService(
		server.store,
		walletService,
		paystack,
		server.logger,
		server.config,
	)
	if err != nil {
		panic(err)
	}
	p.depositService = depositService
	p.reconciler = payment.NewReconciler(
		payment.NewStore(server.store),
		paystack.GetAPIKey(),
		server.logger,
	)

	serverGroupV1 := server.router.Group("/api/v1/payments")
	serverGroupV1.POST("deposit", AuthenticatedMiddleware(), p.initiateDeposit)
	serverGroupV1.POST("webhook", p.webhook)
}

func (p *Payment) initiateDeposit(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	request := new(models.InitiateDepositParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmountInput))
		return
	}

	dbUser, err := p.server.store.GetUserByID(ctx, activeUser.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	receipt, err := p.depositService.InitiateDeposit(ctx, dbUser.ID, dbUser.Email, request.AmountKobo)

	var outOfBounds *payment.AmountOutOfBoundsError
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, basemodels.NewSuccess("Deposit Initialized Successfully", receipt))
	case errors.As(err, &outOfBounds):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(outOfBounds.Error()))
	case errors.Is(err, payment.ErrProviderUnavailable):
		ctx.JSON(http.StatusBadGateway, basemodels.NewError(apistrings.ServerError))
	default:
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}

// webhook receives Paystack's at-least-once deliveries. Everything except an
// infrastructure failure on a validated event is acknowledged with a 200:
// answering 4xx or 5xx to a forgery or a duplicate only earns a redelivery.
func (p *Payment) webhook(ctx *gin.Context) {
	rawBody, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	signature := ctx.GetHeader(paystackSignatureHeader)

	outcome, err := p.reconciler.ReconcileDeposit(ctx, rawBody, signature)
	if err != nil {
		// Redelivery is the recovery path for a credit that failed against
		// the store.
		p.server.logger.Error("webhook reconciliation failed", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": string(outcome)})
}
