package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SwiftShip/SwiftShip-Backend/api/apistrings"
	basemodels "github.com/SwiftShip/SwiftShip-Backend/models"
	"github.com/SwiftShip/SwiftShip-Backend/services/transaction"
	"github.com/SwiftShip/SwiftShip-Backend/services/wallet"
	"github.com/SwiftShip/SwiftShip-Backend/utils"
	"github.com/gin-gonic/gin"
)

type Wallet struct {
	server             *Server
	walletService      *wallet.WalletService
	transactionService *transaction.TransactionService
}

func (w Wallet) router(server *Server) {
	w.server = server
	w.walletService = wallet.NewWalletService(server.store, server.logger)
	w.transactionService = transaction.NewTransactionService(
		server.store,
		w.walletService,
		server.logger,
	)

	serverGroupV1 := server.router.Group("/api/v1/wallets")
	serverGroupV1.GET("", AuthenticatedMiddleware(), w.getUserWallet)
	serverGroupV1.GET("transactions", AuthenticatedMiddleware(), w.getTransactions)
}

func (w *Wallet) getUserWallet(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	owned, err := w.walletService.GetOrCreateWallet(ctx, activeUser.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("User Wallet Fetched Successfully", owned))
}

func (w *Wallet) getTransactions(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	limit, offset := pagination(ctx)

	rows, err := w.transactionService.ListForOwner(ctx, activeUser.UserID, limit, offset)
	if errors.Is(err, wallet.ErrWalletNotFound) {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.UserNoWallet))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transactions Fetched Successfully", rows))
}

// pagination reads limit/offset query params with sane bounds.
func pagination(ctx *gin.Context) (int32, int32) {
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "20"), 10, 32)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.ParseInt(ctx.DefaultQuery("offset", "0"), 10, 32)
	if err != nil || offset < 0 {
		offset = 0
	}
	return int32(limit), int32(offset)
}
