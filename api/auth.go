package api

import (
	"database/sql"
	"net/http"

	"github.com/SwiftShip/SwiftShip-Backend/api/apistrings"
	models "github.com/SwiftShip/SwiftShip-Backend/api/models"
	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	basemodels "github.com/SwiftShip/SwiftShip-Backend/models"
	"github.com/SwiftShip/SwiftShip-Backend/services/wallet"
	"github.com/SwiftShip/SwiftShip-Backend/utils"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

type Auth struct {
	server        *Server
	walletService *wallet.WalletService
}

func (a Auth) router(server *Server) {
	a.server = server
	a.walletService = wallet.NewWalletService(server.store, server.logger)

	serverGroup := server.router.Group("/auth")
	serverGroup.GET("test", a.testAuth)
	serverGroup.POST("login", a.login)
	serverGroup.POST("register", a.register)
	serverGroup.GET("profile", AuthenticatedMiddleware(), a.profile)
}

func (a Auth) testAuth(ctx *gin.Context) {
	dr := basemodels.SuccessResponse{
		Status:  "successful",
		Message: "Authentication API is active",
		Version: utils.REVISION,
	}

	ctx.JSON(http.StatusOK, dr)
}

func (a *Auth) register(ctx *gin.Context) {
	user := new(models.UserRegistrationParams)

	if err := ctx.ShouldBindJSON(user); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(err.Error()))
		return
	}

	hashedPassword, err := utils.GenerateHashValue(user.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	role := user.Role
	if role == "" {
		role = "customer"
	}

	dbUser, err := a.server.store.CreateUser(ctx, db.CreateUserParams{
		Email:          user.Email,
		HashedPassword: hashedPassword,
		FullName:       user.FullName,
		PhoneNumber:    user.PhoneNumber,
		Role:           role,
	})
	if db.IsUniqueViolation(err, "") {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.UserDetailsAlreadyCreated))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	// Every account starts with an NGN wallet so the top-up flow works out
	// of the box.
	if _, err := a.walletService.GetOrCreateWallet(ctx, dbUser.ID); err != nil {
		a.server.logger.Error("could not provision wallet at registration", err)
	}

	token, err := TokenController.CreateToken(utils.TokenObject{
		UserID:   dbUser.ID,
		Role:     dbUser.Role,
		Verified: dbUser.Verified,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Account Created Successfully", gin.H{
		"user":  models.ToUserResponse(&dbUser),
		"token": token,
	}))
}

func (a *Auth) login(ctx *gin.Context) {
	user := new(models.UserLoginParams)

	if err := ctx.ShouldBindJSON(user); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(err.Error()))
		return
	}

	dbUser, err := a.server.store.GetUserByEmail(ctx, user.Email)
	if err == sql.ErrNoRows {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.IncorrectEmailPass))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err = utils.VerifyHashValue(user.Password, dbUser.HashedPassword); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.IncorrectEmailPass))
		return
	}

	token, err := TokenController.CreateToken(utils.TokenObject{
		UserID:   dbUser.ID,
		Role:     dbUser.Role,
		Verified: dbUser.Verified,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Login Successful", gin.H{
		"user":  models.ToUserResponse(&dbUser),
		"token": token,
	}))
}

func (a *Auth) profile(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	dbUser, err := a.server.store.GetUserByID(ctx, activeUser.UserID)
	if err == sql.ErrNoRows {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNotFound))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Profile Fetched Successfully", models.ToUserResponse(&dbUser)))
}
