package api

import (
	"errors"
	"net/http"

	"github.com/SwiftShip/SwiftShip-Backend/api/apistrings"
	models "github.com/SwiftShip/SwiftShip-Backend/api/models"
	db "github.com/SwiftShip/SwiftShip-Backend/db/sqlc"
	basemodels "github.com/SwiftShip/SwiftShip-Backend/models"
	"github.com/SwiftShip/SwiftShip-Backend/services/booking"
	"github.com/SwiftShip/SwiftShip-Backend/services/kyc"
	"github.com/SwiftShip/SwiftShip-Backend/services/pricing"
	"github.com/SwiftShip/SwiftShip-Backend/services/shipment"
	"github.com/SwiftShip/SwiftShip-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShipmentAPI struct {
	server          *Server
	bookingService  *booking.BookingService
	shipmentService *shipment.ShipmentService
	kycService      *kyc.KYCService
}

func (sa ShipmentAPI) router(server *Server) {
	sa.server = server
	sa.bookingService = booking.NewBookingService(
		booking.NewStore(server.store),
		pricing.NewRateTableOracle(),
		server.notifier,
		server.logger,
		server.config.TrackingBaseURL,
	)
	sa.shipmentService = shipment.NewShipmentServiceWithCache(server.store, server.logger, server.cache)
	sa.kycService = kyc.NewKYCService(server.store, server.storageProvider(), server.logger)

	serverGroupV1 := server.router.Group("/api/v1/shipments")
	serverGroupV1.POST("", AuthenticatedMiddleware(), sa.bookShipment)
	serverGroupV1.GET("", AuthenticatedMiddleware(), sa.listShipments)
	serverGroupV1.GET(":id", AuthenticatedMiddleware(), sa.getShipment)
	serverGroupV1.PATCH(":id/status", AuthenticatedMiddleware(), AdminMiddleware(), sa.updateStatus)
}

func (sa *ShipmentAPI) bookShipment(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	request := new(models.BookShipmentParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidBookingInput))
		return
	}

	// Merchants book on behalf of their customers and must be verified first.
	if activeUser.Role == "merchant" {
		approved, err := sa.kycService.IsApproved(ctx, activeUser.UserID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
			return
		}
		if !approved {
			ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.KYCRequired))
			return
		}
	}

	dbUser, err := sa.server.store.GetUserByID(ctx, activeUser.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	receipt, err := sa.bookingService.BookShipment(ctx, booking.Actor{
		ID:    dbUser.ID,
		Name:  dbUser.FullName,
		Email: dbUser.Email,
		Phone: dbUser.PhoneNumber,
	}, booking.BookingRequest{
		SenderDetails:    request.SenderDetails,
		RecipientDetails: request.RecipientDetails,
		WeightKg:         request.WeightKg,
		ServiceType:      request.ServiceType,
		Fragile:          request.Fragile,
		Notes:            request.Notes,
	})

	var insufficient *booking.InsufficientFundsError
	switch {
	case err == nil:
		ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Shipment Booked Successfully", receipt))
	case errors.As(err, &insufficient):
		resp := basemodels.NewError(apistrings.InsufficientFunds)
		resp.Errors = []string{insufficient.Error()}
		ctx.JSON(http.StatusPaymentRequired, resp)
	case errors.Is(err, booking.ErrValidation):
		resp := basemodels.NewError(apistrings.InvalidBookingInput)
		resp.Errors = []string{err.Error()}
		ctx.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, booking.ErrWalletNotFound):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.UserNoWallet))
	case db.IsSerializationFailure(err), errors.Is(err, booking.ErrTrackingConflict):
		// Lost a race with a concurrent booking; the client can simply retry.
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.BookingConflict))
	default:
		sa.server.logger.Error("booking failed", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}

func (sa *ShipmentAPI) listShipments(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	limit, offset := pagination(ctx)

	shipments, err := sa.shipmentService.ListByOwner(ctx, activeUser.UserID, limit, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Shipments Fetched Successfully", shipments))
}

func (sa *ShipmentAPI) getShipment(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ShipmentNotFound))
		return
	}

	model, err := sa.shipmentService.GetByID(ctx, id)
	if errors.Is(err, shipment.ErrShipmentNotFound) {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ShipmentNotFound))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	// Owners and admins only; the public view is the tracking endpoint.
	if model.OwnerID != activeUser.UserID && activeUser.Role != RoleAdmin {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ShipmentNotFound))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Shipment Fetched Successfully", model))
}

func (sa *ShipmentAPI) updateStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ShipmentNotFound))
		return
	}

	request := new(models.UpdateShipmentStatusParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidStatusInput))
		return
	}

	model, err := sa.shipmentService.UpdateStatus(ctx, id, request.Status)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, basemodels.NewSuccess("Shipment Status Updated", model))
	case errors.Is(err, shipment.ErrShipmentNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ShipmentNotFound))
	case errors.Is(err, shipment.ErrInvalidStatus):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidStatusInput))
	case errors.Is(err, shipment.ErrBackwardTransition), errors.Is(err, shipment.ErrShipmentTerminal):
		ctx.JSON(http.StatusConflict, basemodels.NewError(err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}
