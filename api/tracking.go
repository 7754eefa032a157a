package api

import (
	"errors"
	"net/http"

	"github.com/SwiftShip/SwiftShip-Backend/api/apistrings"
	basemodels "github.com/SwiftShip/SwiftShip-Backend/models"
	"github.com/SwiftShip/SwiftShip-Backend/services/shipment"
	"github.com/gin-gonic/gin"
)

type Tracking struct {
	server          *Server
	shipmentService *shipment.ShipmentService
}

// The tracking lookup is the only unauthenticated read in the system.
func (t Tracking) router(server *Server) {
	t.server = server
	t.shipmentService = shipment.NewShipmentServiceWithCache(server.store, server.logger, server.cache)

	serverGroupV1 := server.router.Group("/api/v1/tracking")
	serverGroupV1.GET(":number", t.track)
}

func (t *Tracking) track(ctx *gin.Context) {
	timeline, err := t.shipmentService.Track(ctx, ctx.Param("number"))
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, basemodels.NewSuccess("Shipment Timeline Fetched Successfully", timeline))
	case errors.Is(err, shipment.ErrInvalidTracking):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidTrackingInput))
	case errors.Is(err, shipment.ErrShipmentNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ShipmentNotFound))
	default:
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}
