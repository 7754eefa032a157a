package api

import (
	"errors"
	"net/http"

	"github.com/SwiftShip/SwiftShip-Backend/api/apistrings"
	models "github.com/SwiftShip/SwiftShip-Backend/api/models"
	basemodels "github.com/SwiftShip/SwiftShip-Backend/models"
	"github.com/SwiftShip/SwiftShip-Backend/services/kyc"
	"github.com/SwiftShip/SwiftShip-Backend/utils"
	"github.com/gin-gonic/gin"
)

type KYC struct {
	server     *Server
	kycService *kyc.KYCService
}

func (k KYC) router(server *Server) {
	k.server = server
	k.kycService = kyc.NewKYCService(server.store, server.storageProvider(), server.logger)

	serverGroupV1 := server.router.Group("/api/v1/kyc")
	serverGroupV1.POST("", AuthenticatedMiddleware(), k.submit)
	serverGroupV1.GET("", AuthenticatedMiddleware(), k.status)
	serverGroupV1.POST("upload-url", AuthenticatedMiddleware(), k.presignUpload)
	serverGroupV1.GET("pending", AuthenticatedMiddleware(), AdminMiddleware(), k.listPending)
	serverGroupV1.POST("review", AuthenticatedMiddleware(), AdminMiddleware(), k.review)
	serverGroupV1.GET("document/:user_id", AuthenticatedMiddleware(), AdminMiddleware(), k.documentURL)
}

func (k *KYC) submit(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	request := new(models.SubmitKYCParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidKYCInput))
		return
	}

	record, err := k.kycService.Submit(ctx, activeUser.UserID, kyc.SubmitRequest{
		BusinessName: request.BusinessName,
		RCNumber:     request.RCNumber,
		DocumentKey:  request.DocumentKey,
	})
	if errors.Is(err, kyc.ErrAlreadySubmitted) {
		ctx.JSON(http.StatusConflict, basemodels.NewError(err.Error()))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Verification Submitted Successfully", record))
}

func (k *KYC) status(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	record, err := k.kycService.Get(ctx, activeUser.UserID)
	if errors.Is(err, kyc.ErrKYCNotFound) {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoKYC))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Verification Status Fetched Successfully", record))
}

func (k *KYC) presignUpload(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	request := new(models.PresignUploadParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidKYCInput))
		return
	}

	url, key, err := k.kycService.PresignDocumentUpload(activeUser.UserID, request.ContentType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Upload URL Created Successfully", gin.H{
		"upload_url":   url,
		"document_key": key,
	}))
}

func (k *KYC) listPending(ctx *gin.Context) {
	limit, offset := pagination(ctx)

	records, err := k.kycService.ListPending(ctx, limit, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Pending Verifications Fetched Successfully", records))
}

func (k *KYC) review(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	request := new(models.ReviewKYCParams)
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidKYCInput))
		return
	}

	record, err := k.kycService.Review(ctx, request.UserID, activeUser.UserID, request.Decision)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, basemodels.NewSuccess("Verification Reviewed Successfully", record))
	case errors.Is(err, kyc.ErrKYCNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoKYC))
	case errors.Is(err, kyc.ErrAlreadyReviewed), errors.Is(err, kyc.ErrInvalidDecision):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}

func (k *KYC) documentURL(ctx *gin.Context) {
	userID, ok := parseInt64Param(ctx, "user_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidKYCInput))
		return
	}

	record, err := k.kycService.Get(ctx, userID)
	if errors.Is(err, kyc.ErrKYCNotFound) {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoKYC))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	url, err := k.kycService.PresignDocumentDownload(record.DocumentKey)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Document URL Created Successfully", gin.H{
		"download_url": url,
	}))
}
