package controllers

import (
	"context"
	"net/http"
	"time"

	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/responses"
	"citamed-service/internal/pkg/exceptions"
	"citamed-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// documentURLExpiry bounds how long a shared document link stays valid.
const documentURLExpiry = 15 * time.Minute

// DocumentController receives patient document uploads (referrals, prior
// reports) and stores them in the object store.
type DocumentController struct {
	Log        *zap.Logger
	Storage    contracts.Storage
	BucketName string
	MaxSizeMB  int64
}

func NewDocumentController(logger *zap.Logger, storage contracts.Storage, bucketName string, maxSizeMB int64) *DocumentController {
	return &DocumentController{
		Log:        logger,
		Storage:    storage,
		BucketName: bucketName,
		MaxSizeMB:  maxSizeMB,
	}
}

func (ctrl *DocumentController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	maxBytes := ctrl.MaxSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	err := r.ParseMultipartForm(maxBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFormat(err, "multipart form"))
		return
	}

	file, fileHeader, err := r.FormFile("documento")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFormat(err, "documento"))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	objectName, err := ctrl.Storage.UploadFile(ctx, file, fileHeader, ctrl.BucketName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := &responses.UploadDocumentResponse{
		ObjectName: objectName,
		Bucket:     ctrl.BucketName,
		Size:       fileHeader.Size,
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadDocumentSuccessMessage, response)
}

// GetDocumentURL hands out a short-lived presigned link so the browser can
// fetch the document straight from the object store.
func (ctrl *DocumentController) GetDocumentURL(w http.ResponseWriter, r *http.Request) {
	objectName := chi.URLParam(r, constvars.URLParamObjectName)
	if objectName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamObjectName))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	url, err := ctrl.Storage.GetObjectUrlWithExpiryTime(ctx, ctrl.BucketName, objectName, documentURLExpiry)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := &responses.DocumentURLResponse{
		ObjectName: objectName,
		URL:        url,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentURLSuccessMessage, response)
}
