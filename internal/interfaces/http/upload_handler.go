package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/YudheerRM/bidding-insights/internal/application/documents"
	"github.com/YudheerRM/bidding-insights/internal/application/dto"
)

// UploadHandler tender document uploads.
type UploadHandler struct {
	uc *documents.UploadUseCase
}

func NewUploadHandler(uc *documents.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Upload a tender document
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file       formData  file    true   "PDF or Word document, max 10 MiB"
// @Param        fileType   formData  string  true   "document | report"
// @Param        tender_id  formData  string  false  "attach to this tender"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	in := dto.UploadRequest{
		Kind:     c.FormValue("fileType"),
		TenderID: c.FormValue("tender_id"),
	}
	// A missing file leaves Body nil; the use case reports it after the permission check.
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return writeError(c, err)
		}
		defer f.Close()
		in.FileName = fh.Filename
		in.ContentType = fh.Header.Get(fiber.HeaderContentType)
		in.Size = fh.Size
		in.Body = f
	}

	out, err := h.uc.Upload(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Presign godoc
// @Summary      Presigned upload URL
// @Tags         uploads
// @Produce      json
// @Security     BearerAuth
// @Param        fileName     query  string  true  "original file name"
// @Param        contentType  query  string  true  "MIME type"
// @Param        fileType     query  string  true  "document | report"
// @Success      200  {object}  dto.PresignResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/upload/presign [get]
func (h *UploadHandler) Presign(c *fiber.Ctx) error {
	out, err := h.uc.Presign(c.UserContext(), GetActor(c), c.Query("fileType"), c.Query("fileName"), c.Query("contentType"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete an uploaded document
// @Tags         uploads
// @Produce      json
// @Security     BearerAuth
// @Param        key  query  string  true  "object key"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/upload [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Query("key")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "file deleted"})
}
