package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lunahq/accounts-api/internal/httperr"
	"github.com/lunahq/accounts-api/internal/i18n"
	"github.com/lunahq/accounts-api/internal/response"
	"github.com/lunahq/accounts-api/internal/services"
)

type FilesHandler struct {
	filesService *services.FilesService
}

func NewFilesHandler(filesService *services.FilesService) *FilesHandler {
	return &FilesHandler{filesService: filesService}
}

func (h *FilesHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		fields := map[string]string{"file": "validation.FILE_REQUIRED"}
		return httperr.Validation(i18n.Localize(requestLang(c), fields))
	}

	file, err := h.filesService.Upload(c.Context(), header)
	if err != nil {
		return err
	}
	return response.OK(c, file)
}

func (h *FilesHandler) Serve(c *fiber.Ctx) error {
	full, err := h.filesService.Resolve(c.Params("path"))
	if err != nil {
		return httperr.NotFound(nil)
	}
	return c.SendFile(full)
}
