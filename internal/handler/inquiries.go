package handler

import (
	"net/http"

	"github.com/alanalzi/jalin-alam-project/internal/dto"
	"github.com/alanalzi/jalin-alam-project/internal/service"

	"github.com/gin-gonic/gin"
)

type InquiriesHandler struct{ svc service.InquiryService }

func NewInquiriesHandler(svc service.InquiryService) *InquiriesHandler {
	return &InquiriesHandler{svc: svc}
}

func (h *InquiriesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InquiriesHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Inquiry")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InquiriesHandler) Create(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Inquiry added successfully", ID: id})
}

func (h *InquiriesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Inquiry")
	if !ok {
		return
	}
	var req dto.UpdateInquiryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Inquiry updated successfully"})
}

func (h *InquiriesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Inquiry")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Inquiry deleted successfully"})
}
