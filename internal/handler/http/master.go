package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paywell-hr/payroll-backend-go/internal/handler/http/response"
	"github.com/paywell-hr/payroll-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListTaxSlabs(w http.ResponseWriter, r *http.Request)
	GetTaxSlab(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	taxSlabService master.TaxSlabService
}

func NewMasterHandler(taxSlabService master.TaxSlabService) MasterHandler {
	return &MasterHandlerImpl{taxSlabService: taxSlabService}
}

// ListTaxSlabs implements MasterHandler.
func (h *MasterHandlerImpl) ListTaxSlabs(w http.ResponseWriter, r *http.Request) {
	resp, err := h.taxSlabService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetTaxSlab implements MasterHandler.
func (h *MasterHandlerImpl) GetTaxSlab(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Tax slab ID is required", nil)
		return
	}

	resp, err := h.taxSlabService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
