package http

import (
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/company"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	GetMine(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{companyService: companyService}
}

func (h *companyHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	c, err := h.companyService.GetMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, c)
}
