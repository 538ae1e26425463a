package http

import (
	"net/http"
	"strconv"

	"github.com/sahelretail/hr-backend-go/internal/handler/http/response"
	"github.com/sahelretail/hr-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListBranches(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

func (h *masterHandlerImpl) ListBranches(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListBranches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var branchID *int64
	if v := r.URL.Query().Get("branch_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid branch id", nil)
			return
		}
		branchID = &id
	}

	result, err := h.masterService.ListEmployees(r.Context(), branchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
