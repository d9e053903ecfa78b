package retailer

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/jekabolt/wholesale-portal/internal/form"
)

// Account is the retailer profile with its business address split for editing.
type Account struct {
	*entity.Retailer
	Address form.AddressFields `json:"address"`
}

func newAccount(rt *entity.Retailer) Account {
	a := Account{Retailer: rt}
	if rt.BusinessAddress != nil {
		a.Address = form.AddressFieldsFrom(*rt.BusinessAddress)
	}
	return a
}

func (s *Server) GetAccount(w http.ResponseWriter, r *http.Request) {
	rt := s.retailer(w, r)
	if rt == nil {
		return
	}
	apisrv.JSON(w, r, http.StatusOK, newAccount(rt))
}

func (s *Server) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	rt := s.retailer(w, r)
	if rt == nil {
		return
	}
	req := &form.AccountUpdateRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}

	upd := req.Apply(rt)
	if err := s.repo.Retailers().UpdateRetailer(r.Context(), rt.ID, upd); err != nil {
		apisrv.Fail(w, r, "can't update retailer", err)
		return
	}
	rt.RetailerInsert = *upd
	apisrv.JSON(w, r, http.StatusOK, newAccount(rt))
}

func (s *Server) ListLocations(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.RetailerID(r)
	if err != nil {
		apisrv.Fail(w, r, "no retailer in token", err)
		return
	}
	ls, err := s.repo.Locations().ListLocations(r.Context(), id)
	if err != nil {
		apisrv.Fail(w, r, "can't list locations", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, ls)
}

func (s *Server) AddLocation(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.RetailerID(r)
	if err != nil {
		apisrv.Fail(w, r, "no retailer in token", err)
		return
	}
	req := &form.LocationRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	locID, err := s.repo.Locations().AddLocation(r.Context(), id, &req.RetailerLocationInsert)
	if err != nil {
		apisrv.Fail(w, r, "can't add location", err)
		return
	}
	l, err := s.repo.Locations().GetLocation(r.Context(), id, locID)
	if err != nil {
		apisrv.Fail(w, r, "can't get location", err)
		return
	}
	apisrv.JSON(w, r, http.StatusCreated, l)
}

func (s *Server) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.RetailerID(r)
	if err != nil {
		apisrv.Fail(w, r, "no retailer in token", err)
		return
	}
	locID, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.LocationRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Locations().UpdateLocation(r.Context(), id, locID, &req.RetailerLocationInsert); err != nil {
		apisrv.Fail(w, r, "can't update location", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.RetailerID(r)
	if err != nil {
		apisrv.Fail(w, r, "no retailer in token", err)
		return
	}
	locID, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Locations().DeleteLocation(r.Context(), id, locID); err != nil {
		apisrv.Fail(w, r, "can't delete location", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetDefaultLocation leaves exactly one default location.
func (s *Server) SetDefaultLocation(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.RetailerID(r)
	if err != nil {
		apisrv.Fail(w, r, "no retailer in token", err)
		return
	}
	locID, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Locations().SetDefault(r.Context(), id, locID); err != nil {
		apisrv.Fail(w, r, "can't set default location", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
