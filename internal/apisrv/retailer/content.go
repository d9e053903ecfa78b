package retailer

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/dto"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/jekabolt/wholesale-portal/internal/form"
)

// ListMessages returns the retailer's thread and marks vendor replies read.
func (s *Server) ListMessages(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.RetailerID(r)
	if err != nil {
		apisrv.Fail(w, r, "no retailer in token", err)
		return
	}
	ctx := r.Context()
	msgs, err := s.repo.Messages().ListMessages(ctx, id)
	if err != nil {
		apisrv.Fail(w, r, "can't list messages", err)
		return
	}
	if err := s.repo.Messages().MarkRead(ctx, id, entity.SenderVendor); err != nil {
		slog.Default().ErrorContext(ctx, "can't mark messages read",
			slog.Int("retailer_id", id),
			slog.String("err", err.Error()),
		)
	}
	apisrv.JSON(w, r, http.StatusOK, msgs)
}

func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	rt := s.retailer(w, r)
	if rt == nil {
		return
	}
	req := &form.MessageRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.limiter.CheckMessage(limiterKey(rt.ID)); err != nil {
		apisrv.Fail(w, r, "message rate limited", err)
		return
	}

	ctx := r.Context()
	m, err := s.repo.Messages().AddMessage(ctx, rt.ID, entity.SenderRetailer, req.Body)
	if err != nil {
		apisrv.Fail(w, r, "can't add message", err)
		return
	}
	logMailErr(r, "can't send message received email", rt.ID,
		s.mailer.SendMessageReceived(ctx, s.repo, dto.MessageToMail(m, rt)))

	apisrv.JSON(w, r, http.StatusCreated, m)
}

func (s *Server) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	as, err := s.repo.Content().ListAnnouncements(r.Context(), true)
	if err != nil {
		apisrv.Fail(w, r, "can't list announcements", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, as)
}

func (s *Server) ListResources(w http.ResponseWriter, r *http.Request) {
	rs, err := s.repo.Content().ListResources(r.Context())
	if err != nil {
		apisrv.Fail(w, r, "can't list resources", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, rs)
}

// RequestSamples records a sample request and notifies the vendor team.
func (s *Server) RequestSamples(w http.ResponseWriter, r *http.Request) {
	rt := s.retailer(w, r)
	if rt == nil {
		return
	}
	req := &form.SampleRequestRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.limiter.CheckSampleRequest(limiterKey(rt.ID)); err != nil {
		apisrv.Fail(w, r, "sample request rate limited", err)
		return
	}

	ctx := r.Context()
	sr := &entity.SampleRequestInsert{
		RetailerID: rt.ID,
		Products:   req.Products,
		Notes:      req.Notes,
	}
	id, err := s.repo.Samples().AddSampleRequest(ctx, sr)
	if err != nil {
		apisrv.Fail(w, r, "can't add sample request", err)
		return
	}
	logMailErr(r, "can't send sample request email", rt.ID,
		s.mailer.SendSampleRequest(ctx, s.repo, dto.SampleRequestToMail(sr, rt)))

	apisrv.JSON(w, r, http.StatusCreated, entity.SampleRequest{ID: id, SampleRequestInsert: *sr})
}
