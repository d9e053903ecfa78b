package admin

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/dto"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/jekabolt/wholesale-portal/internal/form"
)

const (
	maxResourceSize   = 25 << 20
	defaultMessageLim = 50
)

func (s *Server) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	as, err := s.repo.Content().ListAnnouncements(r.Context(), false)
	if err != nil {
		apisrv.Fail(w, r, "can't list announcements", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, as)
}

func (s *Server) AddAnnouncement(w http.ResponseWriter, r *http.Request) {
	req := &form.AnnouncementRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	id, err := s.repo.Content().AddAnnouncement(r.Context(), &req.AnnouncementInsert)
	if err != nil {
		apisrv.Fail(w, r, "can't add announcement", err)
		return
	}
	apisrv.JSON(w, r, http.StatusCreated, entity.Announcement{
		ID:                 id,
		AnnouncementInsert: req.AnnouncementInsert,
		CreatedAt:          s.repo.Now(),
	})
}

func (s *Server) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.AnnouncementRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Content().UpdateAnnouncement(r.Context(), id, &req.AnnouncementInsert); err != nil {
		apisrv.Fail(w, r, "can't update announcement", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Content().DeleteAnnouncement(r.Context(), id); err != nil {
		apisrv.Fail(w, r, "can't delete announcement", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListResources(w http.ResponseWriter, r *http.Request) {
	rs, err := s.repo.Content().ListResources(r.Context())
	if err != nil {
		apisrv.Fail(w, r, "can't list resources", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, rs)
}

// AddResource takes a multipart form with a "file" part plus "title" and
// optional "description" fields.
func (s *Server) AddResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxResourceSize)
	if err := r.ParseMultipartForm(maxResourceSize); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(fmt.Errorf("%w: %s", gerr.BadRequest, err.Error())))
		return
	}
	req := &form.ResourceRequest{Title: r.FormValue("title")}
	if d := r.FormValue("description"); d != "" {
		req.Description = &d
	}
	if err := req.Bind(r); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}

	f, hdr, err := r.FormFile("file")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(fmt.Errorf("%w: file is required", gerr.BadRequest)))
		return
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(fmt.Errorf("%w: %s", gerr.BadRequest, err.Error())))
		return
	}

	ct := hdr.Header.Get("Content-Type")
	if ct == "application/octet-stream" {
		ct = ""
	}
	url, err := s.bucket.UploadResource(ctx, raw, hdr.Filename, ct)
	if err != nil {
		apisrv.Fail(w, r, "can't upload resource", fmt.Errorf("%w: %s", gerr.BadRequest, err.Error()))
		return
	}
	if ct == "" {
		ct = http.DetectContentType(raw)
	}

	ins := &entity.ResourceInsert{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     url,
		ContentType: strings.SplitN(ct, ";", 2)[0],
	}
	id, err := s.repo.Content().AddResource(ctx, ins)
	if err != nil {
		apisrv.Fail(w, r, "can't add resource", err)
		return
	}
	apisrv.JSON(w, r, http.StatusCreated, entity.Resource{
		ID:             id,
		ResourceInsert: *ins,
		CreatedAt:      s.repo.Now(),
	})
}

func (s *Server) UpdateResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.ResourceRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	res, err := s.repo.Content().GetResourceById(ctx, id)
	if err != nil {
		apisrv.Fail(w, r, "can't get resource", err)
		return
	}
	res.Title = req.Title
	res.Description = req.Description
	if err := s.repo.Content().UpdateResource(ctx, id, &res.ResourceInsert); err != nil {
		apisrv.Fail(w, r, "can't update resource", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, res)
}

// DeleteResource removes the row first; a file left behind in the bucket is
// only logged.
func (s *Server) DeleteResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	res, err := s.repo.Content().GetResourceById(ctx, id)
	if err != nil {
		apisrv.Fail(w, r, "can't get resource", err)
		return
	}
	if err := s.repo.Content().DeleteResource(ctx, id); err != nil {
		apisrv.Fail(w, r, "can't delete resource", err)
		return
	}
	if err := s.bucket.Delete(ctx, res.FileURL); err != nil {
		slog.Default().WarnContext(ctx, "can't delete resource file",
			slog.Int("resource_id", id),
			slog.String("url", res.FileURL),
			slog.String("err", err.Error()),
		)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListSampleRequests(w http.ResponseWriter, r *http.Request) {
	includeHandled := r.URL.Query().Get("include_handled") == "true"
	srs, err := s.repo.Samples().ListSampleRequests(r.Context(), includeHandled)
	if err != nil {
		apisrv.Fail(w, r, "can't list sample requests", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, srs)
}

func (s *Server) MarkSampleRequestHandled(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Samples().MarkHandled(r.Context(), id); err != nil {
		apisrv.Fail(w, r, "can't mark sample request handled", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListLatestMessages is the admin inbox across every retailer.
func (s *Server) ListLatestMessages(w http.ResponseWriter, r *http.Request) {
	limit, err := apisrv.QueryInt(r, "limit", defaultMessageLim)
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	msgs, err := s.repo.Messages().ListLatestMessages(r.Context(), limit)
	if err != nil {
		apisrv.Fail(w, r, "can't list messages", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, msgs)
}

// GetThread returns a retailer thread and marks the retailer's messages read.
func (s *Server) GetThread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rid, err := apisrv.URLParamInt(r, "retailerId")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if _, err := s.repo.Retailers().GetRetailerById(ctx, rid); err != nil {
		apisrv.Fail(w, r, "can't get retailer", err)
		return
	}
	msgs, err := s.repo.Messages().ListMessages(ctx, rid)
	if err != nil {
		apisrv.Fail(w, r, "can't list messages", err)
		return
	}
	if err := s.repo.Messages().MarkRead(ctx, rid, entity.SenderRetailer); err != nil {
		slog.Default().ErrorContext(ctx, "can't mark messages read",
			slog.Int("retailer_id", rid),
			slog.String("err", err.Error()),
		)
	}
	apisrv.JSON(w, r, http.StatusOK, msgs)
}

func (s *Server) Reply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rid, err := apisrv.URLParamInt(r, "retailerId")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.MessageRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	rt, err := s.repo.Retailers().GetRetailerById(ctx, rid)
	if err != nil {
		apisrv.Fail(w, r, "can't get retailer", err)
		return
	}
	m, err := s.repo.Messages().AddMessage(ctx, rid, entity.SenderVendor, req.Body)
	if err != nil {
		apisrv.Fail(w, r, "can't add message", err)
		return
	}
	logMailErr(r, "can't send message reply email",
		s.mailer.SendMessageReply(ctx, s.repo, rt.Email, dto.MessageToMail(m, rt)))

	apisrv.JSON(w, r, http.StatusCreated, m)
}
