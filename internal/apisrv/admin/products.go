package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/form"
)

// ListProducts returns the whole catalog, inactive products included.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := s.repo.Products().ListProducts(r.Context(), false)
	if err != nil {
		apisrv.Fail(w, r, "can't list products", err)
		return
	}
	analytics.CanonicalSortProducts(ps)
	apisrv.JSON(w, r, http.StatusOK, ps)
}

func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	p, err := s.repo.Products().GetProductById(r.Context(), id)
	if err != nil {
		apisrv.Fail(w, r, "can't get product", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, p)
}

func (s *Server) AddProduct(w http.ResponseWriter, r *http.Request) {
	req := &form.ProductRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	id, err := s.repo.Products().AddProduct(r.Context(), &req.ProductInsert)
	if err != nil {
		apisrv.Fail(w, r, "can't add product", err)
		return
	}
	s.refreshCatalog(r)

	p, err := s.repo.Products().GetProductById(r.Context(), id)
	if err != nil {
		apisrv.Fail(w, r, "can't get product", err)
		return
	}
	apisrv.JSON(w, r, http.StatusCreated, p)
}

func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.ProductRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Products().UpdateProduct(r.Context(), id, &req.ProductInsert); err != nil {
		apisrv.Fail(w, r, "can't update product", err)
		return
	}
	s.refreshCatalog(r)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteProduct hides the product. Past orders keep their product.
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Products().DeactivateProduct(r.Context(), id); err != nil {
		apisrv.Fail(w, r, "can't deactivate product", err)
		return
	}
	s.refreshCatalog(r)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.UpdateStockRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Products().UpdateStock(r.Context(), id, req.StockQuantity); err != nil {
		apisrv.Fail(w, r, "can't update stock", err)
		return
	}
	s.refreshCatalog(r)
	w.WriteHeader(http.StatusNoContent)
}

// UploadProductImage stores a webp full size image and thumbnail and points
// the product at them. The previous files are removed.
func (s *Server) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.ProductImageRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	prev, err := s.repo.Products().GetProductById(ctx, id)
	if err != nil {
		apisrv.Fail(w, r, "can't get product", err)
		return
	}

	img, err := s.bucket.UploadProductImage(ctx, req.Image, id)
	if err != nil {
		apisrv.Fail(w, r, "can't upload product image", err)
		return
	}
	if err := s.repo.Products().SetProductImage(ctx, id, img); err != nil {
		apisrv.Fail(w, r, "can't set product image", err)
		return
	}
	s.refreshCatalog(r)

	for _, old := range []*string{prev.ImageURL, prev.ThumbnailURL} {
		if old == nil || *old == "" {
			continue
		}
		if err := s.bucket.Delete(ctx, *old); err != nil {
			slog.Default().WarnContext(ctx, "can't delete previous product image",
				slog.Int("product_id", id),
				slog.String("url", *old),
				slog.String("err", err.Error()),
			)
		}
	}
	apisrv.JSON(w, r, http.StatusOK, img)
}
