package v1handler

import (
	"domainchecker/pkg/domain"
	"domainchecker/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateCheckRequest is the body of POST /checks.
type CreateCheckRequest struct {
	Domains []string       `json:"domains"`
	TLDs    []string       `json:"tlds"`
	GroupID string         `json:"groupId"`
	BatchID domain.BatchID `json:"batchId,omitempty"`
}

// CreateCheckAccepted is returned when the batch was queued.
type CreateCheckAccepted struct {
	BatchID domain.BatchID `json:"batchId"`
}

// ResultList wraps result collections.
type ResultList struct {
	Items []domain.CheckResult `json:"items"`
}

// CreateCheck submits a batch. With ?wait=true the batch runs within the
// request and its summary is returned; otherwise it is queued and 202 is returned.
func (h *Handler) CreateCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, err := OwnerIDFrom(ctx)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	wait := false
	if v := r.URL.Query().Get("wait"); v != "" {
		if wait, err = strconv.ParseBool(v); err != nil {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "wait must be a boolean"))

			return
		}
	}

	var body CreateCheckRequest
	if err = decodeJSON(w, r, &body); err != nil {
		h.writeError(w, r, err)

		return
	}

	req := domain.CheckRequest{
		OwnerID: ownerID,
		GroupID: body.GroupID,
		Domains: body.Domains,
		TLDs:    body.TLDs,
		BatchID: body.BatchID,
	}

	if wait {
		summary, err := h.checker.Run(ctx, req)
		if err != nil {
			h.writeError(w, r, err)

			return
		}
		writeJSON(ctx, w, http.StatusOK, summary)

		return
	}

	batchID, err := h.checker.Enqueue(ctx, req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(ctx, w, http.StatusAccepted, CreateCheckAccepted{BatchID: batchID})
}

func (h *Handler) BatchResults(w http.ResponseWriter, r *http.Request) {
	ownerID, err := OwnerIDFrom(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	results, err := h.checker.BatchResults(r.Context(), ownerID, domain.BatchID(chi.URLParam(r, "batchID")))
	h.writeResults(w, r, results, err)
}

func (h *Handler) DomainResults(w http.ResponseWriter, r *http.Request) {
	ownerID, err := OwnerIDFrom(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	domainID, err := uuid.Parse(chi.URLParam(r, "domainID"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain id"))

		return
	}

	results, err := h.checker.DomainResults(r.Context(), ownerID, domain.DomainID(domainID))
	h.writeResults(w, r, results, err)
}

func (h *Handler) GroupResults(w http.ResponseWriter, r *http.Request) {
	ownerID, err := OwnerIDFrom(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	results, err := h.checker.GroupResults(r.Context(), ownerID, chi.URLParam(r, "groupID"))
	h.writeResults(w, r, results, err)
}

func (h *Handler) writeResults(w http.ResponseWriter, r *http.Request, results []domain.CheckResult, err error) {
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if results == nil {
		results = []domain.CheckResult{}
	}
	writeJSON(r.Context(), w, http.StatusOK, ResultList{Items: results})
}
