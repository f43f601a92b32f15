package handlers

import (
	"net/http"
	"strconv"

	journalsvc "shopconsole/internal/services/journal"
)

// ListJournal handles journal listing requests
func ListJournal(svc *journalsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := journalsvc.ListRequest{}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				req.Limit = n
			}
		}
		if v := r.URL.Query().Get("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				req.Offset = n
			}
		}

		response, err := svc.List(r.Context(), req)
		if err != nil {
			http.Error(w, "failed to list journal: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, response)
	}
}
