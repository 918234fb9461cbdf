package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"basobasFront/internal/models"
	"basobasFront/internal/services"
)

type RoommateHandler struct {
	Service *services.RoommateService
}

func (h *RoommateHandler) GetRoommates(w http.ResponseWriter, r *http.Request) {
	filter := models.RoommateFilter{
		Search:     r.URL.Query().Get("search"),
		Location:   r.URL.Query().Get("location"),
		Gender:     r.URL.Query().Get("gender"),
		BudgetBand: r.URL.Query().Get("budget"),
	}

	view, err := h.Service.ListRoommates(r.Context(), sessionFromRequest(r).Token, filter)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(view)
}

func (h *RoommateHandler) GetRoommateByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing roommate ID", http.StatusBadRequest)
		return
	}

	mate, err := h.Service.GetRoommate(r.Context(), sessionFromRequest(r).Token, id)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(mate)
}

func roommateFormFromRequest(r *http.Request) (models.RoommateForm, error) {
	if err := r.ParseMultipartForm(maxListingFormSize); err != nil {
		return models.RoommateForm{}, err
	}
	form := models.RoommateForm{
		Name:              r.FormValue("name"),
		Bio:               r.FormValue("bio"),
		PreferredLocation: r.FormValue("preferredLocation"),
		Gender:            r.FormValue("gender"),
		Age:               r.FormValue("age"),
		Budget:            r.FormValue("budget"),
		ContactNo:         r.FormValue("contactNo"),
	}

	file, header, err := r.FormFile("roommateImage")
	if err == http.ErrMissingFile {
		return form, nil
	}
	if err != nil {
		return models.RoommateForm{}, err
	}
	defer file.Close()

	form.Image, err = io.ReadAll(file)
	if err != nil {
		return models.RoommateForm{}, err
	}
	form.ImageName = header.Filename
	return form, nil
}

func (h *RoommateHandler) CreateRoommate(w http.ResponseWriter, r *http.Request) {
	form, err := roommateFormFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	if form.Name == "" || form.PreferredLocation == "" || form.Budget == "" {
		http.Error(w, "Name, preferred location and budget are required", http.StatusBadRequest)
		return
	}

	mate, err := h.Service.CreateRoommate(r.Context(), sessionFromRequest(r), form)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(mate)
}

func (h *RoommateHandler) UpdateRoommate(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing roommate ID", http.StatusBadRequest)
		return
	}
	form, err := roommateFormFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	mate, err := h.Service.UpdateRoommate(r.Context(), sessionFromRequest(r), id, form)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(mate)
}

func (h *RoommateHandler) DeleteRoommate(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing roommate ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteRoommate(r.Context(), sessionFromRequest(r), id); err != nil {
		if clientGone(r) {
			return
		}
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
