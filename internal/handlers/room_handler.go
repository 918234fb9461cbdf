package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"basobasFront/internal/models"
	"basobasFront/internal/services"
)

const maxListingFormSize = 10 << 20

type RoomHandler struct {
	Service *services.RoomService
}

func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	filter := models.RoomFilter{
		Search:    r.URL.Query().Get("search"),
		Location:  r.URL.Query().Get("location"),
		PriceBand: r.URL.Query().Get("price"),
	}

	view, err := h.Service.ListRooms(r.Context(), sessionFromRequest(r).Token, filter)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(view)
}

func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing room ID", http.StatusBadRequest)
		return
	}

	room, err := h.Service.GetRoom(r.Context(), sessionFromRequest(r).Token, id)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(room)
}

func roomFormFromRequest(r *http.Request) (models.RoomForm, error) {
	if err := r.ParseMultipartForm(maxListingFormSize); err != nil {
		return models.RoomForm{}, err
	}
	form := models.RoomForm{
		Description: r.FormValue("roomDescription"),
		Floor:       r.FormValue("floor"),
		Address:     r.FormValue("address"),
		RentPrice:   r.FormValue("rentPrice"),
		Parking:     r.FormValue("parking"),
		ContactNo:   r.FormValue("contactNo"),
		Bathroom:    r.FormValue("bathroom"),
	}

	file, header, err := r.FormFile("roomImage")
	if err == http.ErrMissingFile {
		return form, nil
	}
	if err != nil {
		return models.RoomForm{}, err
	}
	defer file.Close()

	form.Image, err = io.ReadAll(file)
	if err != nil {
		return models.RoomForm{}, err
	}
	form.ImageName = header.Filename
	return form, nil
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	form, err := roomFormFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	if form.Description == "" || form.Address == "" || form.RentPrice == "" {
		http.Error(w, "Description, address and rent price are required", http.StatusBadRequest)
		return
	}

	room, err := h.Service.CreateRoom(r.Context(), sessionFromRequest(r), form)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(room)
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing room ID", http.StatusBadRequest)
		return
	}
	form, err := roomFormFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	room, err := h.Service.UpdateRoom(r.Context(), sessionFromRequest(r), id, form)
	if clientGone(r) {
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	json.NewEncoder(w).Encode(room)
}

func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		http.Error(w, "Missing room ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteRoom(r.Context(), sessionFromRequest(r), id); err != nil {
		if clientGone(r) {
			return
		}
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
