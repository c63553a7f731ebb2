package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"radio-garden-client/internal/api/dto"
	"radio-garden-client/internal/ports"
)

// DirectoryHandler exposes the remote directory operations one to one.
type DirectoryHandler struct {
	Dir ports.Directory
}

func (h *DirectoryHandler) Places(w http.ResponseWriter, r *http.Request) {
	res, err := h.Dir.Places(r.Context())
	if err != nil {
		writeDirectoryError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *DirectoryHandler) PlaceChannels(w http.ResponseWriter, r *http.Request) {
	res, err := h.Dir.PlaceChannels(r.Context(), chi.URLParam(r, "placeID"))
	if err != nil {
		writeDirectoryError(w, r, err)
		return
	}

	chans := res.Channels()
	out := dto.PlaceChannelsResponse{
		Title:    res.Data.Title,
		Subtitle: res.Data.Subtitle,
		Channels: make([]dto.ChannelResponse, 0, len(chans)),
	}
	for _, c := range chans {
		out.Channels = append(out.Channels, dto.NewChannelResponse(c))
	}

	writeJSON(w, r, http.StatusOK, out)
}

func (h *DirectoryHandler) ChannelDetails(w http.ResponseWriter, r *http.Request) {
	res, err := h.Dir.ChannelDetails(r.Context(), chi.URLParam(r, "channelID"))
	if err != nil {
		writeDirectoryError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, res.Data)
}

func (h *DirectoryHandler) ChannelStream(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")

	u, err := h.Dir.ChannelStreamURL(r.Context(), channelID)
	if err != nil {
		writeDirectoryError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.StreamResponse{ChannelID: channelID, StreamURL: u})
}

func (h *DirectoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	res, err := h.Dir.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDirectoryError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, res)
}

// GeoLocation reports where the directory places the address it was called
// from. The upstream call is made by this server, so the answer locates the
// server's egress IP, not the HTTP caller.
func (h *DirectoryHandler) GeoLocation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Dir.ClientGeoLocation(r.Context())
	if err != nil {
		writeDirectoryError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, res)
}
