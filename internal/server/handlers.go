package server

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"fashion-shot-studio/internal/imaging"
	"fashion-shot-studio/internal/reference"
	"fashion-shot-studio/internal/studio"
	"fashion-shot-studio/internal/workflow"
)

type sessionResponse struct {
	SessionID string            `json:"sessionId"`
	Settings  workflow.Settings `json:"settings"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	state := s.sessions.Create()
	s.logger.Info("session created", "session", state.ID)
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: state.ID, Settings: state.Settings()})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.sessions.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state.Settings())
}

func (s *Server) handlePatchSettings(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}

	var patch workflow.SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid settings payload"})
		return
	}
	writeJSON(w, http.StatusOK, state.Apply(patch))
}

func (s *Server) handleListReferences(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}

	objects := state.References()
	views := make([]referenceView, 0, len(objects))
	for _, obj := range objects {
		views = append(views, viewOf(obj))
	}
	writeJSON(w, http.StatusOK, views)
}

// handleUploadReferences ingests one or more reference images from a
// multipart form. Files are decoded and compressed in parallel, then
// added to the set in form order so insertion order stays stable.
func (s *Server) handleUploadReferences(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid multipart form"})
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "missing images"})
		return
	}

	purpose := reference.Purpose(strings.TrimSpace(r.FormValue("purpose")))
	if purpose == "" {
		purpose = reference.PurposeClothingGarment
	}
	description := strings.TrimSpace(r.FormValue("description"))

	images := make([]reference.Image, len(files))
	g, _ := errgroup.WithContext(r.Context())
	for i, header := range files {
		g.Go(func() error {
			img, err := readUpload(header)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	views := make([]referenceView, 0, len(images))
	for _, img := range images {
		obj := state.AddReference(img, description, purpose)
		views = append(views, viewOf(obj))
	}
	writeJSON(w, http.StatusCreated, views)
}

type referencePatchPayload struct {
	Description      *string                `json:"description"`
	Purpose          *reference.Purpose     `json:"purpose"`
	Mask             *string                `json:"mask"`
	BoundingBox      *reference.BoundingBox `json:"boundingBox"`
	ClearMask        bool                   `json:"clearMask"`
	ClearBoundingBox bool                   `json:"clearBoundingBox"`
}

func (s *Server) handlePatchReference(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}

	var payload referencePatchPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid reference payload"})
		return
	}

	obj, err := state.UpdateReference(r.PathValue("refId"), reference.Patch{
		Description:      payload.Description,
		Purpose:          payload.Purpose,
		Mask:             payload.Mask,
		BoundingBox:      payload.BoundingBox,
		ClearMask:        payload.ClearMask,
		ClearBoundingBox: payload.ClearBoundingBox,
	})
	if err != nil {
		writeJSON(w, http.StatusNotFound, apiError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, viewOf(obj))
}

func (s *Server) handleDeleteReference(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := state.RemoveReference(r.PathValue("refId")); err != nil {
		writeJSON(w, http.StatusNotFound, apiError{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListShots(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state.Shots())
}

func (s *Server) handleSetShotReference(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid multipart form"})
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "missing image"})
		return
	}

	img, err := readUpload(files[0])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}
	state.SetShotReference(r.PathValue("shotId"), img)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteShotReference(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}
	state.RemoveShotReference(r.PathValue("shotId"))
	w.WriteHeader(http.StatusNoContent)
}

type generatePayload struct {
	Prompt string `json:"prompt"`
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}

	var payload generatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid generate payload"})
		return
	}

	settings := state.Settings()
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	if !s.acquireGeneration(ctx, w) {
		return
	}
	defer s.generationSem.Release(1)

	stats := settings.Stats
	url, err := state.Producer.Single(ctx, studio.SingleRequest{
		References:   state.References(),
		Module:       settings.Module,
		Stats:        &stats,
		AspectRatio:  settings.AspectRatio,
		Prompt:       payload.Prompt,
		SystemPrompt: settings.SystemPrompt,
	})
	if err != nil {
		s.writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{ImageURL: url})
}

type refinePayload struct {
	ImageURL string `json:"imageUrl"`
	Mask     string `json:"mask"`
	Prompt   string `json:"prompt"`
}

func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}

	var payload refinePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid refine payload"})
		return
	}
	if payload.ImageURL == "" || payload.Mask == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "imageUrl and mask are required"})
		return
	}

	_, mask, err := imaging.DecodeDataURL(payload.Mask)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid mask data URL"})
		return
	}

	settings := state.Settings()
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	if !s.acquireGeneration(ctx, w) {
		return
	}
	defer s.generationSem.Release(1)

	url, err := state.Producer.Refine(ctx, payload.ImageURL, mask, payload.Prompt, settings.Module)
	if err != nil {
		s.writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{ImageURL: url})
}

type batchPayload struct {
	ShotIDs []string `json:"shotIds"`
}

// handleBatch kicks off a batch run in the background and returns
// immediately; clients poll the results endpoint for progress.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}

	var payload batchPayload
	if err := decodeJSON(r, &payload); err != nil || len(payload.ShotIDs) == 0 {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "shotIds are required"})
		return
	}

	settings := state.Settings()
	refs := state.References()
	if !studio.HasBase(refs) {
		writeJSON(w, http.StatusBadRequest, apiError{Error: studio.ErrNoBaseModel.Error()})
		return
	}

	stats := settings.Stats
	req := studio.BatchRequest{
		SelectedIDs:  payload.ShotIDs,
		References:   refs,
		Module:       settings.Module,
		Stats:        &stats,
		SystemPrompt: settings.SystemPrompt,
		ShotRefs:     state.ShotReferences(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.requestTimeout*time.Duration(len(payload.ShotIDs)))
		defer cancel()

		if err := s.generationSem.Acquire(ctx, 1); err != nil {
			s.logger.Warn("batch run stopped", "session", state.ID, "error", err)
			return
		}
		defer s.generationSem.Release(1)

		if err := state.Producer.Batch(ctx, req); err != nil {
			s.logger.Warn("batch run stopped", "session", state.ID, "error", err)
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]any{"accepted": len(payload.ShotIDs)})
}

type resultsResponse struct {
	Results         map[string]studio.ShotResult `json:"results"`
	InProgress      bool                         `json:"inProgress"`
	ExhaustedModels []string                     `json:"exhaustedModels"`
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse{
		Results:         state.Producer.Results(),
		InProgress:      state.Producer.InProgress(),
		ExhaustedModels: state.Producer.ExhaustedModels(),
	})
}

func (s *Server) handleResetResults(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}
	state.Producer.ResetResults()
	w.WriteHeader(http.StatusNoContent)
}

type suggestionsPayload struct {
	Note string `json:"note"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	state, ok := s.session(w, r)
	if !ok {
		return
	}

	var payload suggestionsPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid suggestions payload"})
		return
	}

	settings := state.Settings()
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	if !s.acquireGeneration(ctx, w) {
		return
	}
	defer s.generationSem.Release(1)

	suggestions, err := state.Producer.Suggest(ctx, state.References(), settings.Module, payload.Note)
	if err != nil {
		s.writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

// readUpload reads one multipart file and normalizes it into a
// compressed reference image.
func readUpload(header *multipart.FileHeader) (reference.Image, error) {
	file, err := header.Open()
	if err != nil {
		return reference.Image{}, err
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return reference.Image{}, err
	}

	data, mime, err := imaging.Compress(raw)
	if err != nil {
		return reference.Image{}, err
	}
	return reference.Image{Data: data, MIME: mime}, nil
}
