package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-shot-studio/internal/genclient"
	"fashion-shot-studio/internal/reference"
	"fashion-shot-studio/internal/shoot"
	"fashion-shot-studio/internal/studio"
	"fashion-shot-studio/internal/workflow"
)

type fakeGenerator struct {
	generate func(genclient.GenerateRequest) (string, error)
}

func (f *fakeGenerator) Generate(_ context.Context, req genclient.GenerateRequest) (string, error) {
	if f.generate != nil {
		return f.generate(req)
	}
	return "data:image/png;base64,QUJD", nil
}

func (f *fakeGenerator) StrategySuggestions(context.Context, reference.Image, shoot.Module, string) ([]genclient.Suggestion, error) {
	return []genclient.Suggestion{{Title: "Pure White", Prompt: "high key"}}, nil
}

func newTestServer(t *testing.T, fake *fakeGenerator) (*httptest.Server, *workflow.Store) {
	t.Helper()
	sessions := workflow.NewStore(workflow.StoreOptions{
		NewProducer: func() *studio.Producer {
			return studio.New(studio.Options{Client: fake})
		},
	})
	api := New(Options{Sessions: sessions, RequestTimeout: 5 * time.Second})
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)
	return srv, sessions
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createSession(t *testing.T, srv *httptest.Server) string {
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[sessionResponse](t, resp)
	require.NotEmpty(t, created.SessionID)
	return created.SessionID
}

func uploadReference(t *testing.T, srv *httptest.Server, sessionID string, purpose reference.Purpose) []referenceView {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("images", "ref.png")
	require.NoError(t, err)
	_, err = fw.Write(pngBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("purpose", string(purpose)))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/sessions/"+sessionID+"/references", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[[]referenceView](t, resp)
}

func TestSessionLifecycle(t *testing.T) {
	srv, sessions := newTestServer(t, &fakeGenerator{})

	id := createSession(t, srv)
	assert.Equal(t, 1, sessions.Len())

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/sessions/"+id+"/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	settings := decodeBody[workflow.Settings](t, resp)
	assert.Equal(t, shoot.ModuleLookbook, settings.Module)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/sessions/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, 0, sessions.Len())

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/sessions/"+id+"/settings", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPatchSettings(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGenerator{})
	id := createSession(t, srv)

	resp := doJSON(t, http.MethodPatch, srv.URL+"/api/sessions/"+id+"/settings", map[string]any{
		"module":      "campaign",
		"aspectRatio": "3:4",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	settings := decodeBody[workflow.Settings](t, resp)
	assert.Equal(t, shoot.ModuleCampaign, settings.Module)
	assert.Equal(t, "3:4", settings.AspectRatio)
}

func TestReferenceUploadAndList(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGenerator{})
	id := createSession(t, srv)

	views := uploadReference(t, srv, id, reference.PurposeBaseModel)
	require.Len(t, views, 1)
	assert.Equal(t, reference.PurposeBaseModel, views[0].Purpose)
	assert.Equal(t, "Main Subject", views[0].Label)
	assert.False(t, views[0].HasMask)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/sessions/"+id+"/references", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := decodeBody[[]referenceView](t, resp)
	require.Len(t, listed, 1)
	assert.Equal(t, views[0].ID, listed[0].ID)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/sessions/"+id+"/references/"+views[0].ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestListShots(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGenerator{})
	id := createSession(t, srv)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/sessions/"+id+"/shots", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	shots := decodeBody[[]shoot.ShotDefinition](t, resp)
	require.NotEmpty(t, shots)
	assert.Equal(t, "s_full_front", shots[0].ID)
}

func TestGenerate(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGenerator{})
	id := createSession(t, srv)
	uploadReference(t, srv, id, reference.PurposeBaseModel)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/sessions/"+id+"/generate", generatePayload{Prompt: "note"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[imageResponse](t, resp)
	assert.Equal(t, "data:image/png;base64,QUJD", out.ImageURL)
}

func TestGenerate_WithoutBaseModelFails(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGenerator{})
	id := createSession(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/sessions/"+id+"/generate", generatePayload{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGenerate_ErrorMapping(t *testing.T) {
	cases := []struct {
		kind   genclient.Kind
		status int
	}{
		{genclient.KindQuotaExceeded, http.StatusTooManyRequests},
		{genclient.KindServiceUnavailable, http.StatusServiceUnavailable},
		{genclient.KindContentPolicyBlocked, http.StatusUnprocessableEntity},
		{genclient.KindMalformedInput, http.StatusBadRequest},
		{genclient.KindNoImageProduced, http.StatusBadGateway},
	}

	for _, tc := range cases {
		fake := &fakeGenerator{generate: func(genclient.GenerateRequest) (string, error) {
			return "", &genclient.Error{Kind: tc.kind, Message: "nope"}
		}}
		srv, _ := newTestServer(t, fake)
		id := createSession(t, srv)
		uploadReference(t, srv, id, reference.PurposeBaseModel)

		resp := doJSON(t, http.MethodPost, srv.URL+"/api/sessions/"+id+"/generate", generatePayload{})
		assert.Equal(t, tc.status, resp.StatusCode, "kind %s", tc.kind)
		resp.Body.Close()
	}
}

func TestBatchAndResults(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGenerator{})
	id := createSession(t, srv)
	uploadReference(t, srv, id, reference.PurposeBaseModel)

	resp := doJSON(t, http.MethodPatch, srv.URL+"/api/sessions/"+id+"/settings", map[string]any{"module": "campaign"})
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/sessions/"+id+"/batch", batchPayload{ShotIDs: []string{"campaign_hero"}})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	deadline := time.Now().Add(3 * time.Second)
	for {
		resp = doJSON(t, http.MethodGet, srv.URL+"/api/sessions/"+id+"/results", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		results := decodeBody[resultsResponse](t, resp)
		if r, ok := results.Results["campaign_hero"]; ok && r.Status == studio.StatusSuccess {
			assert.NotEmpty(t, r.ImageURL)
			break
		}
		require.True(t, time.Now().Before(deadline), "batch did not finish in time")
		time.Sleep(20 * time.Millisecond)
	}
}

func TestSuggestions(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGenerator{})
	id := createSession(t, srv)
	uploadReference(t, srv, id, reference.PurposeBaseModel)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/sessions/"+id+"/suggestions", suggestionsPayload{Note: "warm"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	suggestions := decodeBody[[]genclient.Suggestion](t, resp)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Pure White", suggestions[0].Title)
}

func TestBatch_WithoutBaseModelFails(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGenerator{})
	id := createSession(t, srv)
	uploadReference(t, srv, id, reference.PurposeClothingGarment)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/sessions/"+id+"/batch", batchPayload{ShotIDs: []string{"s_full_front"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/sessions/"+id+"/results", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	results := decodeBody[resultsResponse](t, resp)
	assert.Empty(t, results.Results)
	assert.False(t, results.InProgress)
}

func TestGenerate_InvalidAspectRatioIsBadRequest(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGenerator{})
	id := createSession(t, srv)
	uploadReference(t, srv, id, reference.PurposeBaseModel)

	resp := doJSON(t, http.MethodPatch, srv.URL+"/api/sessions/"+id+"/settings", map[string]any{"aspectRatio": "sideways"})
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/sessions/"+id+"/generate", generatePayload{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGenerate_ConcurrencyIsBounded(t *testing.T) {
	var mu sync.Mutex
	active, maxActive := 0, 0
	fake := &fakeGenerator{generate: func(genclient.GenerateRequest) (string, error) {
		mu.Lock()
		active++
		if active > maxActive {
			maxActive = active
		}
		mu.Unlock()

		time.Sleep(30 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
		return "data:image/png;base64,QUJD", nil
	}}

	sessions := workflow.NewStore(workflow.StoreOptions{
		NewProducer: func() *studio.Producer {
			return studio.New(studio.Options{Client: fake})
		},
	})
	api := New(Options{Sessions: sessions, RequestTimeout: 5 * time.Second, MaxConcurrent: 1})
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	id := createSession(t, srv)
	uploadReference(t, srv, id, reference.PurposeBaseModel)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := doJSON(t, http.MethodPost, srv.URL+"/api/sessions/"+id+"/generate", generatePayload{})
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			resp.Body.Close()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, maxActive)
}
