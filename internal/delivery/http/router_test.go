package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"freelancercheckin/internal/delivery/http/controllers"
	"freelancercheckin/internal/delivery/http/helpers"
	"freelancercheckin/internal/domain"
	"freelancercheckin/internal/repository"
	"freelancercheckin/internal/repository/memory"
	"freelancercheckin/internal/services"
)

type staticGenerator string

func (g staticGenerator) Generate(ctx context.Context, facts domain.EventFacts) string {
	return string(g)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repository.NewSnapshotStore(memory.NewSlotRepository(), logger)
	board := services.NewBoardService(context.Background(), store, staticGenerator("Venha!"), nil, logger)
	router := NewRouter(
		controllers.NewEventController(logger, board),
		controllers.NewRegistrationController(logger, board),
	)
	srv := httptest.NewServer(NewHandler(router, logger, []string{"http://localhost:5173"}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string, data any) (int, *helpers.APIError) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	if data != nil && envelope.Data != nil {
		raw, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, data))
	}
	return resp.StatusCode, envelope.Error
}

func TestRouter_EventLifecycle(t *testing.T) {
	srv := newTestServer(t)

	var board []domain.EventSummary
	status, _ := doJSON(t, http.MethodGet, srv.URL+"/events", "", &board)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, board, 1)
	require.Equal(t, "demo-1", board[0].Event.ID)

	var created domain.Event
	status, _ = doJSON(t, http.MethodPost, srv.URL+"/events",
		`{"title":"Rock in Rio","date":"2025-09-13","location":"Estádio Mineirão","startTime":"12:00","endTime":"00:00","roles":[{"title":"Garçom","vacancies":2}]}`,
		&created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Venha!", created.Description)

	for _, name := range []string{"Bruna", "Ana", "Carlos"} {
		body := `{"fullName":"` + name + `","cpf":"1","rg":"2","phone":"3","address":"4","selectedRole":"Garçom"}`
		var receipt domain.RegistrationReceipt
		status, _ = doJSON(t, http.MethodPost, srv.URL+"/events/"+created.ID+"/registrations", body, &receipt)
		require.Equal(t, http.StatusCreated, status)
		require.Contains(t, receipt.Message, name+" foi inscrito(a) como Garçom.")
	}

	var roster domain.EventRoster
	status, _ = doJSON(t, http.MethodGet, srv.URL+"/events/"+created.ID+"/registrations", "", &roster)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 3, roster.Total)
	require.True(t, roster.Groups[0].Full)
	require.Equal(t, "Ana", roster.Groups[0].Registrations[0].FullName)

	status, apiErr := doJSON(t, http.MethodDelete, srv.URL+"/events/"+created.ID, "", nil)
	require.Equal(t, http.StatusPreconditionRequired, status)
	require.Equal(t, helpers.ErrCodeConfirmationRequired, apiErr.Code)

	status, _ = doJSON(t, http.MethodDelete, srv.URL+"/events/"+created.ID+"?confirm=true", "", nil)
	require.Equal(t, http.StatusNoContent, status)

	status, apiErr = doJSON(t, http.MethodGet, srv.URL+"/events/"+created.ID, "", nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, helpers.ErrCodeNotFound, apiErr.Code)

	var search controllers.SearchRegistrantsResponse
	status, _ = doJSON(t, http.MethodGet, srv.URL+"/registrations?q=gar%C3%A7om", "", &search)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 3, search.RegisteredTotal)
	require.Len(t, search.Items, 3)
	for _, row := range search.Items {
		require.Equal(t, domain.RemovedEventTitle, row.EventTitle)
	}
}

func TestRouter_RegisterForUnknownEvent(t *testing.T) {
	srv := newTestServer(t)
	body := `{"fullName":"Ana","cpf":"1","rg":"2","phone":"3","address":"4","selectedRole":"Bar"}`
	status, apiErr := doJSON(t, http.MethodPost, srv.URL+"/events/nope/registrations", body, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, helpers.ErrCodeNotFound, apiErr.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
