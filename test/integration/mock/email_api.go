package mock

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// EmailRequest is one delivery received by EmailAPI.
type EmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// EmailAPI is a stand-in for the Resend HTTP API. It records every POST
// /emails and answers with a provider id, or with a configured error status.
type EmailAPI struct {
	mu         sync.Mutex
	server     *httptest.Server
	received   []EmailRequest
	failStatus int
}

func NewEmailAPI() *EmailAPI {
	a := &EmailAPI{}
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
	return a
}

func (a *EmailAPI) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/emails" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	body, _ := io.ReadAll(r.Body)
	var request EmailRequest
	if err := json.Unmarshal(body, &request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if a.failStatus != 0 {
		w.WriteHeader(a.failStatus)
		_, _ = fmt.Fprintf(w, `{"statusCode":%d,"name":"mock_error","message":"mock failure"}`, a.failStatus)
		return
	}

	a.received = append(a.received, request)
	_, _ = fmt.Fprintf(w, `{"id":"email-%d"}`, len(a.received))
}

func (a *EmailAPI) GetUrl() string {
	return a.server.URL
}

// Received returns a copy of the recorded deliveries.
func (a *EmailAPI) Received() []EmailRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]EmailRequest(nil), a.received...)
}

// FailWith makes every following delivery answer with status. Zero restores
// successful deliveries.
func (a *EmailAPI) FailWith(status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failStatus = status
}

func (a *EmailAPI) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.received = nil
	a.failStatus = 0
}

func (a *EmailAPI) Close() {
	a.server.Close()
}
