package helpdesksdk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeAPI is an in-memory stand-in for the Rocket Help service.
type fakeAPI struct {
	t *testing.T

	mu         sync.Mutex
	calls      map[string]int
	orders     map[string]Order
	password   string
	user       User
	token      string
	signInGate chan struct{}
	failList   bool
	failClose  bool
	now        time.Time
}

func newFakeAPI(t *testing.T) (*fakeAPI, *Client) {
	t.Helper()
	f := &fakeAPI{
		t:        t,
		calls:    map[string]int{},
		orders:   map[string]Order{},
		password: "secret",
		user:     User{ID: "u-1", Email: "tech@example.com", Name: "Tech"},
		token:    "jwt-1",
		now:      time.Date(2022, 7, 18, 13, 0, 0, 0, time.UTC),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/session", f.signIn)
	mux.HandleFunc("GET /v1/session", f.authed(f.currentSession))
	mux.HandleFunc("DELETE /v1/session", f.authed(f.signOut))
	mux.HandleFunc("GET /v1/orders", f.authed(f.listOrders))
	mux.HandleFunc("POST /v1/orders", f.authed(f.createOrder))
	mux.HandleFunc("GET /v1/orders/{id}", f.authed(f.getOrder))
	mux.HandleFunc("PATCH /v1/orders/{id}/close", f.authed(f.closeOrder))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, New(srv.URL)
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) hit(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeAPI) set(fn func(f *fakeAPI)) {
	f.mu.Lock()
	fn(f)
	f.mu.Unlock()
}

func (f *fakeAPI) put(o Order) {
	f.mu.Lock()
	f.orders[o.ID] = o
	f.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"code": code, "message": code})
}

func (f *fakeAPI) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		ok := f.token != "" && r.Header.Get("Authorization") == "Bearer "+f.token
		f.mu.Unlock()
		if !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED")
			return
		}
		next(w, r)
	}
}

func (f *fakeAPI) signIn(w http.ResponseWriter, r *http.Request) {
	f.hit("signIn")
	f.mu.Lock()
	gate := f.signInGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	var body struct{ Email, Password string }
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST")
		return
	}
	switch {
	case body.Email == "" || body.Password == "":
		writeError(w, http.StatusBadRequest, "MISSING_CREDENTIALS")
	case !strings.Contains(body.Email, "@"):
		writeError(w, http.StatusBadRequest, "INVALID_EMAIL")
	case body.Email == "boom@example.com":
		writeError(w, http.StatusInternalServerError, "SIGN_IN_FAILED")
	case body.Email != f.user.Email, body.Password != f.password:
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	default:
		writeJSON(w, http.StatusCreated, SignInResult{Token: f.token, ExpiresAt: f.now.Add(time.Hour), User: f.user})
	}
}

func (f *fakeAPI) currentSession(w http.ResponseWriter, _ *http.Request) {
	f.hit("currentSession")
	writeJSON(w, http.StatusOK, SessionInfo{User: f.user, ExpiresAt: f.now.Add(time.Hour)})
}

func (f *fakeAPI) signOut(w http.ResponseWriter, _ *http.Request) {
	f.hit("signOut")
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeAPI) listOrders(w http.ResponseWriter, r *http.Request) {
	f.hit("listOrders")
	f.mu.Lock()
	fail := f.failList
	f.mu.Unlock()
	if fail {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
		return
	}
	status := Status(r.URL.Query().Get("status"))
	f.mu.Lock()
	out := []Order{}
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (f *fakeAPI) createOrder(w http.ResponseWriter, r *http.Request) {
	f.hit("createOrder")
	var body struct{ Patrimony, Description string }
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Patrimony == "" || body.Description == "" {
		writeError(w, http.StatusBadRequest, "INVALID_ORDER_INPUT")
		return
	}
	o := Order{ID: "new-1", Patrimony: body.Patrimony, Description: body.Description, Status: StatusOpen, CreatedAt: f.now}
	f.put(o)
	writeJSON(w, http.StatusCreated, o)
}

func (f *fakeAPI) getOrder(w http.ResponseWriter, r *http.Request) {
	f.hit("getOrder")
	f.mu.Lock()
	o, ok := f.orders[r.PathValue("id")]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "ORDER_NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (f *fakeAPI) closeOrder(w http.ResponseWriter, r *http.Request) {
	f.hit("closeOrder")
	f.mu.Lock()
	fail := f.failClose
	f.mu.Unlock()
	if fail {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
		return
	}
	var body struct{ Solution string }
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Solution) == "" {
		writeError(w, http.StatusBadRequest, "SOLUTION_REQUIRED")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[r.PathValue("id")]
	switch {
	case !ok:
		writeError(w, http.StatusNotFound, "ORDER_NOT_FOUND")
	case o.Status == StatusClosed:
		writeError(w, http.StatusConflict, "ORDER_ALREADY_CLOSED")
	default:
		closedAt := f.now.Add(2 * time.Hour)
		o.Status = StatusClosed
		o.Solution = body.Solution
		o.ClosedAt = &closedAt
		f.orders[o.ID] = o
		writeJSON(w, http.StatusOK, o)
	}
}

// alerts records Notifier calls.
type alerts struct {
	mu   sync.Mutex
	msgs []string
}

func (a *alerts) Alert(_, message string) {
	a.mu.Lock()
	a.msgs = append(a.msgs, message)
	a.mu.Unlock()
}

func (a *alerts) last() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.msgs) == 0 {
		return ""
	}
	return a.msgs[len(a.msgs)-1]
}
