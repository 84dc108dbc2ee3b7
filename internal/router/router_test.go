package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"animal-training-api/internal/adapters/auth/jwtauth"
	"animal-training-api/internal/ports/auth"
	"animal-training-api/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newServer(t *testing.T, opts ...jwtauth.Option) *httptest.Server {
	t.Helper()

	tokens, err := jwtauth.New(testSecret, opts...)
	require.NoError(t, err)

	ts := httptest.NewServer(router.NewRouter(router.Options{Tokens: tokens}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_TrainingOwnership(t *testing.T) {
	ts := newServer(t)

	// 1) A se registra y obtiene token
	registerUser(t, ts.URL, "a@example.com", "pw-a")
	tokenA := verifyUser(t, ts.URL, "a@example.com", "pw-a")

	// 2) A crea a Rex
	rexID := createAnimal(t, ts.URL, tokenA, "Rex")

	// 3) A registra 2 horas con Rex
	{
		st, body := doReq(t, ts.URL, "POST", "/api/training", tokenA, map[string]any{
			"animalId":    rexID,
			"description": "recall practice",
			"hours":       2,
		})
		require.Equal(t, http.StatusOK, st, string(body))

		var log struct {
			ID     string  `json:"_id"`
			Animal string  `json:"animal"`
			User   string  `json:"user"`
			Hours  float64 `json:"hours"`
			Date   string  `json:"date"`
		}
		require.NoError(t, json.Unmarshal(body, &log))
		assert.NotEmpty(t, log.ID)
		assert.Equal(t, rexID, log.Animal)
		assert.Equal(t, 2.0, log.Hours)
		assert.NotEmpty(t, log.Date)
	}

	// 4) El listado de admin incluye a Rex
	{
		st, body := doReq(t, ts.URL, "GET", "/api/admin/animals", "", nil)
		require.Equal(t, http.StatusOK, st)

		var page struct {
			Animals []struct {
				ID    string `json:"_id"`
				Name  string `json:"name"`
				Owner string `json:"owner"`
			} `json:"animals"`
		}
		require.NoError(t, json.Unmarshal(body, &page))
		require.Len(t, page.Animals, 1)
		assert.Equal(t, "Rex", page.Animals[0].Name)
		assert.Equal(t, rexID, page.Animals[0].ID)
	}

	// 5) B no puede registrar sesiones de Rex
	registerUser(t, ts.URL, "b@example.com", "pw-b")
	tokenB := verifyUser(t, ts.URL, "b@example.com", "pw-b")
	{
		st, body := doReq(t, ts.URL, "POST", "/api/training", tokenB, map[string]any{
			"animalId":    rexID,
			"description": "not my dog",
			"hours":       1,
		})
		assert.Equal(t, http.StatusBadRequest, st)
		assert.JSONEq(t, `{"error":"This animal does not belong to the specified user."}`, string(body))
	}

	// 6) La sesión de A quedó en el listado de training y la de B no
	{
		st, body := doReq(t, ts.URL, "GET", "/api/admin/training", "", nil)
		require.Equal(t, http.StatusOK, st)

		var page struct {
			TrainingLogs []map[string]any `json:"trainingLogs"`
			TotalPages   int              `json:"totalPages"`
		}
		require.NoError(t, json.Unmarshal(body, &page))
		assert.Len(t, page.TrainingLogs, 1)
		assert.Equal(t, 1, page.TotalPages)
	}
}

func TestHTTP_Register_MissingFieldAlways400(t *testing.T) {
	ts := newServer(t)

	full := map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "pw",
	}
	for field := range full {
		payload := map[string]any{}
		for k, v := range full {
			if k != field {
				payload[k] = v
			}
		}
		st, body := doReq(t, ts.URL, "POST", "/api/user", "", payload)
		assert.Equal(t, http.StatusBadRequest, st, "missing %s", field)
		assert.JSONEq(t, `{"error":"All fields are required."}`, string(body))
	}

	st, _ := doRaw(t, ts.URL, "POST", "/api/user", "", "{broken")
	assert.Equal(t, http.StatusBadRequest, st)
}

func TestHTTP_Register_ReturnsHashNotPlaintext(t *testing.T) {
	ts := newServer(t)

	body := registerUser(t, ts.URL, "ada@example.com", "plain-pw")

	var u map[string]any
	require.NoError(t, json.Unmarshal(body, &u))
	hash, _ := u["password"].(string)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "plain-pw", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("plain-pw")))
	assert.NotEmpty(t, u["_id"])

	// El listado de admin no expone password.
	st, list := doReq(t, ts.URL, "GET", "/api/admin/users", "", nil)
	require.Equal(t, http.StatusOK, st)
	assert.NotContains(t, string(list), "password")
	assert.Contains(t, string(list), "ada@example.com")
}

func TestHTTP_Register_DuplicateEmailFails(t *testing.T) {
	ts := newServer(t)

	registerUser(t, ts.URL, "dup@example.com", "pw")

	st, body := doReq(t, ts.URL, "POST", "/api/user", "", map[string]any{
		"firstName": "Other",
		"lastName":  "Person",
		"email":     "dup@example.com",
		"password":  "pw2",
	})
	assert.Equal(t, http.StatusInternalServerError, st)
	assert.JSONEq(t, `{"error":"Server error."}`, string(body))
}

func TestHTTP_Login(t *testing.T) {
	ts := newServer(t)
	registerUser(t, ts.URL, "ada@example.com", "pw")

	cases := []struct {
		name       string
		payload    map[string]any
		wantStatus int
		wantBody   string
	}{
		{"ok", map[string]any{"email": "ada@example.com", "password": "pw"}, http.StatusOK, `{"message":"Login successful"}`},
		{"wrong password", map[string]any{"email": "ada@example.com", "password": "nope"}, http.StatusForbidden, `{"error":"Invalid email or password."}`},
		{"unknown email", map[string]any{"email": "who@example.com", "password": "pw"}, http.StatusForbidden, `{"error":"Invalid email or password."}`},
		{"missing password", map[string]any{"email": "ada@example.com"}, http.StatusBadRequest, `{"error":"Email and password are required."}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "POST", "/api/user/login", "", c.payload)
			assert.Equal(t, c.wantStatus, st)
			assert.JSONEq(t, c.wantBody, string(body))
		})
	}
}

func TestHTTP_Verify_BadCredentials(t *testing.T) {
	ts := newServer(t)
	registerUser(t, ts.URL, "ada@example.com", "pw")

	st, body := doReq(t, ts.URL, "POST", "/api/user/verify", "", map[string]any{"email": "ada@example.com", "password": "nope"})
	assert.Equal(t, http.StatusForbidden, st)
	assert.JSONEq(t, `{"error":"Invalid email or password."}`, string(body))

	st, _ = doReq(t, ts.URL, "POST", "/api/user/verify", "", map[string]any{"password": "pw"})
	assert.Equal(t, http.StatusBadRequest, st)
}

func TestHTTP_ProtectedRoutes_TokenChecks(t *testing.T) {
	ts := newServer(t)

	registerUser(t, ts.URL, "a@example.com", "pw-a")
	registerUser(t, ts.URL, "b@example.com", "pw-b")
	tokenA := verifyUser(t, ts.URL, "a@example.com", "pw-a")
	tokenB := verifyUser(t, ts.URL, "b@example.com", "pw-b")

	animal := map[string]any{"name": "Rex", "species": "dog", "dateOfBirth": "2020-05-17"}

	// sin token
	st, body := doReq(t, ts.URL, "POST", "/api/animal", "", animal)
	assert.Equal(t, http.StatusUnauthorized, st)
	assert.JSONEq(t, `{"error":"Access denied, token missing."}`, string(body))

	// payload de B con la firma de A
	pa := strings.Split(tokenA, ".")
	pb := strings.Split(tokenB, ".")
	tampered := pa[0] + "." + pb[1] + "." + pa[2]
	st, body = doReq(t, ts.URL, "POST", "/api/animal", tampered, animal)
	assert.Equal(t, http.StatusForbidden, st)
	assert.JSONEq(t, `{"error":"Invalid token."}`, string(body))

	// firmado con otro secreto
	other, err := jwtauth.New("other-secret")
	require.NoError(t, err)
	forged, err := other.Issue(mustClaimsFromToken(t, ts.URL, "a@example.com", "pw-a"))
	require.NoError(t, err)
	st, _ = doReq(t, ts.URL, "POST", "/api/training", forged, map[string]any{"animalId": "x", "description": "y", "hours": 1})
	assert.Equal(t, http.StatusForbidden, st)

	// token válido
	st, _ = doReq(t, ts.URL, "POST", "/api/animal", tokenA, animal)
	assert.Equal(t, http.StatusOK, st)
}

func TestHTTP_ExpiredTokenRejected(t *testing.T) {
	var skew atomic.Int64
	ts := newServer(t, jwtauth.WithClock(func() time.Time {
		return time.Now().Add(time.Duration(skew.Load()))
	}))

	registerUser(t, ts.URL, "a@example.com", "pw")
	token := verifyUser(t, ts.URL, "a@example.com", "pw")

	skew.Store(int64(2 * time.Hour))

	st, body := doReq(t, ts.URL, "POST", "/api/animal", token, map[string]any{
		"name": "Rex", "species": "dog", "dateOfBirth": "2020-05-17",
	})
	assert.Equal(t, http.StatusForbidden, st)
	assert.JSONEq(t, `{"error":"Invalid token."}`, string(body))
}

func TestHTTP_CreateAnimal(t *testing.T) {
	ts := newServer(t)
	registerUser(t, ts.URL, "a@example.com", "pw")
	token := verifyUser(t, ts.URL, "a@example.com", "pw")

	st, body := doReq(t, ts.URL, "POST", "/api/animal", token, map[string]any{
		"name":        "Rex",
		"species":     "dog",
		"dateOfBirth": "2020-05-17",
		"owner":       "someone-else",
	})
	require.Equal(t, http.StatusOK, st, string(body))

	var a map[string]any
	require.NoError(t, json.Unmarshal(body, &a))
	assert.Equal(t, "Rex", a["name"])
	assert.Equal(t, 0.0, a["hoursTrained"])
	assert.Equal(t, "2020-05-17T00:00:00Z", a["dateOfBirth"])
	assert.NotEqual(t, "someone-else", a["owner"])
	assert.NotContains(t, a, "species")

	for _, missing := range []string{"name", "species", "dateOfBirth"} {
		payload := map[string]any{"name": "Rex", "species": "dog", "dateOfBirth": "2020-05-17"}
		delete(payload, missing)
		st, body := doReq(t, ts.URL, "POST", "/api/animal", token, payload)
		assert.Equal(t, http.StatusBadRequest, st, "missing %s", missing)
		assert.JSONEq(t, `{"error":"All fields are required."}`, string(body))
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/animal", token, map[string]any{"name": "Rex", "species": "dog", "dateOfBirth": "yesterday"})
	assert.Equal(t, http.StatusBadRequest, st)
}

func TestHTTP_CreateTraining_Validation(t *testing.T) {
	ts := newServer(t)
	registerUser(t, ts.URL, "a@example.com", "pw")
	token := verifyUser(t, ts.URL, "a@example.com", "pw")
	rexID := createAnimal(t, ts.URL, token, "Rex")

	st, body := doReq(t, ts.URL, "POST", "/api/training", token, map[string]any{
		"animalId": "does-not-exist", "description": "x", "hours": 1,
	})
	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"error":"Animal not found."}`, string(body))

	// hours = 0 cuenta como faltante
	st, body = doReq(t, ts.URL, "POST", "/api/training", token, map[string]any{
		"animalId": rexID, "description": "x", "hours": 0,
	})
	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"error":"All fields are required."}`, string(body))

	st, _ = doReq(t, ts.URL, "POST", "/api/training", token, map[string]any{
		"animalId": rexID, "hours": 1,
	})
	assert.Equal(t, http.StatusBadRequest, st)
}

func TestHTTP_AdminPagination(t *testing.T) {
	ts := newServer(t)
	registerUser(t, ts.URL, "a@example.com", "pw")
	token := verifyUser(t, ts.URL, "a@example.com", "pw")

	const n = 5
	for i := 0; i < n; i++ {
		createAnimal(t, ts.URL, token, fmt.Sprintf("pet-%d", i))
	}

	type page struct {
		Animals     []map[string]any `json:"animals"`
		TotalPages  int              `json:"totalPages"`
		CurrentPage any              `json:"currentPage"`
	}
	get := func(query string) page {
		st, body := doReq(t, ts.URL, "GET", "/api/admin/animals"+query, "", nil)
		require.Equal(t, http.StatusOK, st)
		var p page
		require.NoError(t, json.Unmarshal(body, &p))
		return p
	}

	p := get("")
	assert.Len(t, p.Animals, n)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 1.0, p.CurrentPage)

	p = get("?page=2&limit=2")
	assert.Len(t, p.Animals, 2)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, "2", p.CurrentPage)
	assert.Equal(t, "pet-2", p.Animals[0]["name"])

	p = get("?page=3&limit=2")
	assert.Len(t, p.Animals, 1)

	// más allá de la última página: lista vacía, 200
	p = get("?page=9&limit=2")
	assert.NotNil(t, p.Animals)
	assert.Empty(t, p.Animals)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, "9", p.CurrentPage)

	// page/limit que desbordan (page-1)*limit: también vacía con 200
	for _, q := range []string{
		"?page=4611686018427387904&limit=3",
		"?page=4611686018427387905&limit=4",
	} {
		p = get(q)
		assert.Empty(t, p.Animals, q)
	}

	// limit gigante: todo en una sola página
	p = get("?limit=9223372036854775807")
	assert.Len(t, p.Animals, n)
	assert.Equal(t, 1, p.TotalPages)

	// page no numérico se devuelve tal cual y se lista la primera página
	p = get("?page=abc&limit=2")
	assert.Equal(t, "abc", p.CurrentPage)
	assert.Len(t, p.Animals, 2)

	// colección vacía
	st, body := doReq(t, ts.URL, "GET", "/api/admin/training", "", nil)
	require.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `{"trainingLogs":[],"totalPages":0,"currentPage":1}`, string(body))
}

func TestHTTP_HealthRootAndExtras(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `{"healthy":true}`, string(body))

	st, body = doReq(t, ts.URL, "GET", "/", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `{"Hello":"World","Version":2}`, string(body))

	st, body = doReq(t, ts.URL, "GET", "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "animal_training_http_requests_total")

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "/api/training")
}

func TestHTTP_CORSReflectsOrigin(t *testing.T) {
	ts := newServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://trainer.example")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, "https://trainer.example", res.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
}

// -------------------------
// helpers
// -------------------------

func registerUser(t *testing.T, baseURL, email, password string) []byte {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/user", "", map[string]any{
		"firstName": "First",
		"lastName":  "Last",
		"email":     email,
		"password":  password,
	})
	require.Equal(t, http.StatusOK, st, "register: %s", string(body))
	return body
}

func verifyUser(t *testing.T, baseURL, email, password string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/user/verify", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, st, "verify: %s", string(body))

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func createAnimal(t *testing.T, baseURL, token, name string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/animal", token, map[string]any{
		"name":        name,
		"species":     "dog",
		"dateOfBirth": "2020-05-17",
	})
	require.Equal(t, http.StatusOK, st, "create animal: %s", string(body))

	var resp struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

// mustClaimsFromToken verifica el token real contra el secreto de test para
// reutilizar sus claims al falsificar uno con otro secreto.
func mustClaimsFromToken(t *testing.T, baseURL, email, password string) auth.Claims {
	t.Helper()

	m, err := jwtauth.New(testSecret)
	require.NoError(t, err)
	c, err := m.Verify(t.Context(), verifyUser(t, baseURL, email, password))
	require.NoError(t, err)
	return c
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var raw string
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		raw = string(b)
	}
	return doRaw(t, baseURL, method, path, token, raw)
}

func doRaw(t *testing.T, baseURL, method, path, token, raw string) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if raw != "" {
		rdr = bytes.NewReader([]byte(raw))
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	require.NoError(t, err)
	if raw != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, respBody
}
