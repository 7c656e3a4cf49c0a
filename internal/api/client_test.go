package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matchllm/matchctl/internal/match"
	"github.com/matchllm/matchctl/internal/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := session.NewStore(filepath.Join(t.TempDir(), "session"))
	return NewClient(srv.URL, 5*time.Second, sess, nil), sess
}

func TestDo_injectsBearerOnlyWhenTokenPresent(t *testing.T) {
	var gotAuth string
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	if err := client.Do(context.Background(), http.MethodGet, "/produtos", nil, nil); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Errorf("no session: Authorization = %q, want empty", gotAuth)
	}

	if err := sess.Set("tok123"); err != nil {
		t.Fatal(err)
	}
	if err := client.Do(context.Background(), http.MethodGet, "/produtos", nil, nil); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", gotAuth)
	}
}

func TestDo_setsJSONContentType(t *testing.T) {
	var gotCT string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})
	if err := client.Do(context.Background(), http.MethodPost, "/auth/login", map[string]string{"email": "a@b.c"}, nil); err != nil {
		t.Fatal(err)
	}
	if gotCT != "application/json" {
		t.Errorf("Content-Type = %q", gotCT)
	}
}

func TestDo_errorDetailFromJSONBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Credenciais inválidas"}`))
	})
	err := client.Do(context.Background(), http.MethodPost, "/auth/login", map[string]string{}, nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *Error, got %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d", apiErr.Status)
	}
	if apiErr.Message != "Credenciais inválidas" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if _, ok := apiErr.Body.(map[string]interface{}); !ok {
		t.Errorf("body = %T, want parsed JSON object", apiErr.Body)
	}
}

func TestDo_errorFallsBackToRawTextThenGeneric(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	})
	err := client.Do(context.Background(), http.MethodGet, "/editais/ids", nil, nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *Error, got %v", err)
	}
	if apiErr.Message != "upstream unavailable" {
		t.Errorf("message = %q", apiErr.Message)
	}

	client, _ = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	err = client.Do(context.Background(), http.MethodGet, "/editais/ids", nil, nil)
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *Error, got %v", err)
	}
	if apiErr.Message != "Erro na API" {
		t.Errorf("empty-body message = %q, want generic fallback", apiErr.Message)
	}
}

func TestLogin_storesToken(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "jwt-abc", "token_type": "bearer"}`))
	})
	tok, err := client.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if tok.AccessToken != "jwt-abc" {
		t.Errorf("access_token = %q", tok.AccessToken)
	}
	if sess.Token() != "jwt-abc" {
		t.Errorf("session token = %q, want jwt-abc", sess.Token())
	}
}

func TestMatchMultiple_decodesResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req match.MatchMultipleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.EditalIDs) != 2 || req.Consulta != "switch 24 portas poe" {
			t.Errorf("unexpected request: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"consulta": "switch 24 portas poe",
			"results": [
				{"edital_id": 1, "resultado": [{"requisito": "PoE", "status": "ATENDE", "confidence": 0.9}]},
				{"edital_id": 2, "error": "índice não encontrado"}
			],
			"email_sent": true
		}`))
	})
	resp, err := client.MatchMultiple(context.Background(), match.MatchMultipleRequest{
		Produto:   match.Produto{Nome: "Switch 24p", Atributos: map[string]interface{}{"portas": 24}},
		EditalIDs: []int64{1, 2},
		Consulta:  "switch 24 portas poe",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("results = %d", len(resp.Results))
	}
	if len(resp.Results[0].Resultado) != 1 || resp.Results[0].Resultado[0].Requisito != "PoE" {
		t.Errorf("resultado = %+v", resp.Results[0].Resultado)
	}
	if resp.Results[1].Error == "" {
		t.Error("per-tender error should be populated")
	}
	if !resp.EmailSent {
		t.Error("email_sent should be true")
	}
}

func TestSendEmail_multipartAndLocalValidation(t *testing.T) {
	var gotFields map[string]string
	var gotFile []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotFields = map[string]string{
			"to_email":  r.FormValue("to_email"),
			"subject":   r.FormValue("subject"),
			"body_text": r.FormValue("body_text"),
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		gotFile, _ = io.ReadAll(f)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	})

	if err := client.SendEmail(context.Background(), "  ", "s", "b", "f.xlsx", []byte("x")); !errors.Is(err, ErrEmptyRecipient) {
		t.Errorf("blank recipient: err = %v, want ErrEmptyRecipient", err)
	}
	if gotFields != nil {
		t.Error("blank recipient must not reach the backend")
	}

	if err := client.SendEmail(context.Background(), "dest@empresa.com", "Assunto", "Corpo", "match.xlsx", []byte("payload")); err != nil {
		t.Fatal(err)
	}
	if gotFields["to_email"] != "dest@empresa.com" || gotFields["subject"] != "Assunto" {
		t.Errorf("fields = %v", gotFields)
	}
	if string(gotFile) != "payload" {
		t.Errorf("file = %q", gotFile)
	}
}

func TestUploadEdital_sendsFilePart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		_, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		if hdr.Filename != "edital.pdf" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("content type = %q", r.Header.Get("Content-Type"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "Edital processado com sucesso.", "edital_id": 42, "total_chunks": 7}`))
	})
	resp, err := client.UploadEdital(context.Background(), "edital.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.EditalID != 42 || resp.TotalChunks != 7 {
		t.Errorf("resp = %+v", resp)
	}
}
