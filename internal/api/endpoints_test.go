package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreatePaste(t *testing.T) {
	var received map[string]json.RawMessage
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/pastes" {
			t.Errorf("request = %s %s, want POST /api/pastes", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{"id":"abc123","deleteToken":"del-tok"}`))
	}))

	views := 5
	resp, err := client.CreatePaste(context.Background(), &CreatePasteRequest{
		CT: "Y2lwaGVydGV4dA",
		IV: "aXZpdml2aXZpdg",
		Meta: PasteMeta{
			ExpireTs:     1700000000,
			SingleView:   true,
			ViewsAllowed: &views,
			Mime:         "text/plain",
		},
		Pow: &PowSolution{Challenge: "chal", Nonce: 42},
	})
	if err != nil {
		t.Fatalf("CreatePaste() error = %v", err)
	}

	if resp.ID != "abc123" || resp.DeleteToken != "del-tok" {
		t.Errorf("response = %+v", resp)
	}

	for _, field := range []string{"ct", "iv", "meta", "pow"} {
		if _, ok := received[field]; !ok {
			t.Errorf("request body missing %q field", field)
		}
	}

	var pow PowSolution
	if err := json.Unmarshal(received["pow"], &pow); err != nil {
		t.Fatalf("unmarshal pow: %v", err)
	}
	if pow.Challenge != "chal" || pow.Nonce != 42 {
		t.Errorf("pow = %+v, want {chal 42}", pow)
	}
}

func TestCreatePaste_NilPowSerializesAsNull(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if string(body["pow"]) != "null" {
			t.Errorf("pow field = %s, want null", body["pow"])
		}
		w.Write([]byte(`{"id":"abc123","deleteToken":"del-tok"}`))
	}))

	if _, err := client.CreatePaste(context.Background(), &CreatePasteRequest{
		CT: "Y3Q", IV: "aXY", Pow: nil,
	}); err != nil {
		t.Fatalf("CreatePaste() error = %v", err)
	}
}

func TestGetPaste(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/pastes/abc123" {
			t.Errorf("request = %s %s, want GET /api/pastes/abc123", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"ct":"Y3Q","iv":"aXY","meta":{"expireTs":1700000000,"singleView":false,"viewsAllowed":null,"mime":"text/plain"},"viewsLeft":3}`))
	}))

	resp, err := client.GetPaste(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GetPaste() error = %v", err)
	}

	if resp.CT != "Y3Q" || resp.IV != "aXY" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Meta.Mime != "text/plain" {
		t.Errorf("Meta.Mime = %q, want text/plain", resp.Meta.Mime)
	}
	if resp.Meta.ViewsAllowed != nil {
		t.Errorf("Meta.ViewsAllowed = %v, want nil", *resp.Meta.ViewsAllowed)
	}
	if resp.ViewsLeft == nil || *resp.ViewsLeft != 3 {
		t.Errorf("ViewsLeft = %v, want 3", resp.ViewsLeft)
	}
}

func TestGetPaste_EscapesID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/pastes/a%2Fb" {
			t.Errorf("path = %q, want /api/pastes/a%%2Fb", r.URL.EscapedPath())
		}
		w.Write([]byte(`{"ct":"","iv":""}`))
	}))

	if _, err := client.GetPaste(context.Background(), "a/b"); err != nil {
		t.Fatalf("GetPaste() error = %v", err)
	}
}

func TestDeletePaste(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/pastes/abc123" {
			t.Errorf("request = %s %s, want DELETE /api/pastes/abc123", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("token"); got != "del tok" {
			t.Errorf("token = %q, want %q", got, "del tok")
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.DeletePaste(context.Background(), "abc123", "del tok"); err != nil {
		t.Fatalf("DeletePaste() error = %v", err)
	}
}

func TestGetPowChallenge(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/pow" {
			t.Errorf("request = %s %s, want GET /api/pow", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"challenge":"chal-string","difficulty":12}`))
	}))

	challenge, err := client.GetPowChallenge(context.Background())
	if err != nil {
		t.Fatalf("GetPowChallenge() error = %v", err)
	}

	if challenge == nil {
		t.Fatal("GetPowChallenge() = nil, want challenge")
	}
	if challenge.Challenge != "chal-string" || challenge.Difficulty != 12 {
		t.Errorf("challenge = %+v, want {chal-string 12}", challenge)
	}
}

func TestGetPowChallenge_DisabledIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	challenge, err := client.GetPowChallenge(context.Background())
	if err != nil {
		t.Fatalf("GetPowChallenge() error = %v, want nil for 204", err)
	}
	if challenge != nil {
		t.Errorf("GetPowChallenge() = %+v, want nil for 204", challenge)
	}
}

func TestEndpoints_ErrorResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"paste not found","request_id":"req-1"}`))
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.GetPaste(context.Background(), "missing")
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "paste not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "paste not found")
	}
	if apiErr.RequestID != "req-1" {
		t.Errorf("RequestID = %q, want req-1", apiErr.RequestID)
	}
}
