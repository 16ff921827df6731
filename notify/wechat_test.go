package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWechatNotifier_ServerChan(t *testing.T) {
	var gotPath string
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{"code":0}`))
	}))
	defer srv.Close()

	n := NewServerChanNotifier("SCT123KEY")
	n.BaseURL = srv.URL

	if _, err := n.SendCard(context.Background(), "Build failed", "exit code 1", ColorCritical, nil); err != nil {
		t.Fatalf("SendCard() error = %v", err)
	}

	// ServerChan keys the endpoint by the secret in the URL path
	if gotPath != "/SCT123KEY.send" {
		t.Errorf("path = %q, want /SCT123KEY.send", gotPath)
	}
	if got["title"] != "Build failed" {
		t.Errorf("title = %v", got["title"])
	}
	if got["desp"] != "exit code 1" {
		t.Errorf("desp = %v (color must be ignored, content unchanged)", got["desp"])
	}
	if _, present := got["token"]; present {
		t.Error("serverchan body should not carry a token field")
	}
}

func TestWechatNotifier_PushPlus(t *testing.T) {
	var gotPath string
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{"code":200}`))
	}))
	defer srv.Close()

	n := NewPushPlusNotifier("tok-42")
	n.BaseURL = srv.URL

	if _, err := n.SendCard(context.Background(), "Build failed", "exit code 1", ColorCritical, nil); err != nil {
		t.Fatalf("SendCard() error = %v", err)
	}

	if gotPath != "/send" {
		t.Errorf("path = %q, want /send", gotPath)
	}
	if got["token"] != "tok-42" {
		t.Errorf("token = %v, want tok-42", got["token"])
	}
	if got["template"] != "markdown" {
		t.Errorf("template = %v, want markdown", got["template"])
	}
	if got["content"] != "exit code 1" {
		t.Errorf("content = %v", got["content"])
	}
}

func TestWechatNotifier_SendText_PushPlus(t *testing.T) {
	var got map[string]any
	srv := captureServer(t, &got)
	defer srv.Close()

	n := NewPushPlusNotifier("tok-42")
	n.BaseURL = strings.TrimSuffix(srv.URL, "/")

	if _, err := n.SendText(context.Background(), "plain"); err != nil {
		t.Fatalf("SendText() error = %v", err)
	}
	if got["template"] != "txt" {
		t.Errorf("template = %v, want txt", got["template"])
	}
	if got["content"] != "plain" {
		t.Errorf("content = %v", got["content"])
	}
}

func TestWechatNotifier_ActionsAppended(t *testing.T) {
	var got map[string]any
	srv := captureServer(t, &got)
	defer srv.Close()

	n := NewServerChanNotifier("key")
	n.BaseURL = srv.URL

	actions := []Action{
		{Text: "View build", URL: "https://ci.example.com/42"},
		{Text: "Logs", URL: "https://ci.example.com/42/log"},
	}
	if _, err := n.SendCard(context.Background(), "t", "body", ColorInfo, actions); err != nil {
		t.Fatalf("SendCard() error = %v", err)
	}

	desp, _ := got["desp"].(string)
	want := "body\n\n---\n[View build](https://ci.example.com/42)\n[Logs](https://ci.example.com/42/log)\n"
	if desp != want {
		t.Errorf("desp = %q, want %q", desp, want)
	}
}
