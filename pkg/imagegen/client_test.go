package imagegen_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"generative-media-agent/pkg/imagegen"
)

var fakePNG = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}

type recordedRequest struct {
	Contents []struct {
		Parts []struct {
			Text       string `json:"text"`
			InlineData *struct {
				MIMEType string `json:"mime_type"`
				Data     string `json:"data"`
			} `json:"inline_data"`
		} `json:"parts"`
	} `json:"contents"`
}

func newImageServer(t *testing.T, lastReq *recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(lastReq); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		prompt := ""
		for _, p := range lastReq.Contents[0].Parts {
			if p.Text != "" {
				prompt = p.Text
			}
		}
		if strings.Contains(prompt, "text_only") {
			fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"I cannot draw that"}]}}]}`)
			return
		}

		encoded := base64.StdEncoding.EncodeToString(fakePNG)
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":"here"},{"inline_data":{"mime_type":"image/png","data":"%s"}}]}}]}`, encoded)
	}))
}

func TestClient_TextToImage(t *testing.T) {
	var lastReq recordedRequest
	ts := newImageServer(t, &lastReq)
	defer ts.Close()

	client := imagegen.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	res, err := client.TextToImage(context.Background(), "一隻橘貓")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(res.ImageData, fakePNG) {
		t.Errorf("image bytes mismatch")
	}
	if res.MIMEType != "image/png" {
		t.Errorf("MIMEType = %q", res.MIMEType)
	}
	if res.Prompt != "一隻橘貓" {
		t.Errorf("Prompt = %q", res.Prompt)
	}
	if res.Model != imagegen.DefaultModel {
		t.Errorf("Model = %q", res.Model)
	}

	parts := lastReq.Contents[0].Parts
	if len(parts) != 1 || parts[0].Text != "一隻橘貓" {
		t.Errorf("unexpected request parts: %+v", parts)
	}
}

func TestClient_ImageWithReference(t *testing.T) {
	var lastReq recordedRequest
	ts := newImageServer(t, &lastReq)
	defer ts.Close()

	client := imagegen.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	refs := [][]byte{fakePNG, fakePNG}
	res, err := client.ImageWithReference(context.Background(), "換成雪景", refs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.ImageData) == 0 {
		t.Errorf("missing image data")
	}

	parts := lastReq.Contents[0].Parts
	if len(parts) != 3 {
		t.Fatalf("expected 2 reference parts + 1 text part, got %d", len(parts))
	}
	for i := 0; i < 2; i++ {
		if parts[i].InlineData == nil {
			t.Fatalf("part %d missing inline data", i)
		}
		raw, err := base64.StdEncoding.DecodeString(parts[i].InlineData.Data)
		if err != nil || !bytes.Equal(raw, fakePNG) {
			t.Errorf("part %d carries wrong reference bytes", i)
		}
	}

	text := parts[2].Text
	if !strings.Contains(text, "換成雪景") {
		t.Errorf("instruction missing from prompt: %q", text)
	}
	if !strings.Contains(text, "請根據以下參考圖片生成一張新圖片") {
		t.Errorf("reference preamble missing from prompt: %q", text)
	}
}

func TestClient_TextOnlyResponse(t *testing.T) {
	var lastReq recordedRequest
	ts := newImageServer(t, &lastReq)
	defer ts.Close()

	client := imagegen.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	_, err := client.TextToImage(context.Background(), "text_only please")
	if err == nil {
		t.Fatal("expected error when response has no image part")
	}
	if !strings.Contains(err.Error(), "I cannot draw that") {
		t.Errorf("error should surface model text, got: %v", err)
	}
}

func TestClient_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limit"}}`)
	}))
	defer ts.Close()

	client := imagegen.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	_, err := client.TextToImage(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error from 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry status code, got: %v", err)
	}
}
