package server

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shapeview/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{Backend: "rasterx", MaxRenderSize: 1024, Environment: "test", ReadTimeout: 5, WriteTimeout: 5}
}

func do(t *testing.T, method, target, body string) *http.Response {
	t.Helper()
	app := New(testConfig(), nil)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	for _, path := range []string{"/health/live", "/health/ready"} {
		resp := do(t, http.MethodGet, path, "")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s status = %d", path, resp.StatusCode)
		}
		if resp.Header.Get(HeaderRequestID) == "" {
			t.Errorf("%s missing request id", path)
		}
	}
}

func TestRequestIDIsKept(t *testing.T) {
	app := New(testConfig(), nil)
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.Header.Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("request id = %q", got)
	}
}

func TestParse(t *testing.T) {
	body := "triangle, 10, 10, 2, 0, 0, 10, 0, 5, 10, 00FF00\nrectangle, 1, 1\nRectangle, 0, 0, 1, 5, 5, FF0000"
	resp := do(t, http.MethodPost, "/parse", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got struct {
		Shapes []struct {
			Kind     string `json:"kind"`
			Z        int    `json:"z"`
			Vertices []struct{ X, Y int }
			Hitbox   struct {
				X, Y, Width, Height int
			} `json:"hitbox"`
		} `json:"shapes"`
		Errors []struct {
			ID   int    `json:"id"`
			Line string `json:"line"`
			Kind string `json:"kind"`
		} `json:"errors"`
		Bundle struct {
			Title string `json:"title"`
		} `json:"bundle"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got.Shapes) != 2 || got.Shapes[0].Kind != "Rectangle" || got.Shapes[1].Kind != "Triangle" {
		t.Fatalf("shapes = %+v", got.Shapes)
	}
	if hb := got.Shapes[1].Hitbox; hb.X != 10 || hb.Y != 10 || hb.Width != 10 || hb.Height != 10 {
		t.Errorf("triangle hitbox = %+v", hb)
	}
	if len(got.Shapes[1].Vertices) != 3 {
		t.Errorf("vertices = %+v", got.Shapes[1].Vertices)
	}
	if len(got.Errors) != 1 || got.Errors[0].Line != "rectangle, 1, 1" || got.Errors[0].Kind != "FieldCountMismatch" {
		t.Errorf("errors = %+v", got.Errors)
	}
	if got.Bundle.Title != "Shapes were not rendered" {
		t.Errorf("bundle title = %q", got.Bundle.Title)
	}
}

func TestParseEmptyBody(t *testing.T) {
	resp := do(t, http.MethodPost, "/parse", "")
	var got struct {
		Errors []struct {
			Kind string `json:"kind"`
		} `json:"errors"`
		Bundle struct {
			Title string `json:"title"`
		} `json:"bundle"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got.Errors) != 1 || got.Errors[0].Kind != "EmptyFile" || got.Bundle.Title != "Empty file" {
		t.Errorf("got %+v", got)
	}
}

func TestFormat(t *testing.T) {
	resp := do(t, http.MethodPost, "/format", "rectangle,1,2,0,3,4,abcdef\ncircle, 1\n")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data, _ := io.ReadAll(resp.Body)
	if string(data) != "Rectangle, 1, 2, 0, 3, 4, abcdef\r\n" {
		t.Errorf("body = %q", data)
	}
	if resp.Header.Get("X-Parse-Errors") != "1" {
		t.Errorf("X-Parse-Errors = %q", resp.Header.Get("X-Parse-Errors"))
	}
}

func TestRender(t *testing.T) {
	for _, backend := range []string{"gg", "rasterx"} {
		t.Run(backend, func(t *testing.T) {
			resp := do(t, http.MethodPost, "/render?width=32&height=16&backend="+backend, "rectangle, 0, 0, 0, 8, 8, FF0000\nbad line")
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
				t.Errorf("content type = %q", ct)
			}
			if resp.Header.Get("X-Parse-Errors") != "1" {
				t.Errorf("X-Parse-Errors = %q", resp.Header.Get("X-Parse-Errors"))
			}
			img, err := png.Decode(resp.Body)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
				t.Errorf("bounds = %v", b)
			}
			if r, _, _, a := img.At(4, 4).RGBA(); r>>8 != 255 || a>>8 != 255 {
				t.Errorf("pixel (4,4) not red")
			}
		})
	}
}

func TestRenderBadRequest(t *testing.T) {
	tests := []string{
		"/render?width=0",
		"/render?width=abc",
		"/render?height=99999",
		"/render?backend=cairo",
	}
	for _, target := range tests {
		resp := do(t, http.MethodPost, target, "rectangle, 0, 0, 0, 8, 8, FF0000")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", target, resp.StatusCode)
		}
	}
}
