package discogs

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{200, nil},
		{429, ErrRateLimited},
		{401, ErrFatal},
		{403, ErrFatal},
		{500, ErrTransient},
		{503, ErrTransient},
	}
	for _, c := range cases {
		got := classifyStatus(c.status)
		if c.want == nil {
			if got != nil {
				t.Errorf("classifyStatus(%d) = %v, want nil", c.status, got)
			}
			continue
		}
		if !errors.Is(got, c.want) {
			t.Errorf("classifyStatus(%d) = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestClassifyStatus_ClientErrorNotRetryable(t *testing.T) {
	got := classifyStatus(404)

	if got == nil {
		t.Fatal("classifyStatus(404) = nil, want error")
	}
	if Retryable(got) {
		t.Errorf("404 classified retryable: %v", got)
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(ErrRateLimited) {
		t.Error("ErrRateLimited not retryable")
	}
	if !Retryable(ErrTransient) {
		t.Error("ErrTransient not retryable")
	}
	if Retryable(ErrFatal) {
		t.Error("ErrFatal retryable")
	}
	if Retryable(nil) {
		t.Error("nil retryable")
	}
}

func TestFlexString_Decode(t *testing.T) {
	var v struct {
		Year flexString `json:"year"`
	}

	if err := json.Unmarshal([]byte(`{"year":2000}`), &v); err != nil {
		t.Fatalf("number decode: %v", err)
	}
	if v.Year != "2000" {
		t.Errorf("number decode = %q, want %q", v.Year, "2000")
	}

	if err := json.Unmarshal([]byte(`{"year":"2025//2025"}`), &v); err != nil {
		t.Fatalf("string decode: %v", err)
	}
	if v.Year != "2025//2025" {
		t.Errorf("string decode = %q, want %q", v.Year, "2025//2025")
	}

	if err := json.Unmarshal([]byte(`{"year":null}`), &v); err != nil {
		t.Fatalf("null decode: %v", err)
	}
	if v.Year != "" {
		t.Errorf("null decode = %q, want empty", v.Year)
	}
}
