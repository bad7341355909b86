package controllers

import (
	"net/http"
	"net/url"
	"testing"
)

func Test_validateURL(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		wantErr bool
	}{
		{name: "valid url", rawURL: "https://test.com", wantErr: false},
		{name: "localhost", rawURL: "https://localhost", wantErr: false},
		{name: "ip address", rawURL: "https://123.123.123.123/test", wantErr: false},
		{name: "wrong scheme", rawURL: "test://test.com", wantErr: true},
		{name: "space into", rawURL: "https://tes t.com", wantErr: true},
		{name: "empty zone", rawURL: "https://test", wantErr: true},
		{name: "no host", rawURL: "https://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateURL(tt.rawURL)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateURL(%q) error = %v, wantErr %v", tt.rawURL, err, tt.wantErr)
			}
		})
	}
}

func Test_buildShortURL(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://request-host.com/x", nil)
	base := &url.URL{Scheme: "https", Host: "lnk.example.com"}

	tests := []struct {
		name    string
		baseURL *url.URL
		want    string
	}{
		{name: "with base url", baseURL: base, want: "https://lnk.example.com/abcdefgh"},
		{name: "fallback to request host", baseURL: nil, want: "http://request-host.com/abcdefgh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildShortURL(req, tt.baseURL, "abcdefgh"); got != tt.want {
				t.Errorf("buildShortURL() = %s, want %s", got, tt.want)
			}
		})
	}
}
