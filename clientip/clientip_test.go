package clientip

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestKey_PrefersHeaderWhenSet(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Client", " client-123 ")

	if got := Key(r, "X-Client", false); got != "client-123" {
		t.Fatalf("expected header key, got %q", got)
	}
}

func TestKey_TrustXForwardedForUsesFirstIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")

	if got := Key(r, "", true); got != "1.2.3.4" {
		t.Fatalf("expected first XFF ip, got %q", got)
	}
}

func TestKey_IgnoresXForwardedForWhenNotTrusted(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	r.Header.Set("X-Forwarded-For", "1.2.3.4")

	if got := Key(r, "", false); got != "10.0.0.9" {
		t.Fatalf("expected remote host, got %q", got)
	}
}

func TestKey_UnknownWithoutAnySource(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = ""

	if got := Key(r, "", true); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
}

func TestOrigin_UsesWholeForwardedHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "172.18.0.3:40000"
	r.Header.Set("X-Forwarded-For", "1.2.3.4, 172.18.0.2")

	if got := Origin(r); got != "1.2.3.4, 172.18.0.2" {
		t.Fatalf("expected raw XFF value, got %q", got)
	}
}

func TestOrigin_FallbacksToRemoteHost(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "[::1]:51234"

	if got := Origin(r); got != "::1" {
		t.Fatalf("expected ::1, got %q", got)
	}
}

func TestRemoteHost_KeepsAddrWithoutPort(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "10.1.1.1"

	if got := RemoteHost(r); got != "10.1.1.1" {
		t.Fatalf("expected 10.1.1.1, got %q", got)
	}
}

func TestOrigin_JoinsRepeatedForwardedHeaders(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
	r.RemoteAddr = "172.18.0.3:40000"
	r.Header.Add("X-Forwarded-For", "1.2.3.4")
	r.Header.Add("X-Forwarded-For", "10.0.0.1")

	if got := Origin(r); got != "1.2.3.4, 10.0.0.1" {
		t.Fatalf("expected joined XFF lines, got %q", got)
	}
	if got := Key(r, "", true); got != "1.2.3.4" {
		t.Fatalf("expected first forwarded ip as key, got %q", got)
	}
}
