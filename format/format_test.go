package format

import "testing"

func TestIsValidDateTime(t *testing.T) {
	if !IsValidDateTime("2022-07-01T23:59:59Z") {
		t.Error("expected valid date-time to pass")
	}
	if IsValidDateTime("2022-07-01") {
		t.Error("expected bare date to fail date-time (missing T)")
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2022-07-01") {
		t.Error("expected valid date to pass")
	}
	if IsValidDate("2022-07-01T23:59:59Z") {
		t.Error("expected date-time to fail date (contains T)")
	}
}

func TestIsValidTime(t *testing.T) {
	if !IsValidTime("23:59:59Z") {
		t.Error("expected valid time to pass")
	}
	if IsValidTime("xxx23:59:59xxx") {
		t.Error("expected garbage time to fail")
	}
	if IsValidTime("2022-07-01") {
		t.Error("expected bare date to fail as a time")
	}
}

func TestIsValidIPv4(t *testing.T) {
	cases := map[string]bool{
		"192.168.1.1":     true,
		"255.255.255.255": true,
		"256.1.1.1":       false,
		"1.2.3":           false,
		"not-an-ip":       false,
	}
	for value, want := range cases {
		if got := IsValidIPv4(value); got != want {
			t.Errorf("IsValidIPv4(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestIsValidIPv6(t *testing.T) {
	if !IsValidIPv6("::1") {
		t.Error("expected loopback to be valid ipv6")
	}
	if IsValidIPv6("192.168.1.1") {
		t.Error("expected ipv4 literal to fail ipv6")
	}
}

func TestIsValidHostname(t *testing.T) {
	if !IsValidHostname("example.com") {
		t.Error("expected example.com to be a valid hostname")
	}
	if IsValidHostname("-bad.example.com") {
		t.Error("expected leading-hyphen label to be invalid")
	}
}

func TestIsValidJSONPointer(t *testing.T) {
	if !IsValidJSONPointer("/a/b") {
		t.Error("expected /a/b to be a valid json pointer")
	}
	if IsValidJSONPointer("/a~") {
		t.Error("expected trailing unescaped tilde to be invalid")
	}
	if IsValidJSONPointer("/a~2") {
		t.Error("expected ~2 escape to be invalid")
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("uri"); ok {
		t.Fatal("expected empty registry to have no predicate")
	}

	r.Register("uri", func(s string) bool { return s == "ok" })
	p, ok := r.Lookup("uri")
	if !ok {
		t.Fatal("expected predicate to be registered")
	}
	if !p("ok") || p("bad") {
		t.Error("registered predicate did not behave as configured")
	}
}

func TestIsDraft06Only(t *testing.T) {
	for _, tag := range []string{"uri-reference", "uri-template", "json-pointer"} {
		if !IsDraft06Only(tag) {
			t.Errorf("expected %q to be draft-06-only", tag)
		}
	}
	if IsDraft06Only("email") {
		t.Error("email is not draft-06-only")
	}
}

func TestCompareFormatBound(t *testing.T) {
	sign, ok := CompareFormatBound("2022-07-02T00:00:00Z", "2022-07-01T00:00:00Z")
	if !ok || sign != 1 {
		t.Fatalf("expected schema > value, got sign=%d ok=%v", sign, ok)
	}

	if _, ok := CompareFormatBound("not-a-date", "2022-07-01T00:00:00Z"); ok {
		t.Fatal("expected unparsable schema literal to report ok=false")
	}
}
