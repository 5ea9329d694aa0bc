package role

import "testing"

func TestParseRoundTripsAllRoles(t *testing.T) {
	t.Parallel()

	for _, r := range All() {
		if !r.IsValid() {
			t.Fatalf("role %d reported invalid", r)
		}
		if got := Parse(r.String()); got != r {
			t.Fatalf("parse(%q) = %v, want %v", r.String(), got, r)
		}
	}
}

func TestParseUnknownFailsClosed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "superuser", "ADMIN ", "deacon"} {
		if got := Parse(raw); got != RoleUnspecified {
			t.Fatalf("parse(%q) = %v, want RoleUnspecified", raw, got)
		}
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	if got := Parse(" Pastor "); got != RolePastor {
		t.Fatalf("parse(\" Pastor \") = %v, want RolePastor", got)
	}
}

func TestUnspecifiedIsInvalid(t *testing.T) {
	t.Parallel()

	if RoleUnspecified.IsValid() {
		t.Fatal("RoleUnspecified must not be valid")
	}
	if RoleUnspecified.String() != "unspecified" {
		t.Fatalf("unexpected label %q", RoleUnspecified.String())
	}
}
