package framework

import "testing"

func TestParseFallbackPolicy(t *testing.T) {
	tests := []struct {
		raw      string
		expected FallbackPolicy
	}{
		{raw: "redirect-to-default", expected: FallbackRedirectToDefault},
		{raw: " Show-Error-View ", expected: FallbackShowErrorView},
		{raw: "no-op", expected: FallbackNoOp},
		{raw: "", expected: FallbackShowErrorView},
	}

	for _, tc := range tests {
		got, err := ParseFallbackPolicy(tc.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if got != tc.expected {
			t.Fatalf("parse %q: expected %q, got %q", tc.raw, tc.expected, got)
		}
	}

	if _, err := ParseFallbackPolicy("reload"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
