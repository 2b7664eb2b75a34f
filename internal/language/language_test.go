package language

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"fr", "French", true},
		{"FRA", "French", true},
		{"fre", "French", true},
		{" japanese ", "Japanese", true},
		{"Korean", "Korean", true},
		{"chi", "Chinese", true},
		{"Klingon", "Klingon", false},
		{"  ", "", false},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestISO2(t *testing.T) {
	if got := ISO2("Portuguese"); got != "pt" {
		t.Fatalf("ISO2(Portuguese) = %q, want pt", got)
	}
	if got := ISO2("xx"); got != "" {
		t.Fatalf("ISO2(xx) = %q, want empty", got)
	}
}

func TestKnownCoversTable(t *testing.T) {
	known := Known()
	if len(known) != len(languages) || known[0] != "English" {
		t.Fatalf("unexpected known list: %v", known)
	}
}
