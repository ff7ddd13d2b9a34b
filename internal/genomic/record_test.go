package genomic

import "testing"

func TestRevComp(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"plain bases", "ATGC", "GCAT"},
		{"ambiguity codes", "ATRN", "NYAT"},
		{"unknown characters become N", "AT-C", "GNAT"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RevComp(tt.seq); got != tt.want {
				t.Errorf("RevComp(%q) = %q, want %q", tt.seq, got, tt.want)
			}
		})
	}
}

func TestOnlyACGT(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"ATGCATGC", true},
		{"ATGNATGC", false},
		{"atgc", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := OnlyACGT(tt.token); got != tt.want {
			t.Errorf("OnlyACGT(%q) = %t, want %t", tt.token, got, tt.want)
		}
	}
}

func TestRecord_Attr(t *testing.T) {
	rec := &Record{ID: "gene1", Name: "gene1", Description: "gene1 capsid protein"}

	if rec.Attr("id") != "gene1" {
		t.Errorf("Attr(id) = %q", rec.Attr("id"))
	}
	if rec.Attr("description") != "gene1 capsid protein" {
		t.Errorf("Attr(description) = %q", rec.Attr("description"))
	}
	// unknown attributes fall back to the description
	if rec.Attr("") != "gene1 capsid protein" {
		t.Errorf("Attr(\"\") = %q", rec.Attr(""))
	}
}
