package main

import (
	"flag"
	"io"
	"testing"
)

func TestReportFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{
			name:      "start and end",
			args:      []string{"-company", "5f0c", "-start", "2024-01-01", "-end", "2024-01-31"},
			wantStart: "2024-01-01",
			wantEnd:   "2024-01-31",
		},
		{name: "no period", args: []string{"-company", "5f0c"}},
		{name: "old from flag", args: []string{"-from", "2024-01-01"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f reportFlags
			fs := flag.NewFlagSet("dre", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			f.register(fs)

			err := fs.Parse(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.start != tt.wantStart || f.end != tt.wantEnd {
				t.Errorf("period = %q..%q, want %q..%q", f.start, f.end, tt.wantStart, tt.wantEnd)
			}
			if f.basis != "competence" {
				t.Errorf("basis = %q, want competence", f.basis)
			}
		})
	}
}
