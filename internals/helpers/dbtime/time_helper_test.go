package dbtime

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "date only", in: "2024-01-03"},
		{name: "padded", in: "  2024-01-03 "},
		{name: "rfc3339 utc", in: "2024-01-03T17:45:12Z"},
		{name: "rfc3339 offset keeps calendar day", in: "2024-01-03T23:30:00+07:00"},
		{name: "naive datetime", in: "2024-01-03T08:00:00"},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "03/01/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.in, err)
			}
			if !got.Equal(want) || got.Location() != time.UTC {
				t.Fatalf("ParseDate(%q) = %v, want %v", tt.in, got, want)
			}
		})
	}
}

func TestFormatISO(t *testing.T) {
	d := time.Date(2024, time.February, 29, 13, 14, 15, 0, time.UTC)
	if got := FormatISO(d); got != "2024-02-29T00:00:00" {
		t.Fatalf("FormatISO() = %q", got)
	}
}
