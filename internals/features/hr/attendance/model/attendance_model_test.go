package model

import "testing"

func TestParseAttendanceStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    AttendanceStatus
		wantErr bool
	}{
		{in: "Present", want: StatusPresent},
		{in: "Absent", want: StatusAbsent},
		{in: " Absent", want: StatusAbsent},
		{in: "present", wantErr: true},
		{in: "Late", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAttendanceStatus(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAttendanceStatus(%q) = %q, want error", tt.in, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseAttendanceStatus(%q) = %q, %v", tt.in, got, err)
		}
	}
}
