package sprintreport

import (
	"errors"
	"testing"
)

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		project string
		date    string
		want    string
		wantErr error
	}{
		{
			name:    "long-form date",
			project: "IRDose",
			date:    "December 8, 2025",
			want:    "IRDose_Vianeo_Sprint_Executive_Report_20251208.docx",
		},
		{
			name:    "ISO date",
			project: "IRDose",
			date:    "2025-12-08",
			want:    "IRDose_Vianeo_Sprint_Executive_Report_20251208.docx",
		},
		{
			name:    "spaces in project name",
			project: "Smart Grid",
			date:    "January 15, 2026",
			want:    "Smart_Grid_Vianeo_Sprint_Executive_Report_20260115.docx",
		},
		{
			name:    "path characters dropped",
			project: "../IRDose",
			date:    "December 8, 2025",
			want:    "IRDose_Vianeo_Sprint_Executive_Report_20251208.docx",
		},
		{name: "missing project", date: "December 8, 2025", wantErr: ErrMissingField},
		{name: "missing date", project: "IRDose", wantErr: ErrMissingField},
		{name: "unparseable date", project: "IRDose", date: "Q4 2025", wantErr: ErrInvalidReportDate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Filename(&Content{ProjectName: tt.project, ReportDate: tt.date})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Filename() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Filename() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("nil content", func(t *testing.T) {
		t.Parallel()

		if _, err := Filename(nil); !errors.Is(err, ErrNilContent) {
			t.Errorf("Filename(nil) error = %v, want ErrNilContent", err)
		}
	})
}
