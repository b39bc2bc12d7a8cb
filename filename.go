package sprintreport

import (
	"fmt"

	"github.com/alnah/go-sprintreport/internal/dateutil"
	"github.com/alnah/go-sprintreport/internal/fileutil"
)

// FileExtension is the extension of generated reports.
const FileExtension = ".docx"

// filenameInfix sits between the project name and the compact date.
const filenameInfix = "_Vianeo_Sprint_Executive_Report_"

// Filename derives the output filename from the project name and report
// date, e.g. "IRDose_Vianeo_Sprint_Executive_Report_20251208.docx".
func Filename(c *Content) (string, error) {
	if c == nil {
		return "", ErrNilContent
	}
	if c.ProjectName == "" {
		return "", &MissingFieldError{Field: "projectName"}
	}
	if c.ReportDate == "" {
		return "", &MissingFieldError{Field: "reportDate"}
	}

	name, err := fileutil.SafeName(c.ProjectName)
	if err != nil {
		return "", fmt.Errorf("projectName: %w", err)
	}
	compact, err := dateutil.Compact(c.ReportDate)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidReportDate, err)
	}
	return name + filenameInfix + compact + FileExtension, nil
}
