package output

import "encoding/xml"

// CheckViolation is one violation in machine-readable output.
type CheckViolation struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// CheckFileResult holds the results for a single file.
type CheckFileResult struct {
	Path       string           `json:"path"`
	Error      string           `json:"error,omitempty"`
	Violations []CheckViolation `json:"violations,omitempty"`
}

// CheckSummary aggregates run totals.
type CheckSummary struct {
	FilesChecked int `json:"files_checked"`
	Violations   int `json:"violations"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Info         int `json:"info"`
	FileErrors   int `json:"file_errors"`
}

// CheckOutput is the JSON document emitted by the check command.
type CheckOutput struct {
	Summary CheckSummary      `json:"summary"`
	Files   []CheckFileResult `json:"files,omitempty"`
}

// Checkstyle XML report. The element and attribute layout follows the
// de facto format most CI tooling ingests.
type XMLReport struct {
	XMLName xml.Name  `xml:"checkstyle"`
	Version string    `xml:"version,attr"`
	Files   []XMLFile `xml:"file"`
}

// XMLFile is one <file> element of the XML report.
type XMLFile struct {
	Name   string     `xml:"name,attr"`
	Errors []XMLError `xml:"error"`
}

// XMLError is one <error> element of the XML report.
type XMLError struct {
	Line     int    `xml:"line,attr"`
	Column   int    `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}
