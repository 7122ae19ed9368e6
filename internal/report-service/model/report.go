package model

import "time"

// ReportTitle is the fixed title line shared by the assembled text and both
// document exporters.
const ReportTitle = "MLC X-RAY REPORT"

const (
	XrayTypeChestPA = "Chest PA"
	XrayTypeChestAP = "Chest AP"
	XrayTypeSkull   = "Skull"
	XrayTypeKUB     = "KUB"
	XrayTypeSpine   = "Spine"
	XrayTypeOther   = "Other"
)

const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// Report holds the fields of a single report submission. It is built once at
// binding time and never mutated afterwards; exporters only read from it.
type Report struct {
	PatientName        string
	Age                string
	Sex                string
	HospitalNo         string
	ReferringPhysician string
	DateOfExam         time.Time
	XrayType           string
	ClinicalHistory    string
	Findings           string
	Impression         string
	DoctorName         string
	SignatureImage     []byte
}

// GeneratedReport is the outcome of one generation pass: the assembled text,
// the formats that exported successfully, and any non-fatal warnings. Failures
// maps a format to the error that prevented its export so the caller can
// decide how to log or surface it.
type GeneratedReport struct {
	Text     string
	Formats  []string
	Warnings []string
	Failures map[string]error
}
