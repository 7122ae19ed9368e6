package assembler

import (
	"MLC_Report_Service/internal/report-service/model"
	"fmt"
	"strings"
)

const examDateLayout = "02-01-2006"

const emptySectionPlaceholder = "-"

const validityNotice = "Note: This report is generated electronically and is valid without a wet signature unless otherwise required."

// Assemble maps a report to its ordered text lines: title, patient
// identification block, optional clinical history, findings, impression,
// reporting doctor and the fixed validity notice. All fields are optional;
// empty findings and impression render as a placeholder dash.
func Assemble(report model.Report) []string {
	lines := []string{
		model.ReportTitle,
		"",
		fmt.Sprintf("Patient Name: %s", report.PatientName),
		fmt.Sprintf("Age / Sex: %s / %s", report.Age, report.Sex),
		fmt.Sprintf("Hospital / OPD No.: %s", report.HospitalNo),
		fmt.Sprintf("Referring Physician: %s", report.ReferringPhysician),
		fmt.Sprintf("Date of Exam: %s", report.DateOfExam.Format(examDateLayout)),
		fmt.Sprintf("Examination: %s", report.XrayType),
		"",
	}
	if report.ClinicalHistory != "" {
		lines = append(lines, "Clinical History:", report.ClinicalHistory, "")
	}
	lines = append(lines, "Findings:", orPlaceholder(report.Findings), "")
	lines = append(lines, "Impression:", orPlaceholder(report.Impression), "")
	lines = append(lines, fmt.Sprintf("Reporting Doctor: %s", report.DoctorName), "")
	lines = append(lines, validityNotice)
	return lines
}

// Text renders the assembled lines as a single newline-joined string.
func Text(report model.Report) string {
	return strings.Join(Assemble(report), "\n")
}

func orPlaceholder(section string) string {
	if section == "" {
		return emptySectionPlaceholder
	}
	return section
}
