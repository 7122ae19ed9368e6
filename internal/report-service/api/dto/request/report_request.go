package request

// ReportRequest carries one form submission. Every field is optional; the
// only constrained format is the exam date, which the form submits as
// YYYY-MM-DD. The signature image travels as a separate multipart file part
// named signature_image.
type ReportRequest struct {
	PatientName        string `form:"patient_name" json:"patient_name"`
	Age                string `form:"age" json:"age"`
	Sex                string `form:"sex" json:"sex"`
	HospitalNo         string `form:"hospital_no" json:"hospital_no"`
	ReferringPhysician string `form:"referring_physician" json:"referring_physician"`
	DateOfExam         string `form:"date_of_exam" json:"date_of_exam" binding:"omitempty,datetime=2006-01-02" validate:"omitempty,datetime=2006-01-02"`
	XrayType           string `form:"xray_type" json:"xray_type"`
	XrayTypeOther      string `form:"xray_type_other" json:"xray_type_other"`
	ClinicalHistory    string `form:"clinical_history" json:"clinical_history"`
	Findings           string `form:"findings" json:"findings"`
	Impression         string `form:"impression" json:"impression"`
	DoctorName         string `form:"doctor_name" json:"doctor_name"`
}
