package knowledge

// Intent names.
const (
	IntentDressCode            = "dress_code"
	IntentCollegeTiming        = "college_timing"
	IntentAdmissionEligibility = "admission_eligibility"
	IntentAdmissionProcess     = "admission_process"
	IntentFees                 = "fees"
	IntentHostel               = "hostel"
	IntentCourses              = "courses"
)

func intentTable() []Intent {
	return []Intent{
		{Name: IntentDressCode, Keywords: []string{
			"dress code", "uniform rules", "college attire", "what to wear", "clothing regulations",
			"உடை விதிகள்", "யூனிபாம் விதிகள்", "கல்லூரி உடை", "என்ன அணிய வேண்டும்", "அணிவது எப்படி",
		}},
		{Name: IntentCollegeTiming, Keywords: []string{
			"college timing", "class hours", "schedule", "lecture timings",
			"கல்லூரி நேரம்", "மாணவர் நேரம்", "வகுப்பு நேரம்", "பாடநெறி நேரம்",
		}},
		{Name: IntentAdmissionEligibility, Keywords: []string{
			"eligibility criteria", "minimum marks required", "who can apply", "admission eligibility",
			"விண்ணப்பதாரர்கள் யார்", "குறைந்த மதிப்பெண்கள்", "தகுதி நிபந்தனைகள்", "செல்லும் நிபந்தனை",
		}},
		{Name: IntentAdmissionProcess, Keywords: []string{
			"how to apply", "documents required", "application procedure", "admission process",
			"விண்ணப்பிப்பது எப்படி", "தேவையான ஆவணங்கள்", "விண்ணப்ப செயல்முறை", "சேர்க்கை செயல்முறை",
		}},
		{Name: IntentFees, Keywords: []string{
			"fees", "fee", "tuition", "course fee", "கட்டணம்", "படிப்பின் கட்டணம்", "பாடநெறி கட்டணம்",
		}},
		{Name: IntentHostel, Keywords: []string{
			"hostel", "boys hostel", "girls hostel", "accommodation", "dormitory",
			"ஹோஸ்டல்", "ஆண் ஹோஸ்டல்", "பெண் ஹோஸ்டல்", "வசதி",
		}},
		{Name: IntentCourses, Keywords: []string{
			"courses", "arts", "science", "engineering", "medical", "law", "mba",
			"பாடநெறிகள்", "கலை", "அறிவு விஞ்ஞானம்", "பொறியியல்", "மருத்துவம்", "நீதியியல்", "மேலாண்மை",
		}},
	}
}

func responseTable() map[string]string {
	return map[string]string{
		IntentDressCode: "👔 College Dress Code: Boys - formal shirt/pants; Girls - salwar/saree; ID card mandatory.",
		IntentFees:      "💰 Fees depend on course and year.",
		IntentHostel:    "🏠 Separate hostels for boys and girls; AC & Non-AC available.",
	}
}
