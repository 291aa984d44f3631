package knowledge

// Texts are the canned reply blocks. Several contain inline markup
// (<b>, <br>, <a>) that clients render verbatim.
type Texts struct {
	Eligibility        string
	AdmissionProcess   string
	DressCode          string
	CollegeInfoEnglish string
	CollegeInfoTamil   string
	CoursesEnglish     string
	CoursesTamil       string
	HostelOverview     string
	PlacementInfo      string
	PlacementStats     string
	Contact            string
	Entrance           string
	EntranceDefault    string
	FallbackEnglish    string
	FallbackTamil      string
}

func institutionTexts() Texts {
	return Texts{
		Eligibility: "📌 Admission Eligibility:\n" +
			"• Must have passed 12th with minimum 50% marks (varies by course).\n" +
			"• Some courses may require entrance exams.\n" +
			"• For detailed eligibility, visit the Admissions Office or website.",

		AdmissionProcess: "📝 Admission Process:\n" +
			"1. Fill online application form.\n" +
			"2. Submit required documents.\n" +
			"3. Appear for entrance exam (if applicable).\n" +
			"4. Confirm admission after fee payment.",

		DressCode: "👔 College Dress Code:\n" +
			"• Boys: Formal shirt and pants, shoes\n" +
			"• Girls: Salwar kameez / formal tops and chudi / saree, shoes\n" +
			"• ID card must be worn at all times\n" +
			"• Casual wear allowed only on Festivals and special events\n" +
			"• Contact the Student Affairs Office for more details",

		CollegeInfoTamil: "<div style='text-align:center; font-size:22px; font-weight:bold;'>" +
			"🏫 SRM தொழில்நுட்ப நிறுவனம்" +
			"</div><br>" +
			"SRM தொழில்நுட்ப நிறுவனம் கல்வி சிறப்புமிக்க, நவீன வசதிகள் மற்றும் மாணவர் நட்பு சூழலுக்காக புகழ்பெற்றது.<br><br>" +
			"<b>👤 தலைமைச் செயலாளர்:</b> திரு. நள்ளத்தம்பி<br>" +
			"<b>🎓 தலைவர்:</b> டாக்டர் R. கிருஷ்ணமூர்த்தி<br>" +
			"<b>🏆 தேசிய ரேங்க்:</b> 15<br>" +
			"<b>🏆 மாநில ரேங்க்:</b> 2<br>" +
			"<b>👩‍🏫 பேராசிரியர்கள்:</b> 250+ அர்ப்பணிப்புடன் கூடிய ப்ரொஃபெசர்கள்<br>" +
			"<b>🎓 பி.எச்.டி. ஹோல்டர்கள்:</b> 80+ highly qualified faculty<br><br>" +
			"<b>💼 பிளேஸ்மென்ட்:</b> மாணவர்களை சிறந்த நிறுவனங்களில் வெற்றிகரமாக பிளேஸ் செய்துள்ளோம்.<br><br>" +
			"<b>📚 வசதிகள்:</b><br>• நவீன வகுப்பறைகள் மற்றும் ஸ்மார்ட் போர்டுகள்<br>" +
			"• நூலகம் - ஆயிரக்கணக்கான புத்தகங்கள்<br>" +
			"• உயர் தொழில்நுட்ப கணினி லேப்கள் மற்றும் வேகமான இன்டர்நெட்<br>" +
			"• அமைதியான மற்றும் பசுமை நிறைந்த வளாகம்<br><br>" +
			"<b>🏠 ஹாஸ்டல் வசதிகள்:</b><br>" +
			"• பையன்கள் மற்றும் பெண் மாணவர்களுக்கு தனித்தனியான ஹாஸ்டல்கள்<br>" +
			"• 24/7 பாதுகாப்பு மற்றும் CCTV கண்காணிப்பு<br>" +
			"• சத்துணவு மற்றும் சுத்தமான உணவுக்கூடங்கள்<br>" +
			"• ஓய்வுக்கூடங்கள் மற்றும் படிப்பு அறைகள்<br><br>" +
			"<b>🏅 விளையாட்டு மற்றும் செயல்பாடுகள்:</b><br>" +
			"• கிரிக்கெட், கால்பந்து, பேஸ்கெட்ட்பால், பேட்மிண்டன் மற்றும் தடகளம்<br>" +
			"• வருடாந்திர விளையாட்டு விழா மற்றும் இன்டர்கல்லூரி போட்டிகள்<br>" +
			"• பயிற்சியாளர்கள் மற்றும் உடற்பயிற்சி திட்டங்கள்<br><br>" +
			"<b>💡 நமது குறிக்கோள்:</b> 'அறிவை உருவாக்கி எதிர்காலத்தை கட்டமைப்போம்.'<br><br>" +
			"<b>கல்லூரியின் நோக்கம்:</b><br>" +
			"அறிவை உருவாக்கி உலக தரமான கல்வியை வழங்கும் கல்வி மற்றும் ஆராய்ச்சி சூழலை உருவாக்குவதே நோக்கம்.<br>" +
			"<b>கால்கட்டுக் குறிக்கோள்:</b><br>" +
			"சுதந்திரம், சுயம்செய்தல், படைப்பு மற்றும் புதுமையை ஊக்குவிக்கும் சூழலை உருவாக்குதல்.",

		CollegeInfoEnglish: "<div style='text-align:center; font-size:22px; font-weight:bold;'>" +
			"🏫 SRM Institute of Technology" +
			"</div><br>" +
			"SRM Institute of Technology is one of the most prestigious institutions, renowned for its academic excellence, modern facilities, and student-friendly environment.<br><br>" +
			"<b>👤 CEO:</b> Mr. Nallathambi<br>" +
			"<b>🎓 Principal:</b> Dr. R. Krishnamoorthy<br>" +
			"<b>🏆 National Rank:</b> 15th<br>" +
			"<b>🏆 State Rank:</b> 2nd<br>" +
			"<b>👩‍🏫 Faculty Members:</b> 250+ dedicated professors<br>" +
			"<b>🎓 Ph.D. Holders:</b> 80+ highly qualified faculty members<br><br>" +
			"<b>💼 Placements:</b> We have successfully placed thousands of students in top multinational companies with attractive salary packages.<br><br>" +
			"<b>📚 Facilities:</b><br>• Spacious and modern classrooms with smart boards<br>" +
			"• Well-stocked library with thousands of academic and reference books<br>" +
			"• High-tech computer labs with fast internet<br>" +
			"• Peaceful and green campus for a positive learning environment<br><br>" +
			"<b>🏠 Hostel Facilities:</b><br>" +
			"• Separate hostels for boys and girls<br>" +
			"• 24/7 security and CCTV surveillance<br>" +
			"• Nutritious food and clean dining halls<br>" +
			"• Recreation rooms and study lounges<br><br>" +
			"<b>🏅 Sports & Activities:</b><br>" +
			"• Cricket, Football, Basketball, Badminton, and Athletics<br>" +
			"• Annual Sports Meet and Inter-College Competitions<br>" +
			"• Dedicated sports coaches and fitness programs<br><br>" +
			"<b>💡 Our Motto:</b> 'Innovating Minds, Building Futures.'<br><br>" +
			"<b>Vision of AIT:</b><br>" +
			"To emerge as a World-Class University in creating and disseminating knowledge, " +
			"and providing students a unique learning experience in science, technology, medicine, management and other areas of scholarship.<br>" +
			"<b>Mission of AIT:</b><br>" +
			"MOVE UP through international alliances and collaborative initiatives to achieve global excellence.<br>" +
			"ACCOMPLISH a process to advance knowledge in a rigorous academic and research environment.<br>" +
			"ATTRACT and BUILD people in a rewarding and inspiring environment by fostering freedom, empowerment, creativity, and innovation.",

		CoursesTamil: "📚 <b>நாம் வழங்கும் பாடநெறிகள்:</b><br><br>" +
			"<b>பொறியியல்:</b> EEE, ECE, CSE, Civil, Mechanical<br>" +
			"<b>கலை:</b> B.Com, BBA, B.Sc Tamil, B.Sc English, BA History<br>" +
			"<b>அறிவு விஞ்ஞானம்:</b> B.Sc CS, B.Sc CA, B.Sc Physics, B.Sc Chemistry, B.Sc Maths<br>" +
			"<b>மருத்துவம்:</b> MBBS, BDS, B.Pharm, B.Sc Nursing<br>" +
			"<b>நீதியியல்:</b> LLB, BA LLB, BBA LLB<br>" +
			"<b>கலைக்கலைப்பொருளமைப்பு:</b> B.Arch, M.Arch",

		CoursesEnglish: "📚 <b>Our Courses:</b><br><br>" +
			"<b>Engineering:</b> EEE, ECE, CSE, Civil, Mechanical<br>" +
			"<b>Arts:</b> B.Com, BBA, B.Sc Tamil, B.Sc English, BA History<br>" +
			"<b>Science:</b> B.Sc CS, B.Sc CA, B.Sc Physics, B.Sc Chemistry, B.Sc Maths<br>" +
			"<b>Medical:</b> MBBS, BDS, B.Pharm, B.Sc Nursing<br>" +
			"<b>Law:</b> LLB, BA LLB, BBA LLB<br>" +
			"<b>Architecture:</b> B.Arch, M.Arch",

		HostelOverview: "<b>🏠 Hostel Details:</b><br>" +
			"Separate hostels for boys and girls with AC & Non-AC rooms.<br>" +
			"24/7 Security, WiFi, Study Room, Gym & Medical Facilities available.<br>" +
			"Use 'boys hostel' or 'girls hostel' to get more details.",

		PlacementInfo: "<b>💼 Placement Information - SRM Institute of Technology</b><br><br>" +
			"🌟 <i>We provide one of the best placement opportunities for our students, " +
			"connecting them with top recruiters across India and abroad.</i><br><br>" +
			"<b>🏆 Top Companies Visiting:</b><br>" +
			"• TCS - ₹12 LPA<br>" +
			"• Infosys - ₹10 LPA<br>" +
			"• Wipro - ₹9 LPA<br>" +
			"• HCL - ₹8 LPA<br>" +
			"• Cognizant - ₹8.5 LPA<br><br>" +
			"<b>📜 Eligibility for Placement:</b><br>" +
			"• You must score more than 75% in semester exams to apply.<br>" +
			"• Placement fees will be collected in your final year.<br>" +
			"• The fee will be informed in the final year and will be under ₹1,50,000.<br><br>" +
			"<b> Placement Related Trainings:</b><br>" +
			"We will provide placement trainings during your final year.<br>" +
			"Like Aptitude,Programming,Communication<br><br>" +
			"<b>Placement Fee:</b> Paid separately in the final year.<br><br>" +
			"<b>Note:</b> Fee amount will be announced during the final year.<br>",

		PlacementStats: "<b>📊 Previous Year Placement Statistics</b><br><br>" +
			"<u>2024</u><br>" +
			"• Overall: 95% placed<br>" +
			"• Engineering: IT - 300, Non-IT - 150<br>" +
			"• Arts: IT - 80, Non-IT - 70<br>" +
			"• Science: IT - 90, Non-IT - 60<br><br>" +
			"<u>2023</u><br>" +
			"• Overall: 92% placed<br>" +
			"• Engineering: IT - 280, Non-IT - 140<br>" +
			"• Arts: IT - 75, Non-IT - 65<br>" +
			"• Science: IT - 85, Non-IT - 55<br><br>" +
			"<u>2022</u><br>" +
			"• Overall: 90% placed<br>" +
			"• Engineering: IT - 260, Non-IT - 130<br>" +
			"• Arts: IT - 70, Non-IT - 60<br>" +
			"• Science: IT - 80, Non-IT - 50<br>",

		Contact: "<b>📞 Contact Details:</b><br>" +
			"Phone: <a href='tel:+911234567890'>+91 12345 67890</a><br>" +
			"Email: <a href='mailto:info@srmcollege.edu'>info@srmcollege.edu</a>" +
			"<b>If you have any queries, you can visit our Admissions Office between 9:00 AM and 5:00 PM, Monday to Saturday.</b>",

		Entrance: "<b>📝 Entrance Exam Details – SRM College</b><br><br>" +
			"<b>🎓 Courses Requiring Entrance Exams:</b><br>" +
			"• B.Tech – 10 September 2025 (Offline, 2 hours)<br>" +
			"• MBA – 15 September 2025 (Online, 1.5 hours)<br>" +
			"• B.Sc Nursing – 18 September 2025 (Offline, 2 hours)<br><br>" +
			"<b>📌 Courses Without Entrance Exam:</b><br>" +
			"• All Arts & Science degree programs – Direct admission based on 12th grade marks<br><br>" +
			"<b>⚠ Note:</b> Admit cards will be available online 7 days before the exam.<br>" +
			"<b>📍 Exam Centres:</b> We will inform you about your exam centre and timing 2 days before the exam date.<br><br>" +
			"<b>🔎 Department-specific Info:</b><br>",

		EntranceDefault: "📝 Entrance exam requirements vary by course. Please specify your department (Engineering, Medical, Law, Architecture, Arts, or Science).",

		FallbackEnglish: "Sorry, I didn't understand that. Could you please try again?",
		FallbackTamil:   "மன்னிக்கவும், எனக்கு அது புரியவில்லை. மீண்டும் முயற்சிக்க முடியுமா?",
	}
}

func entranceNotes() []DepartmentNote {
	return []DepartmentNote{
		{Name: "engineering", Keywords: []string{"engineering", "cse", "ece", "eee"},
			Text: "🛠️ For Engineering (B.E/B.Tech), admission is based on JEE / TNEA counselling depending on your state."},
		{Name: "medical", Keywords: []string{"medical", "mbbs", "bds", "bpharm", "nursing"},
			Text: "🩺 For Medical courses (MBBS, BDS, B.Pharm, Nursing), admission is through NEET (National Eligibility cum Entrance Test)."},
		{Name: "mba", Keywords: []string{"mba", "management"},
			Text: "📊 For MBA, admission is based on an entrance exam conducted by SRM / or valid scores from CAT, MAT, XAT, or TANCET."},
		{Name: "law", Keywords: []string{"law", "llb"},
			Text: "⚖️ For Law courses (LLB, BA LLB, BBA LLB), admission is usually through CLAT (Common Law Admission Test)."},
		{Name: "architecture", Keywords: []string{"architecture", "barch", "m.arch"},
			Text: "🏛 For Architecture (B.Arch, M.Arch), admission is based on NATA (National Aptitude Test in Architecture)."},
		{Name: "arts_science", Keywords: []string{"arts", "science"},
			Text: "📚 For Arts & Science courses (B.Com, BBA, B.Sc, BA, etc.), admission is usually merit-based (marks in 12th standard)."},
	}
}

func departmentNotes() []DepartmentNote {
	return []DepartmentNote{
		{Name: "medical", Keywords: []string{"medical", "mbbs", "bds", "bpharm", "nursing", "மருத்துவம்"},
			Text: "🩺 For Medical courses, admission is through NEET (National Eligibility cum Entrance Test)."},
		{Name: "engineering", Keywords: []string{"engineering", "cse", "eee", "ece"}, Fuzzy: true,
			Text: "🛠️ For Engineering (B.E/B.Tech), admission is based on JEE / TNEA counselling."},
		{Name: "mba", Keywords: []string{"mba", "management"},
			Text: "📊 For MBA admission:<br>" +
				"• Entrance exam conducted by SRM<br>" +
				"• OR valid scores from CAT, MAT, XAT, or TANCET"},
		{Name: "law", Keywords: []string{"law", "llb"},
			Text: "⚖️ For Law courses, admission is usually through CLAT."},
		{Name: "architecture", Keywords: []string{"architecture", "barch", "m.arch"},
			Text: "🏛 For Architecture, admission is based on NATA."},
		{Name: "arts_science", Keywords: []string{"arts", "science", "bcom", "bsc"},
			Text: "📚 For Arts & Science courses, admission is usually merit-based (12th marks)."},
	}
}
