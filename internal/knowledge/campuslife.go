package knowledge

func campusLife() []CampusBlock {
	return []CampusBlock{
		{
			Name:     "clubs",
			Title:    "<b>🏛 Clubs at AIT:</b><br><br>",
			Keywords: []string{"club", "clubs", "student club", "society", "கிளப்புகள்"},
			Details: "SRM Institude Of Technology hosts a diverse range of student clubs and professional chapters " +
				"promoting holistic development and extracurricular engagement.<br><br>" +
				"📌 Active Clubs:<br>" +
				"• Rotaract Club – Social service and community projects.<br>" +
				"• Fashion Club – Fashion shows and creative styling.<br>" +
				"• Literature Club – Creative writing, debates, and poetry.<br>" +
				"• Social Club – Social awareness campaigns and events.<br>" +
				"• Self Defense Club – Martial arts and safety workshops.<br>" +
				"• GeeksforGeeks SRMIST – Coding and programming workshops.<br>" +
				"• CENTINEL – Cybersecurity training with domains like SoftwareGeeks, CyberSquad, and WebGen.<br><br>" +
				"💡 <b style='color:red;'>How to Join:</b> Visit the Student Affairs Office or the respective club stall during the Club Signup Week.",
		},
		{
			Name:     "cultural",
			Title:    "<b>🎭 Cultural & Annual Fests at AIT:</b><br><br>",
			Keywords: []string{"cultural", "fest", "annual day", "milan", "rubaroo", "கலை நிகழ்ச்சி"},
			Details: "🎭 SRM Institude Of Technology (AIT)hosts vibrant cultural events and annual fests that bring together students from all campuses.<br><br>" +
				"📌 Major Cultural Events:<br>" +
				"• Milan – Annual cultural extravaganza with music, dance, and theatre.<br>" +
				"• Rubaroo – Freshers cultural night.<br>" +
				"• Talent Hunt – Platform for students to showcase creative talents.<br>" +
				"• Department Fests – Each department hosts its own cultural & technical events.<br><br>" +
				"💡 <b style='color:red;'>How to Participate:</b> Register online through the cultural committee or contact your department cultural coordinator.",
		},
		{
			Name:     "sports",
			Title:    "<b>🏅 Sports at AIT:</b><br><br>",
			Keywords: []string{"sports", "games", "athletics", "coach", "football", "cricket", "basketball", "விளையாட்டு"},
			Details: "🏅 SRM Institude Of Technology (AIT)offers excellent sports facilities and actively promotes athletic activities.<br><br>" +
				"📌 Available Sports:<br>" +
				"• Cricket – Coach: Mr. Rajesh Kumar<br>" +
				"• Football – Coach: Mr. Suresh Reddy<br>" +
				"• Basketball – Coach: Ms. Priya Sharma<br>" +
				"• Badminton – Coach: Mr. Arvind Singh<br>" +
				"• Athletics & Track – Coach: Mr. Manoj Nair<br><br>" +
				"💡 Facilities: Indoor stadium, outdoor tracks, gymnasiums, swimming pool, tennis courts.<br>" +
				"💡 <b style='color:red;'>How to Join:</b> Contact the Sports Department Office or the respective coach.",
		},
	}
}
