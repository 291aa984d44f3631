package knowledge

func years(amounts ...string) []YearAmount {
	labels := []string{"1st year", "2nd year", "3rd year", "4th year", "5th year"}
	out := make([]YearAmount, len(amounts))
	for i, a := range amounts {
		out[i] = YearAmount{Year: labels[i], Amount: a}
	}
	return out
}

func feeTable() []Department {
	return []Department{
		{Name: "engineering", Courses: []Course{
			{Key: "eee", Fees: years("₹50,000", "₹45,000", "₹45,000", "₹45,000")},
			{Key: "ece", Fees: years("₹55,000", "₹50,000", "₹50,000", "₹50,000")},
			{Key: "cse", Fees: years("₹60,000", "₹55,000", "₹55,000", "₹55,000")},
			{Key: "civil", Fees: years("₹48,000", "₹45,000", "₹45,000", "₹45,000")},
			{Key: "mechanical", Fees: years("₹52,000", "₹48,000", "₹48,000", "₹48,000")},
		}},
		{Name: "arts", Courses: []Course{
			{Key: "bcom", Fees: years("₹20,000", "₹18,000", "₹18,000")},
			{Key: "bba", Fees: years("₹22,000", "₹20,000", "₹20,000")},
			{Key: "bsc tamil", Fees: years("₹15,000", "₹15,000", "₹15,000")},
			{Key: "bsc english", Fees: years("₹15,000", "₹15,000", "₹15,000")},
			{Key: "ba history", Fees: years("₹18,000", "₹17,000", "₹17,000")},
		}},
		{Name: "science", Courses: []Course{
			{Key: "bsc cs", Fees: years("₹25,000", "₹22,000", "₹22,000")},
			{Key: "bsc ca", Fees: years("₹27,000", "₹24,000", "₹24,000")},
			{Key: "bsc physics", Fees: years("₹23,000", "₹21,000", "₹21,000")},
			{Key: "bsc chemistry", Fees: years("₹23,000", "₹21,000", "₹21,000")},
			{Key: "bsc maths", Fees: years("₹20,000", "₹19,000", "₹19,000")},
		}},
		{Name: "medical", Courses: []Course{
			{Key: "mbbs", Fees: years("₹3,50,000", "₹3,25,000", "₹3,25,000", "₹3,25,000")},
			{Key: "bds", Fees: years("₹2,00,000", "₹1,80,000", "₹1,80,000", "₹1,80,000")},
			{Key: "bpharm", Fees: years("₹1,50,000", "₹1,25,000", "₹1,25,000", "₹1,25,000")},
			{Key: "bsc nursing", Fees: years("₹90,000", "₹80,000", "₹80,000", "₹80,000")},
		}},
		{Name: "law", Courses: []Course{
			{Key: "llb", Fees: years("₹70,000", "₹65,000", "₹65,000")},
			{Key: "ba llb", Fees: years("₹85,000", "₹80,000", "₹80,000", "₹80,000", "₹80,000")},
			{Key: "bba llb", Fees: years("₹90,000", "₹85,000", "₹85,000", "₹85,000", "₹85,000")},
		}},
		{Name: "architecture", Courses: []Course{
			{Key: "barch", Fees: years("₹1,25,000", "₹1,10,000", "₹1,10,000", "₹1,10,000", "₹1,10,000")},
			{Key: "m.arch", Fees: years("₹1,50,000", "₹1,25,000")},
		}},
	}
}
