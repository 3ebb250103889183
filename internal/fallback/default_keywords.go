package fallback

// DefaultKeywords returns the built-in keyword table. Order matters:
// more specific categories come before broad ones so that e.g. a
// "grocery delivery" hits Groceries before a generic "delivery" could
// land elsewhere.
func DefaultKeywords() []CategoryKeywords {
	return []CategoryKeywords{
		{
			Category: "Groceries",
			Keywords: []string{
				"bigbasket", "blinkit", "zepto", "dmart", "grofers",
				"grocery", "groceries", "supermarket", "vegetables",
			},
		},
		{
			Category: "Food & Dining",
			Keywords: []string{
				"swiggy", "zomato", "restaurant", "cafe", "coffee",
				"pizza", "burger", "biryani", "mcdonald", "starbucks",
				"kfc", "dominos", "food", "dinner", "lunch", "breakfast",
			},
		},
		{
			Category: "Transportation",
			Keywords: []string{
				"uber", "ola", "rapido", "metro", "petrol", "diesel",
				"fuel", "parking", "toll", "cab", "taxi", "bus",
			},
		},
		{
			Category: "Travel",
			Keywords: []string{
				"makemytrip", "goibibo", "irctc", "airline", "flight",
				"hotel", "airbnb", "oyo", "train ticket", "holiday",
			},
		},
		{
			Category: "Shopping",
			Keywords: []string{
				"amazon", "flipkart", "myntra", "ajio", "nykaa",
				"shopping", "mall", "store", "clothing", "electronics",
			},
		},
		{
			Category: "Bills & Utilities",
			Keywords: []string{
				"electricity", "water bill", "gas bill", "broadband",
				"recharge", "airtel", "jio", "vodafone", "postpaid",
				"prepaid", "utility", "bill",
			},
		},
		{
			Category: "Entertainment",
			Keywords: []string{
				"netflix", "spotify", "hotstar", "prime video",
				"bookmyshow", "movie", "cinema", "gaming", "concert",
			},
		},
		{
			Category: "Health & Fitness",
			Keywords: []string{
				"pharmacy", "apollo", "hospital", "clinic", "doctor",
				"gym", "fitness", "medicine", "medical", "cult",
			},
		},
		{
			Category: "Education",
			Keywords: []string{
				"udemy", "coursera", "tuition", "school fee", "college",
				"course", "textbook", "coaching", "exam fee",
			},
		},
		{
			Category: "Personal Care",
			Keywords: []string{
				"salon", "spa", "haircut", "barber", "grooming",
			},
		},
		{
			Category: "Investments",
			Keywords: []string{
				"zerodha", "groww", "mutual fund", "sip", "stocks",
				"fixed deposit", "gold", "investment",
			},
		},
	}
}
