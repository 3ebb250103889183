// Package seed provides the fixed cold-start training catalogue. When a
// user has no persisted model, the engine trains its first native model
// from these examples so predictions work from the very first call.
package seed

import "github.com/smartbudget/categorizer/internal/model"

// Catalogue returns the seed training examples. Every canonical category
// is covered so the first trained model can emit any of them. ID, user
// and timestamp fields are filled in by the engine at initialization.
func Catalogue() []model.TrainingExample {
	return []model.TrainingExample{
		// Food & Dining
		{Description: "Swiggy food delivery bangalore biryani", Merchant: "Swiggy", Amount: 450, Category: "Food & Dining"},
		{Description: "Zomato restaurant dinner pizza", Merchant: "Zomato", Amount: 680, Category: "Food & Dining"},
		{Description: "McDonald burger meal combo", Merchant: "McDonalds", Amount: 350, Category: "Food & Dining"},
		{Description: "Starbucks coffee latte morning", Merchant: "Starbucks", Amount: 320, Category: "Food & Dining"},
		{Description: "KFC chicken bucket family meal", Merchant: "KFC", Amount: 750, Category: "Food & Dining"},

		// Groceries
		{Description: "BigBasket grocery vegetables fruits", Merchant: "BigBasket", Amount: 2500, Category: "Groceries"},
		{Description: "DMart weekly shopping household", Merchant: "DMart", Amount: 3200, Category: "Groceries"},
		{Description: "Blinkit instant delivery milk bread", Merchant: "Blinkit", Amount: 650, Category: "Groceries"},
		{Description: "Supermarket monthly groceries atta", Merchant: "Supermarket", Amount: 2800, Category: "Groceries"},

		// Transportation
		{Description: "Uber ride airport cab", Merchant: "Uber", Amount: 650, Category: "Transportation"},
		{Description: "Ola cab office commute", Merchant: "Ola", Amount: 280, Category: "Transportation"},
		{Description: "Petrol pump fuel car", Merchant: "IOCL", Amount: 2500, Category: "Transportation"},
		{Description: "Metro card recharge travel", Merchant: "Metro", Amount: 800, Category: "Transportation"},

		// Shopping
		{Description: "Amazon online electronics order", Merchant: "Amazon", Amount: 3500, Category: "Shopping"},
		{Description: "Flipkart mobile phone purchase", Merchant: "Flipkart", Amount: 18000, Category: "Shopping"},
		{Description: "Myntra clothing fashion", Merchant: "Myntra", Amount: 2200, Category: "Shopping"},
		{Description: "Nykaa beauty cosmetics", Merchant: "Nykaa", Amount: 1500, Category: "Shopping"},

		// Entertainment
		{Description: "Netflix subscription streaming", Merchant: "Netflix", Amount: 649, Category: "Entertainment"},
		{Description: "BookMyShow movie tickets", Merchant: "BookMyShow", Amount: 600, Category: "Entertainment"},
		{Description: "Spotify music premium", Merchant: "Spotify", Amount: 119, Category: "Entertainment"},

		// Bills & Utilities
		{Description: "Electricity bill payment monthly", Merchant: "BSES", Amount: 1800, Category: "Bills & Utilities"},
		{Description: "Mobile recharge Airtel prepaid", Merchant: "Airtel", Amount: 499, Category: "Bills & Utilities"},
		{Description: "Internet broadband bill", Merchant: "Jio", Amount: 999, Category: "Bills & Utilities"},

		// Health & Fitness
		{Description: "Gym membership monthly fitness", Merchant: "Fitness First", Amount: 3000, Category: "Health & Fitness"},
		{Description: "Doctor consultation medical", Merchant: "Clinic", Amount: 800, Category: "Health & Fitness"},
		{Description: "Apollo pharmacy medicines", Merchant: "Apollo", Amount: 950, Category: "Health & Fitness"},

		// Education
		{Description: "Udemy course online learning", Merchant: "Udemy", Amount: 499, Category: "Education"},
		{Description: "Book store textbooks purchase", Merchant: "Crossword", Amount: 1200, Category: "Education"},
		{Description: "Tuition fees coaching", Merchant: "Coaching", Amount: 8000, Category: "Education"},

		// Travel
		{Description: "MakeMyTrip flight booking goa", Merchant: "MakeMyTrip", Amount: 12000, Category: "Travel"},
		{Description: "IRCTC train ticket reservation", Merchant: "IRCTC", Amount: 1500, Category: "Travel"},
		{Description: "OYO hotel room weekend stay", Merchant: "OYO", Amount: 2400, Category: "Travel"},

		// Personal Care
		{Description: "Salon haircut grooming", Merchant: "Lakme Salon", Amount: 700, Category: "Personal Care"},
		{Description: "Spa massage relaxation", Merchant: "O2 Spa", Amount: 2000, Category: "Personal Care"},

		// Investments
		{Description: "Zerodha mutual fund SIP", Merchant: "Zerodha", Amount: 5000, Category: "Investments"},
		{Description: "Groww stocks equity purchase", Merchant: "Groww", Amount: 10000, Category: "Investments"},

		// Other
		{Description: "ATM cash withdrawal", Merchant: "HDFC ATM", Amount: 2000, Category: "Other"},
		{Description: "Cheque deposit branch visit", Merchant: "Bank", Amount: 5000, Category: "Other"},
	}
}
