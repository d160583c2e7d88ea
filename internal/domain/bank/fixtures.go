package bank

// defaultBanks is the partner catalogue served by the API.
func defaultBanks() []Bank {
	return []Bank{
		{
			ID:   "sbi",
			Name: "State Bank of India",
			Logo: "https://images.pexels.com/photos/4386431/pexels-photo-4386431.jpeg?auto=compress&cs=tinysrgb&w=100",
			Loans: map[Product]LoanProduct{
				ProductPersonal: {
					InterestType:    "fixed",
					InterestRange:   Range{Min: 10.5, Max: 12.5},
					PrincipalLimits: Range{Min: 100000, Max: 2000000},
					TenureRange:     Range{Min: 12, Max: 72},
					ProcessingFee:   ProcessingFee{Type: FeePercentage, Value: 1.5},
					Features:        []string{"No collateral required", "Quick disbursement", "Minimal documentation", "No prepayment charges"},
					Eligibility:     []string{"Age: 21-60 years", "Minimum income: ₹25,000 per month", "Employment: 2+ years experience", "Credit score: 700+"},
				},
				ProductHome: {
					InterestType:    "floating",
					InterestRange:   Range{Min: 6.9, Max: 7.55},
					PrincipalLimits: Range{Min: 1000000, Max: 50000000},
					TenureRange:     Range{Min: 60, Max: 360},
					ProcessingFee:   ProcessingFee{Type: FeePercentage, Value: 0.35},
					Features:        []string{"Linked to repo rate", "Special rates for women borrowers", "Balance transfer facility", "Part payment facility"},
					Eligibility:     []string{"Age: 21-70 years", "Minimum income: ₹50,000 per month", "Employment: 3+ years experience", "Credit score: 750+"},
				},
				ProductAuto: {
					InterestType:    "fixed",
					InterestRange:   Range{Min: 7.7, Max: 8.8},
					PrincipalLimits: Range{Min: 100000, Max: 10000000},
					TenureRange:     Range{Min: 12, Max: 84},
					ProcessingFee:   ProcessingFee{Type: FeePercentage, Value: 0.5},
					Features:        []string{"Up to 90% financing", "Quick approval", "Flexible tenure options", "No hidden charges"},
					Eligibility:     []string{"Age: 21-65 years", "Minimum income: ₹30,000 per month", "Employment: 2+ years experience", "Credit score: 700+"},
				},
			},
			Branches: []Branch{
				{ID: "sbi-001", BankID: "sbi", Name: "SBI Main Branch Mumbai", Address: "123, Nariman Point", City: "Mumbai", State: "Maharashtra", Pincode: "400021", Phone: "022-12345678", Location: Location{Lat: 18.9220, Lng: 72.8347}, WorkingHours: "10:00 AM - 4:00 PM"},
				{ID: "sbi-002", BankID: "sbi", Name: "SBI Andheri Branch", Address: "456, MIDC Andheri East", City: "Mumbai", State: "Maharashtra", Pincode: "400093", Phone: "022-87654321", Location: Location{Lat: 19.1136, Lng: 72.8697}, WorkingHours: "10:00 AM - 4:00 PM"},
			},
		},
		{
			ID:   "hdfc",
			Name: "HDFC Bank",
			Logo: "https://images.pexels.com/photos/4386339/pexels-photo-4386339.jpeg?auto=compress&cs=tinysrgb&w=100",
			Loans: map[Product]LoanProduct{
				ProductPersonal: {
					InterestType:    "fixed",
					InterestRange:   Range{Min: 10.25, Max: 12},
					PrincipalLimits: Range{Min: 100000, Max: 4000000},
					TenureRange:     Range{Min: 12, Max: 60},
					ProcessingFee:   ProcessingFee{Type: FeePercentage, Value: 1.5},
					Features:        []string{"Instant approval", "Digital documentation", "Flexible repayment options", "Top-up facility available"},
					Eligibility:     []string{"Age: 21-60 years", "Minimum income: ₹30,000 per month", "Employment: 2+ years experience", "Credit score: 750+"},
				},
				ProductHome: {
					InterestType:    "floating",
					InterestRange:   Range{Min: 6.95, Max: 7.6},
					PrincipalLimits: Range{Min: 1500000, Max: 100000000},
					TenureRange:     Range{Min: 36, Max: 360},
					ProcessingFee:   ProcessingFee{Type: FeePercentage, Value: 0.5},
					Features:        []string{"Repo rate linked", "Step-up EMI option", "Property search services", "Home insurance bundled"},
					Eligibility:     []string{"Age: 21-70 years", "Minimum income: ₹60,000 per month", "Employment: 3+ years experience", "Credit score: 750+"},
				},
				ProductAuto: {
					InterestType:    "fixed",
					InterestRange:   Range{Min: 7.65, Max: 8.75},
					PrincipalLimits: Range{Min: 100000, Max: 15000000},
					TenureRange:     Range{Min: 12, Max: 84},
					ProcessingFee:   ProcessingFee{Type: FeePercentage, Value: 0.5},
					Features:        []string{"Up to 100% financing", "Digital approval process", "Flexible EMI options", "Auto insurance bundled"},
					Eligibility:     []string{"Age: 21-65 years", "Minimum income: ₹35,000 per month", "Employment: 2+ years experience", "Credit score: 700+"},
				},
			},
			Branches: []Branch{
				{ID: "hdfc-001", BankID: "hdfc", Name: "HDFC Bank Fort Branch", Address: "789, Fort Area", City: "Mumbai", State: "Maharashtra", Pincode: "400001", Phone: "022-98765432", Location: Location{Lat: 18.9317, Lng: 72.8328}, WorkingHours: "9:30 AM - 4:30 PM"},
				{ID: "hdfc-002", BankID: "hdfc", Name: "HDFC Bank Bandra Branch", Address: "321, Linking Road, Bandra West", City: "Mumbai", State: "Maharashtra", Pincode: "400050", Phone: "022-23456789", Location: Location{Lat: 19.0596, Lng: 72.8295}, WorkingHours: "9:30 AM - 4:30 PM"},
			},
		},
	}
}
