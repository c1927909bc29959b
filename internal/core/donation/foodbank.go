package donation

// Coordinates 經緯度
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FoodBank 食物銀行資訊
type FoodBank struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	ZipCode       string      `json:"zip_code"`
	Phone         string      `json:"phone"`
	Hours         string      `json:"hours"`
	AcceptedItems []string    `json:"accepted_items"`
	Coordinates   Coordinates `json:"coordinates"`
}

var foodBanks = []FoodBank{
	{
		ID:            "1",
		Name:          "Foodbank of Southeastern Virginia",
		Address:       "800 Tidewater Drive",
		City:          "Norfolk",
		State:         "VA",
		ZipCode:       "23504",
		Phone:         "(757) 787-2557",
		Hours:         "Mon-Fri: 8:30 AM - 4:30 PM",
		AcceptedItems: []string{"canned goods", "dry goods", "pasta", "rice", "cereal", "peanut butter", "canned proteins"},
		Coordinates:   Coordinates{Lat: 36.8508, Lng: -76.2859},
	},
	{
		ID:            "2",
		Name:          "Virginia Beach Community Food Pantry",
		Address:       "249 Central Drive",
		City:          "Virginia Beach",
		State:         "VA",
		ZipCode:       "23454",
		Phone:         "(757) 425-0970",
		Hours:         "Tue, Thu: 10 AM - 2 PM",
		AcceptedItems: []string{"non-perishables", "canned vegetables", "canned fruit", "pasta", "rice", "cereal"},
		Coordinates:   Coordinates{Lat: 36.7682, Lng: -76.0526},
	},
	{
		ID:            "3",
		Name:          "St. Mary's Food Pantry",
		Address:       "412 City Hall Ave",
		City:          "Norfolk",
		State:         "VA",
		ZipCode:       "23510",
		Phone:         "(757) 622-5625",
		Hours:         "Wed: 9 AM - 12 PM, Sat: 9 AM - 11 AM",
		AcceptedItems: []string{"canned goods", "boxed meals", "pasta", "rice", "beans", "shelf-stable milk"},
		Coordinates:   Coordinates{Lat: 36.8508, Lng: -76.2859},
	},
	{
		ID:            "4",
		Name:          "Chesapeake Care Center",
		Address:       "1028 Greenbrier Circle",
		City:          "Chesapeake",
		State:         "VA",
		ZipCode:       "23320",
		Phone:         "(757) 547-0125",
		Hours:         "Mon-Fri: 9 AM - 3 PM",
		AcceptedItems: []string{"all non-perishables", "baby food", "diapers", "personal care items"},
		Coordinates:   Coordinates{Lat: 36.7682, Lng: -76.2275},
	},
	{
		ID:            "5",
		Name:          "Hope House Foundation",
		Address:       "4887 Haygood Rd",
		City:          "Virginia Beach",
		State:         "VA",
		ZipCode:       "23455",
		Phone:         "(757) 491-5800",
		Hours:         "Mon-Sat: 10 AM - 6 PM",
		AcceptedItems: []string{"canned proteins", "pasta", "rice", "cooking oil", "spices", "hygiene products"},
		Coordinates:   Coordinates{Lat: 36.8429, Lng: -76.0901},
	},
}

// FoodBanks 回傳食物銀行清單的複本
func FoodBanks() []FoodBank {
	out := make([]FoodBank, len(foodBanks))
	for i, fb := range foodBanks {
		fb.AcceptedItems = append([]string(nil), fb.AcceptedItems...)
		out[i] = fb
	}
	return out
}

// FoodBankByID 依 ID 查詢食物銀行
func FoodBankByID(id string) (FoodBank, bool) {
	for _, fb := range FoodBanks() {
		if fb.ID == id {
			return fb, true
		}
	}
	return FoodBank{}, false
}
