package server

// Seed returns the built in development catalog, a handful of records in the
// shape of the Amazon SNAP product metadata
func Seed() []CatalogProduct {
	return []CatalogProduct{
		{ASIN: "0827229534", Title: "Patterns of Preaching: A Sermon Sampler", Group: "Book",
			Categories: []string{"Religion", "Christianity", "Clergy"}, AvgRating: 5, SalesRank: 396585},
		{ASIN: "0738700797", Title: "Candlemas: Feast of Flames", Group: "Book",
			Categories: []string{"Religion", "Earth-Based Religions", "Wicca"}, AvgRating: 4.5, SalesRank: 168596},
		{ASIN: "0486287785", Title: "World War II Allied Fighter Planes Trading Cards", Group: "Book",
			Categories: []string{"History", "Military", "World War II"}, SalesRank: 1270652},
		{ASIN: "0842328327", Title: "Life Application Bible Commentary: 1 and 2 Timothy and Titus", Group: "Book",
			Categories: []string{"Religion", "Bible", "Commentaries"}, AvgRating: 4, SalesRank: 631289},
		{ASIN: "1577943082", Title: "Prayers That Avail Much for Business: Executive", Group: "Book",
			Categories: []string{"Religion", "Prayer", "Business"}, SalesRank: 455160},
		{ASIN: "1559362022", Title: "Wake Up and Smell the Coffee", Group: "Book",
			Categories: []string{"Drama", "Comedy"}, AvgRating: 5, SalesRank: 518927},
		{ASIN: "B00004CXX9", Title: "The Cheese Board: Artisan Cheddar and Blue", Group: "Book",
			Categories: []string{"Cooking", "Cheese", "Entertaining"}, AvgRating: 4.5, SalesRank: 21034},
		{ASIN: "B00005JNSP", Title: "New York Cheesecake Baking Masterclass", Group: "DVD",
			Categories: []string{"Cooking", "Baking", "Desserts"}, AvgRating: 3.5, SalesRank: 8841},
		{ASIN: "B000002UQI", Title: "Kind of Blue", Group: "Music",
			Categories: []string{"Jazz", "Cool Jazz"}, AvgRating: 5, SalesRank: 112},
		{ASIN: "B00000JQWV", Title: "Jazz for a Rainy Afternoon", Group: "Music",
			Categories: []string{"Jazz", "Compilations"}, AvgRating: 4, SalesRank: 40211},
		{ASIN: "6305350221", Title: "The Cheese Shop Sketches", Group: "Video",
			Categories: []string{"Comedy", "Television"}, AvgRating: 2.5, SalesRank: 77012},
		{ASIN: "B00006FXQ0", Title: "Dessert Classics: Tarts, Pies and Cheesecakes", Group: "Book",
			Categories: []string{"Cooking", "Desserts", "Baking"}, SalesRank: 90233},
	}
}
