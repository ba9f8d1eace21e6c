package dataset

// Default возвращает встроенный курируемый набор бельгийских магазинов.
// Набор умышленно небольшой: это страховка на случай недоступности
// внешних провайдеров, а не реестр всех магазинов страны. Полный набор
// загружается из базы (cmd/import_stores) и замещает встроенный.
func Default() *Dataset {
	return New(defaultStores)
}

var defaultStores = []Store{
	{
		Name: "Delhaize Molière", Brand: "Delhaize",
		Address: "Chaussée de Waterloo 706", City: "Bruxelles", PostalCode: "1180",
		Lat: 50.8123, Lon: 4.3618, Phone: "+32 2 340 25 50",
		Hours: map[string]string{
			"monday": "08:00-20:00", "tuesday": "08:00-20:00", "wednesday": "08:00-20:00",
			"thursday": "08:00-20:00", "friday": "08:00-21:00", "saturday": "08:00-20:00",
			"sunday": "08:00-13:00",
		},
	},
	{
		Name: "AD Delhaize Flagey", Brand: "Delhaize",
		Address: "Place Eugène Flagey 2", City: "Ixelles", PostalCode: "1050",
		Lat: 50.8274, Lon: 4.3723,
	},
	{
		Name: "Proxy Delhaize Sablon", Brand: "Delhaize",
		Address: "Rue de la Régence 2", City: "Bruxelles", PostalCode: "1000",
		Lat: 50.8418, Lon: 4.3562,
	},
	{
		Name: "Carrefour Market Louise", Brand: "Carrefour",
		Address: "Avenue Louise 7", City: "Bruxelles", PostalCode: "1050",
		Lat: 50.8385, Lon: 4.3598, Phone: "+32 2 511 62 22",
	},
	{
		Name: "Carrefour Express Schuman", Brand: "Carrefour",
		Address: "Rond-point Schuman 9", City: "Bruxelles", PostalCode: "1040",
		Lat: 50.8427, Lon: 4.3814,
	},
	{
		Name: "Carrefour Hypermarché Evere", Brand: "Carrefour",
		Address: "Avenue Léon Grosjean 20", City: "Evere", PostalCode: "1140",
		Lat: 50.8706, Lon: 4.4093,
	},
	{
		Name: "Colruyt Anderlecht", Brand: "Colruyt",
		Address: "Boulevard Industriel 148", City: "Anderlecht", PostalCode: "1070",
		Lat: 50.8215, Lon: 4.2841, Phone: "+32 2 520 08 95",
		Hours: map[string]string{
			"monday": "08:30-20:00", "tuesday": "08:30-20:00", "wednesday": "08:30-20:00",
			"thursday": "08:30-20:00", "friday": "08:30-21:00", "saturday": "08:30-19:00",
			"sunday": "Fermé",
		},
	},
	{
		Name: "OKay Etterbeek", Brand: "Colruyt",
		Address: "Chaussée de Wavre 475", City: "Etterbeek", PostalCode: "1040",
		Lat: 50.8313, Lon: 4.3912,
	},
	{
		Name: "Bio-Planet Gent", Brand: "Colruyt",
		Address: "Kortrijksesteenweg 1133", City: "Gent", PostalCode: "9051",
		Lat: 51.0205, Lon: 3.6872,
	},
	{
		Name: "Aldi Schaerbeek", Brand: "Aldi",
		Address: "Chaussée de Helmet 241", City: "Schaerbeek", PostalCode: "1030",
		Lat: 50.8676, Lon: 4.3871,
	},
	{
		Name: "Aldi Gent Zuid", Brand: "Aldi",
		Address: "Woodrow Wilsonplein 4", City: "Gent", PostalCode: "9000",
		Lat: 51.0486, Lon: 3.7285,
	},
	{
		Name: "Lidl Ixelles", Brand: "Lidl",
		Address: "Chaussée d'Ixelles 298", City: "Ixelles", PostalCode: "1050",
		Lat: 50.8269, Lon: 4.3705,
	},
	{
		Name: "Lidl Antwerpen Centraal", Brand: "Lidl",
		Address: "De Keyserlei 49", City: "Antwerpen", PostalCode: "2018",
		Lat: 51.2167, Lon: 4.4163,
	},
	{
		Name: "Intermarché Nivelles", Brand: "Intermarché",
		Address: "Chaussée de Mons 18A", City: "Nivelles", PostalCode: "1400",
		Lat: 50.5974, Lon: 4.3185,
	},
	{
		Name: "Spar Woluwe", Brand: "Spar",
		Address: "Rue Saint-Lambert 8", City: "Woluwe-Saint-Lambert", PostalCode: "1200",
		Lat: 50.8436, Lon: 4.4287,
	},
	{
		Name: "Cora Woluwe", Brand: "Cora",
		Address: "Avenue Marcel Thiry 214", City: "Woluwe-Saint-Lambert", PostalCode: "1200",
		Lat: 50.8497, Lon: 4.4512,
	},
	{
		Name: "Match Liège Centre", Brand: "Match",
		Address: "Rue de la Cathédrale 85", City: "Liège", PostalCode: "4000",
		Lat: 50.6412, Lon: 5.5718,
	},
	{
		Name: "Smatch Namur", Brand: "Match",
		Address: "Rue de Fer 87", City: "Namur", PostalCode: "5000",
		Lat: 50.4656, Lon: 4.8651,
	},
	{
		// Запись без координат: Suggest сортирует ее последней,
		// Resolve подставляет координаты центра Брюсселя
		Name: "Louis Delhaize Gare Centrale", Brand: "Louis Delhaize",
		Address: "Cantersteen 1", City: "Bruxelles", PostalCode: "1000",
	},
	{
		Name: "Okay Compact Brugge", Brand: "Colruyt",
		Address: "Steenstraat 75", City: "Brugge", PostalCode: "8000",
		Lat: 51.2077, Lon: 3.2241,
	},
}
