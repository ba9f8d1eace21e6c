package classification

// Метки категорий магазинов
const (
	StoreFastFood    = "fast-food"
	StoreDiscount    = "discount"
	StoreProximity   = "proximite"
	StoreSupermarket = "supermarche"
	StoreBakery      = "boulangerie"
	StoreCafe        = "cafe"
	StorePharmacy    = "pharmacie"
	StoreFuel        = "carburant"
	StoreOther       = "autre"
)

// StoreRules возвращает таблицу правил для категоризации магазинов по брендам.
// Ярусы сверху вниз: сети фаст-фуда, дискаунтеры, магазины у дома, полные
// супермаркеты (вместе с родовыми терминами таксономий карт), затем
// специализированные категории. Внутри яруса порядок слов не играет роли.
func StoreRules() RuleSet {
	return RuleSet{
		{Label: StoreFastFood, Keywords: []string{
			"mcdonald", "mcdo", "quick", "burger king", "kfc", "subway",
			"pizza hut", "domino", "panos", "exki", "o'tacos",
			"friterie", "frituur", "snack", "kebab",
			"fast_food", "meal_takeaway", "restaurant",
		}},
		{Label: StoreDiscount, Keywords: []string{
			"aldi", "lidl", "norma", "netto",
		}},
		{Label: StoreProximity, Keywords: []string{
			"proxy", "shop & go", "shop&go", "carrefour express",
			"delhaize shop", "okay", "spar express", "louis delhaize",
			"night shop", "nachtwinkel", "vival", "8 a huit",
			"convenience_store", "epicerie de nuit",
		}},
		{Label: StoreSupermarket, Keywords: []string{
			"delhaize", "carrefour", "colruyt", "intermarche", "match",
			"smatch", "cora", "spar", "albert heijn", "jumbo", "bio-planet",
			"bioplanet", "renmans",
			"supermarche", "supermarket", "supermarkt", "hypermarche",
			"grocery_or_supermarket", "grocery", "epicerie",
		}},
		{Label: StoreBakery, Keywords: []string{
			"boulangerie", "bakery", "bakkerij", "patisserie", "delifrance",
			"paul",
		}},
		{Label: StoreCafe, Keywords: []string{
			"starbucks", "coffee", "cafe", "koffie", "salon de the",
		}},
		{Label: StorePharmacy, Keywords: []string{
			"pharmacie", "pharmacy", "apotheek", "multipharma",
		}},
		{Label: StoreFuel, Keywords: []string{
			"total", "shell", "q8", "esso", "lukoil", "dats 24",
			"gas_station", "station-service", "tankstation", "essence",
		}},
	}
}

// NewBrandDetector классификатор принадлежности магазина к розничной сети.
// Специализация общего классификатора, привязанная к таблице StoreRules.
func NewBrandDetector() *Classifier {
	return NewClassifier(StoreRules(), StoreOther)
}
