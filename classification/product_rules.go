package classification

// Метки категорий товаров
const (
	ProductBeverages     = "boissons"
	ProductBiscuits      = "biscuits"
	ProductSpreads       = "pates-a-tartiner"
	ProductConfectionery = "confiserie"
	ProductSaltySnacks   = "snacks-sales"
	ProductCereals       = "cereales"
	ProductDairy         = "produits-laitiers"
	ProductMeatFish      = "viande-poisson"
	ProductProduce       = "fruits-legumes"
	ProductBakery        = "boulangerie"
	ProductFrozen        = "surgeles"
	ProductHygiene       = "hygiene-entretien"
	ProductBaby          = "bebe"
	ProductPet           = "animaux"
	ProductFood          = "alimentaire"
)

// ProductRules возвращает таблицу правил для категоризации товаров.
// Порядок ярусов разрешает пересечения ключевых слов: "nutella" попадает в
// pates-a-tartiner, хотя слова какао/шоколада есть и в confiserie ниже;
// "beurre de cacahuete" — тоже намазка, а не снек, по той же причине.
func ProductRules() RuleSet {
	return RuleSet{
		{Label: ProductBeverages, Keywords: []string{
			// "cola" намеренно отсутствует: это подстрока слова "chocolat"
			"coca", "pepsi", "fanta", "sprite", "ice tea",
			"limonade", "jus de", "jus d'", "eau minerale", "eau petillante",
			"eau plate", "spa reine", "evian", "vittel", "chaudfontaine",
			"schweppes", "red bull", "sirop de grenadine", "boisson",
		}},
		{Label: ProductBiscuits, Keywords: []string{
			"biscuit", "cookie", "speculoos", "lotus", "petit beurre",
			"gaufre", "wafer", "prince", "oreo", "madeleine",
		}},
		{Label: ProductSpreads, Keywords: []string{
			"nutella", "pate a tartiner", "tartiner", "confiture", "miel",
			"beurre de cacahuete", "peanut butter", "choco pasta",
		}},
		{Label: ProductConfectionery, Keywords: []string{
			"chocolat", "cacao", "bonbon", "praline", "haribo", "sucette",
			"chewing", "kinder", "cote d'or", "leonidas", "twix", "mars",
			"snickers", "kitkat", "dragee",
		}},
		{Label: ProductSaltySnacks, Keywords: []string{
			"chips", "crisps", "tuc", "bretzel", "cacahuete", "nacho",
			"popcorn", "aperitif",
		}},
		{Label: ProductCereals, Keywords: []string{
			"cereale", "muesli", "granola", "cornflakes", "corn flakes",
			"special k", "flocons d'avoine", "avoine",
		}},
		{Label: ProductDairy, Keywords: []string{
			"lait", "yaourt", "yoghurt", "fromage", "beurre",
			"creme fraiche", "kaas", "melk", "danone", "activia", "gouda",
			"emmental", "mozzarella",
		}},
		{Label: ProductMeatFish, Keywords: []string{
			"viande", "poulet", "boeuf", "porc", "jambon", "saucisse",
			"steak", "hache", "charcuterie", "poisson", "saumon", "thon",
			"crevette", "vlees", "kip",
		}},
		{Label: ProductProduce, Keywords: []string{
			"pomme", "banane", "tomate", "salade", "carotte", "legume",
			"fruit", "oignon", "courgette", "fraise", "poire", "raisin",
		}},
		{Label: ProductBakery, Keywords: []string{
			"pain", "baguette", "croissant", "brioche", "viennoiserie",
			"brood",
		}},
		{Label: ProductFrozen, Keywords: []string{
			"surgele", "congele", "frozen", "glace", "diepvries",
		}},
		{Label: ProductHygiene, Keywords: []string{
			"shampooing", "savon", "dentifrice", "deodorant", "lessive",
			"nettoyant", "javel", "papier toilette", "essuie-tout",
			"liquide vaisselle", "detergent",
		}},
		{Label: ProductBaby, Keywords: []string{
			"bebe", "couche", "pampers", "nutrilon", "petit pot",
		}},
		{Label: ProductPet, Keywords: []string{
			"croquette", "whiskas", "pedigree", "sheba", "litiere",
			"pour chat", "pour chien",
		}},
	}
}

// NewProductClassifier классификатор категорий товаров
func NewProductClassifier() *Classifier {
	return NewClassifier(ProductRules(), ProductFood)
}
