package catalog

import "stylemateapi/models"

func price(v float64) *float64 {
	return &v
}

func score(v int) *int {
	return &v
}

var outfitThemes = []string{"professional", "casual", "party", "date", "interview", "wedding", "vacation", "work"}

var garmentStyles = []string{"realistic", "sketch", "flat-design", "3d-render", "wireframe"}

var capsuleThemes = []models.CapsuleTheme{
	{ID: "professional", Name: "Professional", Description: "Workwear and business casual essentials"},
	{ID: "casual", Name: "Casual", Description: "Everyday comfort and versatile style pieces"},
	{ID: "minimalist", Name: "Minimalist", Description: "Simple, clean lines with maximum versatility"},
	{ID: "bohemian", Name: "Bohemian", Description: "Free-spirited, artistic, and expressive styles"},
	{ID: "athleisure", Name: "Athleisure", Description: "Active lifestyle meets fashionable comfort"},
	{ID: "travel", Name: "Travel", Description: "Packable, wrinkle-resistant, multi-purpose items"},
}

var outfitAliases = map[string]string{
	"professional": OutfitBucketWork,
	"interview":    OutfitBucketWork,
}

var outfitBuckets = map[string][]OutfitTemplate{
	OutfitBucketWork: {
		{
			Name: "Professional Power Look",
			Items: []models.WardrobeItem{
				{Name: "White Button-Down Shirt", Category: models.CategoryTop, Color: "white", Price: price(49.99)},
				{Name: "Black Blazer", Category: models.CategoryOuterwear, Color: "black", Price: price(89.99)},
				{Name: "Black Trousers", Category: models.CategoryBottom, Color: "black", Price: price(65.99)},
				{Name: "Black Heels", Category: models.CategoryShoes, Color: "black", Price: price(89.99)},
			},
			Description: "Classic professional look for the office",
			OccasionFit: "Perfect for important meetings, presentations, and formal office environments.",
		},
		{
			Name: "Polished Office Classic",
			Items: []models.WardrobeItem{
				{Name: "Navy Blouse", Category: models.CategoryTop, Color: "navy", Price: price(45.99)},
				{Name: "Gray Pencil Skirt", Category: models.CategoryBottom, Color: "gray", Price: price(55.99)},
				{Name: "Nude Pumps", Category: models.CategoryShoes, Color: "nude", Price: price(75.00)},
			},
			Description: "Elegant work outfit with a feminine touch",
			OccasionFit: "Works for everyday office days and client-facing meetings.",
		},
	},
	OutfitBucketCasual: {
		{
			Name: "Casual Chic",
			Items: []models.WardrobeItem{
				{Name: "Striped T-Shirt", Category: models.CategoryTop, Color: "white/blue", Price: price(25.99)},
				{Name: "Dark Wash Jeans", Category: models.CategoryBottom, Color: "blue", Price: price(79.99)},
				{Name: "White Sneakers", Category: models.CategoryShoes, Color: "white", Price: price(65.00)},
			},
			Description: "Comfortable and stylish for everyday wear",
			OccasionFit: "Great for weekend errands, casual meet-ups, and relaxed social events.",
		},
		{
			Name: "Sunny Day Out",
			Items: []models.WardrobeItem{
				{Name: "Floral Dress", Category: models.CategoryDress, Color: "multi", Price: price(59.99)},
				{Name: "Denim Jacket", Category: models.CategoryOuterwear, Color: "blue", Price: price(49.99)},
				{Name: "Sandals", Category: models.CategoryShoes, Color: "tan", Price: price(45.00)},
			},
			Description: "Perfect for a casual day out",
			OccasionFit: "Easy to wear for brunch, markets, and afternoon walks.",
		},
	},
	OutfitBucketDefault: {
		{
			Name: "Everyday Essentials",
			Items: []models.WardrobeItem{
				{Name: "Black T-Shirt", Category: models.CategoryTop, Color: "black", Price: price(29.99)},
				{Name: "Khaki Pants", Category: models.CategoryBottom, Color: "beige", Price: price(59.99)},
				{Name: "Canvas Sneakers", Category: models.CategoryShoes, Color: "white", Price: price(55.00)},
			},
			Description: "Versatile outfit that works for many occasions",
			OccasionFit: "A safe choice when the dress code is unclear.",
		},
	},
}

var capsuleWardrobe = []models.WardrobeItem{
	{ID: 1, Name: "White Button-Down Shirt", Category: models.CategoryTop, Color: "white", Price: price(49.99), VersatilityScore: score(10), EssentialReason: "Works with everything, perfect base layer"},
	{ID: 2, Name: "Black Blazer", Category: models.CategoryOuterwear, Color: "black", Price: price(89.99), VersatilityScore: score(9), EssentialReason: "Instantly elevates any outfit"},
	{ID: 3, Name: "Dark Wash Jeans", Category: models.CategoryBottom, Color: "blue", Price: price(79.99), VersatilityScore: score(8), EssentialReason: "Versatile for business casual days"},
	{ID: 4, Name: "Black Trousers", Category: models.CategoryBottom, Color: "black", Price: price(65.99), VersatilityScore: score(9), EssentialReason: "Essential for formal meetings"},
	{ID: 5, Name: "Little Black Dress", Category: models.CategoryDress, Color: "black", Price: price(79.99), VersatilityScore: score(8)},
	{ID: 6, Name: "White Sneakers", Category: models.CategoryShoes, Color: "white", Price: price(65.00), VersatilityScore: score(8)},
	{ID: 7, Name: "Black Heels", Category: models.CategoryShoes, Color: "black", Price: price(89.99), VersatilityScore: score(7)},
	{ID: 8, Name: "Statement Necklace", Category: models.CategoryAccessory, Color: "gold", Price: price(35.00), VersatilityScore: score(6)},
	{ID: 9, Name: "Tote Bag", Category: models.CategoryAccessory, Color: "brown", Price: price(59.99), VersatilityScore: score(8)},
	{ID: 10, Name: "Denim Jacket", Category: models.CategoryOuterwear, Color: "blue", Price: price(49.99), VersatilityScore: score(8)},
	{ID: 11, Name: "Striped T-Shirt", Category: models.CategoryTop, Color: "white/blue", Price: price(25.99), VersatilityScore: score(7)},
	{ID: 12, Name: "Leather Boots", Category: models.CategoryShoes, Color: "brown", Price: price(119.99), VersatilityScore: score(7)},
}

var capsuleBuckets = map[string]CapsuleTemplate{
	CapsuleBucketProfessional: {
		Outfits: []models.CapsuleOutfit{
			{ID: 1, Name: "Office Ready", Items: []int{1, 2, 4, 7, 8}, Description: "Classic professional look for the office", Occasions: []string{"meetings", "presentations", "client calls"}},
			{ID: 2, Name: "Business Casual", Items: []int{11, 3, 10, 6, 9}, Description: "Comfortable yet stylish for business casual environments", Occasions: []string{"office", "casual fridays"}},
		},
		StylingTips: []string{
			"Invest in quality fabrics that hold their shape",
			"Neutral colors create more outfit combinations",
			"Proper fit is more important than trends",
		},
	},
	CapsuleBucketCasual: {
		Outfits: []models.CapsuleOutfit{
			{ID: 3, Name: "Weekend Errands", Items: []int{11, 3, 6, 9}, Description: "Comfortable and practical for weekend tasks", Occasions: []string{"errands", "weekend"}},
			{ID: 4, Name: "Date Night", Items: []int{5, 7, 8}, Description: "Elegant outfit for an evening out", Occasions: []string{"dinner", "date"}},
		},
		StylingTips: []string{
			"Comfortable shoes make every casual outfit work harder",
			"Denim pairs with almost every top in the capsule",
			"A statement accessory turns a basic look into an evening look",
		},
	},
	CapsuleBucketDefault: {
		Outfits: []models.CapsuleOutfit{
			{ID: 5, Name: "Versatile Combo", Items: []int{1, 3, 6, 8}, Description: "Works for many occasions from casual to semi-formal", Occasions: []string{"casual", "semi-formal"}},
			{ID: 6, Name: "Layered Look", Items: []int{11, 10, 4, 12, 9}, Description: "Great for transitional weather with layering options", Occasions: []string{"travel", "transitional weather"}},
		},
		StylingTips: []string{
			"Build outfits around a neutral base",
			"Layering stretches each piece across more seasons",
			"Choose pieces that work in at least three outfits",
		},
	},
}

var fabrics = map[string]models.FabricProperties{
	"cotton": {Stiffness: 0.3, Density: 1.5, Friction: 0.7},
	"silk":   {Stiffness: 0.1, Density: 1.3, Friction: 0.2},
	"denim":  {Stiffness: 0.8, Density: 1.8, Friction: 0.9},
	"wool":   {Stiffness: 0.5, Density: 1.3, Friction: 0.6},
}
