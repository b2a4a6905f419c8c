package catalog

// The Syrian Deal deck. Property sets: red (4 cards), blue (3 cards),
// green (2 cards), yellow (3 cards), plus three wild falcons that can join
// any set.
var propertyCards = []Card{
	{
		ID:          "old-damascus",
		Category:    CategoryProperty,
		Title:       "Old Damascus",
		TitleArabic: "دمشق القديمة",
		Description: "Heart of Syria",
		Icon:        "🏛️",
		Value:       4,
		Color:       ColorRed,
		SetSize:     4,
	},
	{
		ID:          "bosra-amphitheater",
		Category:    CategoryProperty,
		Title:       "Bosra Theater",
		TitleArabic: "مسرح بصرى",
		Description: "Roman marvel",
		Icon:        "🎭",
		Value:       2,
		Color:       ColorRed,
		SetSize:     4,
	},
	{
		ID:          "al-azm-palace",
		Category:    CategoryProperty,
		Title:       "Al-Azm Palace",
		TitleArabic: "قصر العظم",
		Description: "Ottoman beauty",
		Icon:        "🏮",
		Value:       3,
		Color:       ColorRed,
		SetSize:     4,
	},
	{
		ID:          "damascus-citadel",
		Category:    CategoryProperty,
		Title:       "Damascus Citadel",
		TitleArabic: "قلعة دمشق",
		Description: "Ancient fortress",
		Icon:        "🏰",
		Value:       3,
		Color:       ColorRed,
		SetSize:     4,
	},
	{
		ID:          "aleppo-citadel",
		Category:    CategoryProperty,
		Title:       "Aleppo Citadel",
		TitleArabic: "قلعة حلب",
		Description: "Northern fortress",
		Icon:        "🏰",
		Value:       3,
		Color:       ColorBlue,
		SetSize:     3,
	},
	{
		ID:          "umayyad-mosque",
		Category:    CategoryProperty,
		Title:       "Umayyad Mosque",
		TitleArabic: "الجامع الأموي",
		Description: "Sacred gem",
		Icon:        "🕌",
		Value:       4,
		Color:       ColorBlue,
		SetSize:     3,
	},
	{
		ID:          "mari-ruins",
		Category:    CategoryProperty,
		Title:       "Mari Ruins",
		TitleArabic: "أطلال ماري",
		Description: "Ancient kingdom",
		Icon:        "🏺",
		Value:       2,
		Color:       ColorBlue,
		SetSize:     3,
	},
	{
		ID:          "krak-des-chevaliers",
		Category:    CategoryProperty,
		Title:       "Krak des Chevaliers",
		TitleArabic: "قلعة الحصن",
		Description: "Crusader castle",
		Icon:        "⚔️",
		Value:       3,
		Color:       ColorGreen,
		SetSize:     2,
	},
	{
		ID:          "straight-street",
		Category:    CategoryProperty,
		Title:       "Straight Street",
		TitleArabic: "الشارع المستقيم",
		Description: "Biblical road",
		Icon:        "🛤️",
		Value:       2,
		Color:       ColorGreen,
		SetSize:     2,
	},
	{
		ID:          "palmyra",
		Category:    CategoryProperty,
		Title:       "Palmyra",
		TitleArabic: "تدمر",
		Description: "Desert queen",
		Icon:        "🏺",
		Value:       4,
		Color:       ColorYellow,
		SetSize:     3,
	},
	{
		ID:          "dead-cities",
		Category:    CategoryProperty,
		Title:       "Dead Cities",
		TitleArabic: "المدن الميتة",
		Description: "Byzantine ruins",
		Icon:        "🏛️",
		Value:       3,
		Color:       ColorYellow,
		SetSize:     3,
	},
	{
		ID:          "saladin-castle",
		Category:    CategoryProperty,
		Title:       "Saladin Castle",
		TitleArabic: "قلعة صلاح الدين",
		Description: "Fortress of honor",
		Icon:        "🏰",
		Value:       2,
		Color:       ColorYellow,
		SetSize:     3,
	},
}

var wildCards = []Card{
	{
		ID:          "wild-damascus-falcon-1",
		Category:    CategoryProperty,
		Title:       "Damascus Falcon",
		TitleArabic: "الشاهين الدمشقي",
		Description: "Can be any property",
		Icon:        "🦅",
		Value:       0,
		Color:       ColorWild,
		Wild:        true,
	},
	{
		ID:          "wild-damascus-falcon-2",
		Category:    CategoryProperty,
		Title:       "Damascus Falcon",
		TitleArabic: "الشاهين الدمشقي",
		Description: "Can be any property",
		Icon:        "🦅",
		Value:       0,
		Color:       ColorWild,
		Wild:        true,
	},
	{
		ID:          "wild-damascus-falcon-3",
		Category:    CategoryProperty,
		Title:       "Damascus Falcon",
		TitleArabic: "الشاهين الدمشقي",
		Description: "Can be any property",
		Icon:        "🦅",
		Value:       0,
		Color:       ColorWild,
		Wild:        true,
	},
}

var actionCards = []Card{
	{
		ID:          "yalla-habibi",
		Category:    CategoryAction,
		Title:       "Yalla Habibi!",
		TitleArabic: "يلا حبيبي",
		Description: "Extra turn!",
		Icon:        "🏃‍♂️",
		Value:       1,
		Effect:      EffectExtraTurn,
	},
	{
		ID:          "ta3feesh",
		Category:    CategoryAction,
		Title:       "Ta3feesh",
		TitleArabic: "تعفيش",
		Description: "Steal a property",
		Icon:        "🎯",
		Value:       3,
		Effect:      EffectStealProperty,
	},
	{
		ID:          "tea-time",
		Category:    CategoryAction,
		Title:       "Tea Time",
		TitleArabic: "وقت الشاي",
		Description: "Draw 3 cards",
		Icon:        "🍵",
		Value:       1,
		Effect:      EffectDrawThree,
	},
	{
		ID:           "haflat-zawaj",
		Category:     CategoryAction,
		Title:        "Wedding Party",
		TitleArabic:  "حفلة زواج",
		Description:  "Opponent pays 5K",
		Icon:         "💒",
		Value:        4,
		Effect:       EffectForcedPayment,
		EffectAmount: 5,
	},
	{
		ID:          "souk-shopping",
		Category:    CategoryAction,
		Title:       "Souk Shopping",
		TitleArabic: "تسوق في السوق",
		Description: "Trade cards with opponent",
		Icon:        "🛍️",
		Value:       2,
		Effect:      EffectTrade,
	},
	{
		ID:          "rent-red-yellow",
		Category:    CategoryAction,
		Title:       "Rent Collection",
		TitleArabic: "جمع الإيجار",
		Description: "Collect rent from Red/Yellow sets",
		Icon:        "💸",
		Value:       1,
		Effect:      EffectRent,
		RentColors:  []Color{ColorRed, ColorYellow},
	},
	{
		ID:          "rent-blue-green",
		Category:    CategoryAction,
		Title:       "Rent Collection",
		TitleArabic: "جمع الإيجار",
		Description: "Collect rent from Blue/Green sets",
		Icon:        "💸",
		Value:       1,
		Effect:      EffectRent,
		RentColors:  []Color{ColorBlue, ColorGreen},
	},
	{
		ID:          "rent-wild",
		Category:    CategoryAction,
		Title:       "Wild Rent",
		TitleArabic: "إيجار شامل",
		Description: "Collect rent from any color",
		Icon:        "🌟",
		Value:       1,
		Effect:      EffectRent,
		RentColors:  []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow},
	},
}

var moneyCards = []Card{
	{
		ID:          "money-1",
		Category:    CategoryMoney,
		Title:       "Syrian Pound",
		TitleArabic: "ليرة سورية",
		Icon:        "💰",
		Value:       1,
	},
	{
		ID:          "money-2",
		Category:    CategoryMoney,
		Title:       "Syrian Pound",
		TitleArabic: "ليرة سورية",
		Icon:        "💰",
		Value:       2,
	},
	{
		ID:          "money-3",
		Category:    CategoryMoney,
		Title:       "Syrian Pound",
		TitleArabic: "ليرة سورية",
		Icon:        "💰",
		Value:       3,
	},
	{
		ID:          "money-4",
		Category:    CategoryMoney,
		Title:       "Syrian Pound",
		TitleArabic: "ليرة سورية",
		Icon:        "💰",
		Value:       4,
	},
	{
		ID:          "money-5",
		Category:    CategoryMoney,
		Title:       "Syrian Pound",
		TitleArabic: "ليرة سورية",
		Icon:        "💰",
		Value:       5,
	},
	{
		ID:          "gold-souk",
		Category:    CategoryMoney,
		Title:       "Gold Souk",
		TitleArabic: "سوق الذهب",
		Icon:        "🏆",
		Value:       10,
	},
}

var allCards = func() []Card {
	cards := make([]Card, 0, len(propertyCards)+len(wildCards)+len(actionCards)+len(moneyCards))
	cards = append(cards, propertyCards...)
	cards = append(cards, wildCards...)
	cards = append(cards, actionCards...)
	cards = append(cards, moneyCards...)
	return cards
}()
